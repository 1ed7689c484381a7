package database

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/Kouaj/Notations-sub000/entities"
)

func TestConcurrentOpenSharesOneConnection(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "state.db"))

	const callers = 16
	dbs := make([]*gorm.DB, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dbs[i], errs[i] = m.DB()
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if dbs[i] != dbs[0] {
			t.Fatalf("caller %d received a different connection", i)
		}
	}
}

func TestOpenFailureIsMemoizedAndFatal(t *testing.T) {
	// A directory is not a valid database file.
	m := NewManager(t.TempDir())
	if _, err := m.DB(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	// Second call must not re-trigger the open.
	if _, err := m.DB(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected memoized ErrUnavailable, got %v", err)
	}
	if err := m.RunTransaction(context.Background(), ReadOnly, func(tx *gorm.DB) error { return nil }); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected RunTransaction to propagate ErrUnavailable, got %v", err)
	}
}

func TestReopenKeepsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	m := NewManager(path)
	err := m.RunTransaction(ctx, ReadWrite, func(tx *gorm.DB) error {
		return tx.Create(&entities.User{ID: "u1", Email: "a@x.com", Name: "A"}).Error
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Fresh manager against the same file: migration must be a no-op on
	// existing tables and the data must survive.
	m2 := NewManager(path)
	var users []entities.User
	if err := m2.RunTransaction(ctx, ReadOnly, func(tx *gorm.DB) error {
		return tx.Find(&users).Error
	}); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(users) != 1 || users[0].ID != "u1" {
		t.Fatalf("expected persisted user, got %+v", users)
	}

	db, err := m2.DB()
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	var meta schemaMeta
	if err := db.First(&meta, 1).Error; err != nil {
		t.Fatalf("schema meta: %v", err)
	}
	if meta.Version != schemaVersion {
		t.Fatalf("expected version %d, got %d", schemaVersion, meta.Version)
	}
}

func TestRunTransactionRollsBackOnError(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "state.db"))
	ctx := context.Background()

	boom := errors.New("boom")
	err := m.RunTransaction(ctx, ReadWrite, func(tx *gorm.DB) error {
		if err := tx.Create(&entities.Reseau{ID: 1, Name: "Net", UserID: "u1"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected operation error to propagate, got %v", err)
	}

	var rows []entities.Reseau
	if err := m.RunTransaction(ctx, ReadOnly, func(tx *gorm.DB) error {
		return tx.Find(&rows).Error
	}); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected rollback, found %d rows", len(rows))
	}
}

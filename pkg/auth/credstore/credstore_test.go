package credstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Kouaj/Notations-sub000/database"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	m := database.NewManager(filepath.Join(t.TempDir(), "state.db"))
	return New(m, 4)
}

func TestSetAndVerify(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "u1", "s3cret"); err != nil {
		t.Fatalf("set: %v", err)
	}
	ok, err := s.Verify(ctx, "u1", "s3cret")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	ok, err = s.Verify(ctx, "u1", "wrong")
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
	// Unknown user is a plain false.
	ok, err = s.Verify(ctx, "nobody", "s3cret")
	if err != nil || ok {
		t.Fatalf("expected false for unknown user, got ok=%v err=%v", ok, err)
	}
}

func TestOverwriteReplacesHash(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "u1", "old"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "u1", "new"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if ok, _ := s.Verify(ctx, "u1", "old"); ok {
		t.Fatal("old password still accepted")
	}
	if ok, _ := s.Verify(ctx, "u1", "new"); !ok {
		t.Fatal("new password rejected")
	}
}

func TestDeleteAllAndCount(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, id := range []string{"u1", "u2", "u3"} {
		if err := s.Set(ctx, id, "pw-"+id); err != nil {
			t.Fatalf("set %s: %v", id, err)
		}
	}
	if n, err := s.Count(ctx); err != nil || n != 3 {
		t.Fatalf("count = %d, %v", n, err)
	}
	if err := s.Delete(ctx, "u2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n, _ := s.Count(ctx); n != 2 {
		t.Fatalf("count after delete = %d", n)
	}
	if err := s.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if n, _ := s.Count(ctx); n != 0 {
		t.Fatalf("count after wipe = %d", n)
	}
}

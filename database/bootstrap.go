package database

import (
	"context"
	"fmt"
	"log"
	"sync"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Kouaj/Notations-sub000/entities"
)

// schemaVersion is the current integer schema version. Bump it when a
// migration step is appended; steps are additive only.
const schemaVersion = 3

// TxMode selects the transaction mode for RunTransaction.
type TxMode int

const (
	ReadOnly TxMode = iota
	ReadWrite
)

// Manager hands out one memoized connection. Concurrent first callers share
// a single open+migrate; once resolved (success or failure) it is never
// re-triggered.
type Manager struct {
	path string
	once sync.Once
	db   *gorm.DB
	err  error
}

func NewManager(path string) *Manager { return &Manager{path: path} }

// DB lazily opens the database on first use. Every repository call funnels
// through here, so an operation invoked before initialization triggers it.
func (m *Manager) DB() (*gorm.DB, error) {
	m.once.Do(func() {
		m.db, m.err = open(m.path)
	})
	if m.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, m.err)
	}
	return m.db, nil
}

// RunTransaction is the single chokepoint repositories use. ReadWrite wraps
// the operation in one SQLite transaction: commit when op returns nil,
// rollback and propagate otherwise. ReadOnly runs on the shared session;
// single-statement reads are already atomic on this engine.
func (m *Manager) RunTransaction(ctx context.Context, mode TxMode, op func(tx *gorm.DB) error) error {
	db, err := m.DB()
	if err != nil {
		return err
	}
	if mode == ReadOnly {
		return op(db.WithContext(ctx))
	}
	return db.WithContext(ctx).Transaction(op)
}

func open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

type schemaMeta struct {
	ID      uint `gorm:"primaryKey"`
	Version int
}

func (schemaMeta) TableName() string { return "schema_meta" }

// migrations are applied in order; step i upgrades the schema to version
// i+1. Each step only creates what it introduces — AutoMigrate adds missing
// tables, columns and indexes and never drops existing ones, so re-running
// against newer data is harmless.
var migrations = []func(*gorm.DB) error{
	func(db *gorm.DB) error { // v1: accounts and singleton slots
		return db.AutoMigrate(
			&entities.User{},
			&entities.Credential{},
			&entities.Selection{},
		)
	},
	func(db *gorm.DB) error { // v2: reseau hierarchy
		return db.AutoMigrate(
			&entities.Reseau{},
			&entities.Parcelle{},
			&entities.Placette{},
		)
	},
	func(db *gorm.DB) error { // v3: notation history
		return db.AutoMigrate(&entities.Notation{})
	},
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMeta{}); err != nil {
		return err
	}
	var meta schemaMeta
	if err := db.Where("id = ?", 1).Limit(1).Find(&meta).Error; err != nil {
		return err
	}
	if meta.Version > schemaVersion {
		return fmt.Errorf("database at version %d, binary supports %d", meta.Version, schemaVersion)
	}
	for v := meta.Version; v < schemaVersion; v++ {
		if err := migrations[v](db); err != nil {
			return fmt.Errorf("step v%d: %w", v+1, err)
		}
		log.Printf("[db] migrated to v%d", v+1)
	}
	meta.ID = 1
	meta.Version = schemaVersion
	return db.Save(&meta).Error
}

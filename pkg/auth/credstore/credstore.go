// Package credstore is the flat key/value credential side-channel next to
// the entity tables: one bcrypt hash per user under "cred:<id>". It is not
// an entity store — the only operations are set, opaque verify and the
// wipes needed by account deletion and the reset tool.
package credstore

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
)

const keyPrefix = "cred:"

type Store struct {
	m    *database.Manager
	cost int
}

func New(m *database.Manager, cost int) *Store {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Store{m: m, cost: cost}
}

// Set hashes plain and overwrites the user's entry.
func (s *Store) Set(ctx context.Context, userID, plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return err
	}
	return s.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Save(&entities.Credential{Key: keyPrefix + userID, Hash: string(hash)}).Error
	})
}

// Verify compares plain against the stored hash. A missing entry is a plain
// false, not an error.
func (s *Store) Verify(ctx context.Context, userID, plain string) (bool, error) {
	var rows []entities.Credential
	err := s.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("key = ?", keyPrefix+userID).Limit(1).Find(&rows).Error
	})
	if err != nil || len(rows) == 0 {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(rows[0].Hash), []byte(plain)) == nil, nil
}

func (s *Store) Delete(ctx context.Context, userID string) error {
	return s.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Where("key = ?", keyPrefix+userID).Delete(&entities.Credential{}).Error
	})
}

// DeleteAll wipes every credential entry. Reset tooling only.
func (s *Store) DeleteAll(ctx context.Context) error {
	return s.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Where("key LIKE ?", keyPrefix+"%").Delete(&entities.Credential{}).Error
	})
}

// Count reports remaining entries; the reset operation re-reads through it.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Model(&entities.Credential{}).Where("key LIKE ?", keyPrefix+"%").Count(&n).Error
	})
	return n, err
}

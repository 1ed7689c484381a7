// Package selection persists the singleton "last chosen" slots across
// restarts: current user, selected reseau, selected parcelle. Each slot
// holds zero or one value; setting overwrites, setting nil clears.
package selection

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
)

const (
	KindCurrentUser      = "current_user"
	KindSelectedReseau   = "selected_reseau"
	KindSelectedParcelle = "selected_parcelle"
)

type Store struct{ m *database.Manager }

func New(m *database.Manager) *Store { return &Store{m} }

// Set overwrites the slot with v, or clears it when v is nil.
func (s *Store) Set(ctx context.Context, kind string, v any) error {
	if v == nil {
		return s.Clear(ctx, kind)
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Save(&entities.Selection{Kind: kind, Payload: string(payload)}).Error
	})
}

// Get decodes the slot into out and reports whether a value was present.
func (s *Store) Get(ctx context.Context, kind string, out any) (bool, error) {
	var rows []entities.Selection
	err := s.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("kind = ?", kind).Limit(1).Find(&rows).Error
	})
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}
	return true, json.Unmarshal([]byte(rows[0].Payload), out)
}

func (s *Store) Clear(ctx context.Context, kind string) error {
	return s.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Where("kind = ?", kind).Delete(&entities.Selection{}).Error
	})
}

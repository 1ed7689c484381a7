package repository

import (
	"context"

	"github.com/Kouaj/Notations-sub000/entities"
)

// HistoryRepository is the append-only log of finished notations. Records
// are created once, read many times, deleted individually, never updated.
type HistoryRepository interface {
	GetAll(ctx context.Context) ([]entities.Notation, error)
	GetByID(ctx context.Context, id uint) (*entities.Notation, error)
	GetByUser(ctx context.Context, userID string) ([]entities.Notation, error)
	GetByParcelle(ctx context.Context, parcelleID uint) ([]entities.Notation, error)
	Save(ctx context.Context, n *entities.Notation) error
	// Delete removes at most one record; an absent id is a no-op.
	Delete(ctx context.Context, id uint) error
}

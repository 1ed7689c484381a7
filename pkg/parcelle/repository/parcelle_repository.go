package repository

import (
	"context"

	"github.com/Kouaj/Notations-sub000/entities"
)

type ParcelleRepository interface {
	GetAll(ctx context.Context) ([]entities.Parcelle, error)
	GetByID(ctx context.Context, id uint) (*entities.Parcelle, error)
	GetByUser(ctx context.Context, userID string) ([]entities.Parcelle, error)
	GetByReseau(ctx context.Context, reseauID uint) ([]entities.Parcelle, error)
	// Save persists the record as given. ReseauName must already be
	// denormalized by the caller; no cross-entity check happens here.
	Save(ctx context.Context, p *entities.Parcelle) error
	Delete(ctx context.Context, id uint) error

	Selected(ctx context.Context) (*entities.Parcelle, error)
	SetSelected(ctx context.Context, p *entities.Parcelle) error

	// Placettes live in their own table indexed by parent parcelle.
	GetPlacettes(ctx context.Context, parcelleID uint) ([]entities.Placette, error)
	SavePlacette(ctx context.Context, p *entities.Placette) error
	DeletePlacette(ctx context.Context, id uint) error
}

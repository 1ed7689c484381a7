package repository

import (
	"context"

	"github.com/Kouaj/Notations-sub000/entities"
)

type ReseauRepository interface {
	GetAll(ctx context.Context) ([]entities.Reseau, error)
	GetByID(ctx context.Context, id uint) (*entities.Reseau, error)
	GetByUser(ctx context.Context, userID string) ([]entities.Reseau, error)
	Save(ctx context.Context, r *entities.Reseau) error
	Delete(ctx context.Context, id uint) error

	// Selected restores the last chosen reseau across restarts; nil, nil
	// when nothing is selected. SetSelected(nil) clears the slot.
	Selected(ctx context.Context) (*entities.Reseau, error)
	SetSelected(ctx context.Context, r *entities.Reseau) error
}

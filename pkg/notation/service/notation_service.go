package service

import (
	"context"

	"github.com/Kouaj/Notations-sub000/entities"
)

// Batch is one in-progress observation the UI hands over on "finish".
// Nothing in it has been persisted; a cancelled batch is simply dropped.
type Batch struct {
	UserID     string                `json:"user_id"`
	Reseau     entities.Reseau       `json:"reseau"`
	Parcelle   entities.Parcelle     `json:"parcelle"`
	PlacetteID int                   `json:"placette_id"` // PlacetteNone when n/a
	Type       entities.NotationType `json:"type"`
	Partie     entities.PartiePlante `json:"partie,omitempty"`

	Notes []entities.Note `json:"notes,omitempty"`

	Hauteur1    *float64 `json:"hauteur1,omitempty"`
	Hauteur2    *float64 `json:"hauteur2,omitempty"`
	Comptage    *int     `json:"comptage,omitempty"`
	Fait        *bool    `json:"fait,omitempty"`
	Commentaire string   `json:"commentaire,omitempty"`
}

// NotationService finishes a batch: validates it for its observation kind,
// derives frequency/intensity for disease batches and appends the record to
// history. A batch that fails validation is never partially persisted.
type NotationService interface {
	Finish(ctx context.Context, b Batch) (*entities.Notation, error)
}

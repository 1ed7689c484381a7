package entities

import (
	"strings"
	"time"
)

// Parcelle is one plot inside a Reseau. ReseauName is denormalized onto the
// record by the caller before save; the repository does no cross-entity
// lookup.
type Parcelle struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	ReseauID   uint   `gorm:"index" json:"reseau_id"`
	ReseauName string `json:"reseau_name"`
	UserID     string `gorm:"index" json:"user_id"`

	// Loaded on demand from the placettes table, not a gorm association.
	Placettes []Placette `gorm:"-" json:"placettes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Parcelle) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "missing"}
	}
	if p.ReseauID == 0 {
		return &ValidationError{Field: "reseau_id", Reason: "missing"}
	}
	if p.UserID == "" {
		return &ValidationError{Field: "user_id", Reason: "missing"}
	}
	return nil
}

// Placette is the smallest unit a disease note is recorded against. Stored
// as its own table indexed by parent parcelle.
type Placette struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	ParcelleID uint   `gorm:"index" json:"parcelle_id"`

	// In-progress notation batch, never persisted here; finished batches
	// land in the notations table.
	Notes []Note `gorm:"-" json:"notes,omitempty"`
}

func (p *Placette) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "missing"}
	}
	if p.ParcelleID == 0 {
		return &ValidationError{Field: "parcelle_id", Reason: "missing"}
	}
	return nil
}

package entities

import (
	"strings"
	"time"
)

// Reseau groups the parcelles of one user (a growers' observation network).
type Reseau struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `json:"name"`
	UserID string `gorm:"index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reseau) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "missing"}
	}
	if r.UserID == "" {
		return &ValidationError{Field: "user_id", Reason: "missing"}
	}
	return nil
}

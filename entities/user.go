package entities

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex" json:"email"`
	Name  string `json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeEmail is applied before every compare and every store, so
// uniqueness and login are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u.ID == "" {
		return &ValidationError{Field: "id", Reason: "missing"}
	}
	email := NormalizeEmail(u.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "missing"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "invalid"}
	}
	if strings.TrimSpace(u.Name) == "" {
		return &ValidationError{Field: "name", Reason: "missing"}
	}
	return nil
}

// ValidationError reports a malformed entity field. Recoverable: callers
// re-prompt with the field-level message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

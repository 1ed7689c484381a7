package repository

import (
	"context"
	"errors"

	"github.com/Kouaj/Notations-sub000/entities"
)

// ErrEmailExists is returned by Save when another stored user already owns
// the (case-insensitively compared) email.
var ErrEmailExists = errors.New("email already exists")

type UserRepository interface {
	GetAll(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// Save validates, rejects duplicate emails and re-reads the stored
	// record afterwards; a write that cannot be read back fails.
	Save(ctx context.Context, u *entities.User) error
	Delete(ctx context.Context, id string) error

	// Current/SetCurrent is the session identity singleton. SetCurrent(nil)
	// clears it; Current returns (nil, nil) when no one is logged in.
	Current(ctx context.Context) (*entities.User, error)
	SetCurrent(ctx context.Context, u *entities.User) error

	// ResetAll irreversibly wipes users, the current-user slot and all
	// credential entries, then confirms both stores are empty. Dev/reset
	// tooling only.
	ResetAll(ctx context.Context) (bool, error)
}

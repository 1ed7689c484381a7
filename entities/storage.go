package entities

import "time"

// Selection is one singleton slot ("current user", "selected reseau",
// "selected parcelle"). At most one row per kind; absence means nothing
// selected.
type Selection struct {
	Kind      string    `gorm:"primaryKey" json:"kind"`
	Payload   string    `json:"payload"` // JSON of the wrapped entity
	UpdatedAt time.Time `json:"updated_at"`
}

// Credential is one flat key/value entry of the credential side-channel,
// keyed "cred:<user id>". Kept out of the entity tables so the reset
// operation can wipe it independently.
type Credential struct {
	Key       string    `gorm:"primaryKey" json:"-"`
	Hash      string    `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

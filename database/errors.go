// Package database owns the single SQLite connection, its versioned schema
// and the transaction chokepoint every repository goes through.
package database

import (
	"errors"

	"gorm.io/gorm"
)

// ErrUnavailable means the storage engine could not be opened at all. Fatal
// to every dependent call until the process is restarted.
var ErrUnavailable = errors.New("database unavailable")

// ErrNotFound is a non-exceptional lookup miss. Callers treat it as "no
// result", except after a write, where IsNotFound being true promotes to
// ErrVerifyFailed.
var ErrNotFound = errors.New("record not found")

// ErrVerifyFailed means a write appeared to succeed but the post-write
// re-read missed. Surfaced as a retryable failure.
var ErrVerifyFailed = errors.New("post-write verification failed")

// IsNotFound reports whether err is a lookup miss, either ours or gorm's.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

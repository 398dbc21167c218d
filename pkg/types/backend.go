package types

import "errors"

// Backend reads and writes a complete roster snapshot.
// Implementations open and close their storage within each call; nothing is
// held open between operations.
type Backend interface {
	// Load returns every stored record in order. When no snapshot exists
	// yet the returned error wraps fs.ErrNotExist.
	Load() ([]Record, error)

	// Persist replaces the stored snapshot with records.
	Persist(records []Record) error

	// Location describes where the snapshot lives, for messages and logs.
	Location() string
}

// Store errors.
var (
	ErrNotFound     = errors.New("student not found")
	ErrStorageRead  = errors.New("error loading data")
	ErrStorageWrite = errors.New("error saving data")
	ErrInvalidInput = errors.New("invalid input")
)

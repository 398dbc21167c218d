// Package roster owns the in-memory list of student records and mirrors it to
// a storage backend after every change.
//
// A Store is not safe for concurrent use. The application constructs one at
// startup, calls Load once, and hands it to the shell.
package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Store holds the roster in insertion order.
type Store struct {
	backend types.Backend
	logger  *slog.Logger
	records []types.Record
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persist events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty store over backend. Call Load to read the stored
// snapshot.
func New(backend types.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  slog.Default(),
		records: []types.Record{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory roster with the stored snapshot.
//
// A missing snapshot is not an error: the roster starts empty. An unreadable
// snapshot is discarded and the roster starts empty; the returned error wraps
// types.ErrStorageRead and the store remains usable.
func (s *Store) Load() error {
	records, err := s.backend.Load()
	if err != nil {
		s.records = []types.Record{}
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no roster snapshot, starting empty", "location", s.backend.Location())
			return nil
		}
		s.logger.Warn("discarding unreadable roster snapshot", "location", s.backend.Location(), "err", err)
		return fmt.Errorf("%w: %w", types.ErrStorageRead, err)
	}

	if records == nil {
		records = []types.Record{}
	}
	s.records = records
	s.logger.Debug("roster loaded", "location", s.backend.Location(), "count", len(records))
	return nil
}

// Add appends rec to the end of the roster and persists. Duplicate roll
// numbers are accepted. Fields are not validated here.
func (s *Store) Add(rec types.Record) error {
	s.records = append(s.records, rec)
	return s.persist("add", rec.RollNumber)
}

// Remove deletes every record whose roll number equals roll and persists.
// It returns how many records were removed; zero matches is not an error.
// Unlike Search and Edit, which act on the first match, Remove clears all
// duplicates of the key.
func (s *Store) Remove(roll string) (int, error) {
	kept := s.records[:0:0]
	for _, rec := range s.records {
		if rec.RollNumber != roll {
			kept = append(kept, rec)
		}
	}
	removed := len(s.records) - len(kept)
	s.records = kept
	return removed, s.persist("remove", roll)
}

// Search returns the first record, in roster order, whose roll number equals
// roll. It returns types.ErrNotFound when there is none.
func (s *Store) Search(roll string) (types.Record, error) {
	i := s.indexOf(roll)
	if i < 0 {
		return types.Record{}, fmt.Errorf("%w: roll number %q", types.ErrNotFound, roll)
	}
	return s.records[i], nil
}

// Edit updates the first record matching roll. An empty newName or newGrade
// keeps the current value. It returns types.ErrNotFound, without persisting,
// when no record matches.
func (s *Store) Edit(roll, newName, newGrade string) error {
	i := s.indexOf(roll)
	if i < 0 {
		return fmt.Errorf("%w: roll number %q", types.ErrNotFound, roll)
	}
	s.records[i].Apply(newName, newGrade)
	return s.persist("edit", roll)
}

// List returns a copy of the roster in order. The slice is empty, not nil,
// when the roster has no records.
func (s *Store) List() []types.Record {
	out := make([]types.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the roster.
func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) indexOf(roll string) int {
	for i, rec := range s.records {
		if rec.RollNumber == roll {
			return i
		}
	}
	return -1
}

// persist writes the whole roster. On failure the in-memory change stays
// applied and the error wraps types.ErrStorageWrite.
func (s *Store) persist(op, roll string) error {
	if err := s.backend.Persist(s.records); err != nil {
		s.logger.Error("persist failed", "op", op, "roll", roll, "location", s.backend.Location(), "err", err)
		return fmt.Errorf("%w: %w", types.ErrStorageWrite, err)
	}
	s.logger.Debug("roster persisted", "op", op, "roll", roll, "count", len(s.records))
	return nil
}

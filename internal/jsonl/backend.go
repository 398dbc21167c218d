package jsonl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// FileName is the roster snapshot file inside the data directory.
const FileName = "students.jsonl"

// Backend stores the roster as JSONL in a data directory.
type Backend struct {
	path string
}

// NewBackend returns a backend writing to dataDir/students.jsonl.
// The directory is created on the first Persist.
func NewBackend(dataDir string) *Backend {
	return &Backend{path: filepath.Join(dataDir, FileName)}
}

// Location returns the path of the snapshot file.
func (b *Backend) Location() string {
	return b.path
}

// Load reads every record in file order. A missing file yields an error
// wrapping fs.ErrNotExist. Any line that is not valid JSON or does not match
// the record schema makes the whole snapshot unreadable.
func (b *Backend) Load() ([]types.Record, error) {
	lines, err := readLines(b.path)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(lines))
	for i, line := range lines {
		if !json.Valid(line) {
			return nil, fmt.Errorf("line %d: malformed JSON", i+1)
		}
		if err := validateLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		var rec types.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Persist atomically replaces the snapshot with records.
func (b *Backend) Persist(records []types.Record) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	raw := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling record %s: %w", rec.RollNumber, err)
		}
		raw = append(raw, data)
	}
	return writeLines(b.path, raw)
}

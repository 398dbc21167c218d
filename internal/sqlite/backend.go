package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// FileName is the database file inside the data directory.
const FileName = "students.db"

// Backend stores the roster as rows of a single SQLite table.
// The database is opened and closed inside every Load and Persist.
type Backend struct {
	path string
}

// NewBackend returns a backend using dataDir/students.db.
func NewBackend(dataDir string) *Backend {
	return &Backend{path: filepath.Join(dataDir, FileName)}
}

// Location returns the path of the database file.
func (b *Backend) Location() string {
	return b.path
}

// Load reads every student row in roster order. A missing database file
// yields an error wrapping fs.ErrNotExist; opening would otherwise create it.
func (b *Backend) Load() ([]types.Record, error) {
	if _, err := os.Stat(b.path); err != nil {
		return nil, fmt.Errorf("opening %s: %w", b.path, err)
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", b.path, err)
	}
	defer db.Close()

	rows, err := db.Query(selectStudents)
	if err != nil {
		return nil, fmt.Errorf("querying students: %w", err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		var rec types.Record
		if err := rows.Scan(&rec.Name, &rec.RollNumber, &rec.Grade); err != nil {
			return nil, fmt.Errorf("scanning student: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return records, nil
}

// Persist replaces every row with records inside one transaction, so a
// failed write leaves the previous snapshot intact.
func (b *Backend) Persist(records []types.Record) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", b.path, err)
	}
	defer db.Close()

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteStudents); err != nil {
		return fmt.Errorf("clearing students: %w", err)
	}

	stmt, err := tx.Prepare(insertStudent)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.Exec(i, rec.Name, rec.RollNumber, rec.Grade); err != nil {
			return fmt.Errorf("inserting student %s: %w", rec.RollNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

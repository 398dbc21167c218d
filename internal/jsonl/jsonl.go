// Package jsonl implements the default roster backend: one JSON object per
// line in students.jsonl, written atomically with the temp-file, fsync,
// rename pattern.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// readLines returns each non-empty line of the file at path. Lines have no
// length limit. The error wraps fs.ErrNotExist when the file is absent.
func readLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines [][]byte
	r := bufio.NewReader(f)
	for {
		raw, err := r.ReadBytes('\n')
		if line := bytes.TrimSpace(raw); len(line) > 0 {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
}

// writeLines atomically replaces the file at path with records, one JSON
// value per line. The temp file is removed unless the rename succeeds.
func writeLines(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for i, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	committed = true
	return nil
}

// Package export writes the roster to spreadsheet formats.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// SheetName is the worksheet holding the roster in XLSX output.
const SheetName = "Students"

// ErrUnknownFormat is returned for a format other than csv or xlsx.
var ErrUnknownFormat = errors.New("unknown export format")

// header is the first row of every export.
var header = []string{"Name", "Roll No", "Grade"}

// Write encodes records to w in the given format.
func Write(w io.Writer, format string, records []types.Record) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return writeCSV(w, records)
	case FormatXLSX:
		return writeXLSX(w, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatFromPath picks a format from a file extension, defaulting to csv.
func FormatFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), "."+FormatXLSX) {
		return FormatXLSX
	}
	return FormatCSV
}

func writeCSV(w io.Writer, records []types.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write([]string{rec.Name, rec.RollNumber, rec.Grade}); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, records []types.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, header)
	for _, rec := range records {
		rows = append(rows, []string{rec.Name, rec.RollNumber, rec.Grade})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

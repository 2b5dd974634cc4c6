// Package schedule reconstructs per-cohort daily block timelines from a
// tabular weekly schedule grid and aggregates per-block-type time totals.
package schedule

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Grid is the raw schedule table. Row 0 is the header row: cell [0][0] holds
// the schedule label (doubling as the default lunch name) and the remaining
// cells hold column headings. Every later row pairs a time-of-day label with
// one block-name token (or blank) per column, one row per minute mark.
type Grid [][]string

// LoadGrid reads path into a Grid. CSV and XLSX inputs are supported; any
// other extension is rejected before the file is opened.
func LoadGrid(path string) (Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q (want .csv or .xlsx)", ErrExtension, filepath.Ext(path))
	}
}

func loadCSV(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // shape is checked by Validate
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	g := Grid(rows)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func loadXLSX(path string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrGridShape)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	// excelize drops trailing empty cells, so pad every row back out to the
	// widest row before validating the shape.
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := make(Grid, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		g[i] = padded
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the rectangularity invariant and that the grid holds a
// header row plus at least one time row.
func (g Grid) Validate() error {
	if len(g) < 2 {
		return fmt.Errorf("%w: need a header row and at least one time row, have %d rows", ErrGridShape, len(g))
	}
	width := len(g[0])
	for i, row := range g {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrGridShape, i, len(row), width)
		}
	}
	return nil
}

// Minute converts a 12-hour time label such as "7:30 AM" to minutes since
// midnight (450).
func Minute(label string) (int, error) {
	t, err := time.Parse("3:04 PM", strings.TrimSpace(label))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, label)
	}
	return t.Hour()*60 + t.Minute(), nil
}

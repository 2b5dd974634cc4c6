package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMinute(t *testing.T) {
	tests := []struct {
		label  string
		minute int
	}{
		{"7:30 AM", 450},
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"12:00 PM", 720},
		{"2:45 PM", 885},
		{"11:59 PM", 1439},
	}
	for _, tc := range tests {
		minute, err := Minute(tc.label)
		if err != nil {
			t.Fatalf("Minute(%q) failed: %v", tc.label, err)
		}
		if minute != tc.minute {
			t.Errorf("Minute(%q): expected %d, got %d", tc.label, tc.minute, minute)
		}
	}
}

func TestMinuteBadLabel(t *testing.T) {
	_, err := Minute("25:99")
	if err == nil {
		t.Fatalf("expected error for an unparseable time label, got nil")
	}
	if !errors.Is(err, ErrTimeFormat) {
		t.Errorf("expected ErrTimeFormat, got %v", err)
	}
}

func TestValidateRaggedGrid(t *testing.T) {
	g := Grid{
		{"STEAM", "Monday A BHS"},
		{"7:30 AM", "A1", "stray"},
	}
	err := g.Validate()
	if err == nil {
		t.Fatalf("expected error for ragged grid, got nil")
	}
	if !errors.Is(err, ErrGridShape) {
		t.Errorf("expected ErrGridShape, got %v", err)
	}
}

func TestValidateTooFewRows(t *testing.T) {
	g := Grid{{"STEAM", "Monday A BHS"}}
	if err := g.Validate(); !errors.Is(err, ErrGridShape) {
		t.Errorf("expected ErrGridShape for header-only grid, got %v", err)
	}
}

func TestLoadGridRejectsExtension(t *testing.T) {
	// The extension is checked before any file I/O, so the path need not exist.
	_, err := LoadGrid("schedule.txt")
	if err == nil {
		t.Fatalf("expected error for .txt input, got nil")
	}
	if !errors.Is(err, ErrExtension) {
		t.Errorf("expected ErrExtension, got %v", err)
	}
}

func TestLoadGridCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.csv")
	csv := "STEAM,Monday A BHS\n7:30 AM,A1\n7:31 AM,A1\n7:32 AM,\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	g, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}
	if len(g) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(g))
	}
	if g[0][0] != "STEAM" || g[1][1] != "A1" {
		t.Errorf("grid cells not loaded verbatim: %v", g)
	}
}

func TestLoadGridRaggedCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ragged.csv")
	csv := "STEAM,Monday A BHS\n7:30 AM,A1,extra\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := LoadGrid(path)
	if !errors.Is(err, ErrGridShape) {
		t.Errorf("expected ErrGridShape for ragged CSV, got %v", err)
	}
}

package schedule

import (
	"errors"
	"testing"
)

func TestParseHeadingThreeTokens(t *testing.T) {
	h, err := ParseHeading("Monday A BHS", "STEAM")
	if err != nil {
		t.Fatalf("ParseHeading failed: %v", err)
	}

	if h.Weekday != "Monday" {
		t.Errorf("expected weekday Monday, got %s", h.Weekday)
	}
	if h.Week != "A" {
		t.Errorf("expected week A, got %s", h.Week)
	}
	if h.Cohort != "BHS" {
		t.Errorf("expected cohort BHS, got %s", h.Cohort)
	}
	if h.Lunch != "STEAM" {
		t.Errorf("expected default lunch STEAM, got %s", h.Lunch)
	}
	if h.Key() != "BHS-S" {
		t.Errorf("expected key BHS-S, got %s", h.Key())
	}
}

func TestParseHeadingFourTokens(t *testing.T) {
	h, err := ParseHeading("Monday A Red HUMAN", "STEAM")
	if err != nil {
		t.Fatalf("ParseHeading failed: %v", err)
	}

	if h.Lunch != "HUMAN" {
		t.Errorf("expected fourth token to override default lunch, got %s", h.Lunch)
	}
	if h.Key() != "Red-H" {
		t.Errorf("expected key Red-H, got %s", h.Key())
	}
}

func TestParseHeadingNoLunch(t *testing.T) {
	h, err := ParseHeading("Friday B Blue", "")
	if err != nil {
		t.Fatalf("ParseHeading failed: %v", err)
	}

	if h.Lunch != "" {
		t.Errorf("expected empty lunch, got %s", h.Lunch)
	}
	if h.Key() != "Blue" {
		t.Errorf("expected key to fall back to the cohort alone, got %s", h.Key())
	}
}

func TestParseHeadingTooFewTokens(t *testing.T) {
	_, err := ParseHeading("Monday A", "STEAM")
	if err == nil {
		t.Fatalf("expected error for a 2-token heading, got nil")
	}
	if !errors.Is(err, ErrHeadingFormat) {
		t.Errorf("expected ErrHeadingFormat, got %v", err)
	}
}

func TestHeadingCohortTags(t *testing.T) {
	tests := []struct {
		heading string
		tag     CohortTag
	}{
		{"Monday A BHS", CohortBHS},
		{"Monday A Red", CohortRed},
		{"Monday A Blue", CohortBlue},
		{"Monday A red/SWS", CohortRed},
		{"Monday A BLUE", CohortBlue},
		{"Monday A Remote", CohortOther},
	}
	for _, tc := range tests {
		h, err := ParseHeading(tc.heading, "")
		if err != nil {
			t.Fatalf("ParseHeading(%q) failed: %v", tc.heading, err)
		}
		if h.Tag != tc.tag {
			t.Errorf("heading %q: expected tag %v, got %v", tc.heading, tc.tag, h.Tag)
		}
	}
}

func TestHeadingCohortPredicates(t *testing.T) {
	h, err := ParseHeading("Tuesday C bhs-red", "")
	if err != nil {
		t.Fatalf("ParseHeading failed: %v", err)
	}

	// Predicates use substring containment, so a compound label matches more
	// than one of them.
	if !h.IsBHS() {
		t.Errorf("expected IsBHS for compound cohort label")
	}
	if !h.IsRed() {
		t.Errorf("expected IsRed for compound cohort label")
	}
	if h.IsBlue() {
		t.Errorf("did not expect IsBlue for %q", h.Cohort)
	}
}

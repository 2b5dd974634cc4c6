package schedule

import (
	"fmt"
	"strings"
)

// CohortTag identifies which cohort group a schedule column belongs to.
// It is resolved once at parse time so extraction does not need to keep
// re-scanning label strings.
type CohortTag int

const (
	CohortOther CohortTag = iota
	CohortBHS
	CohortRed
	CohortBlue
)

// Heading encodes a parsed schedule column heading, e.g. "Monday A BHS" or
// "Monday A BHS STEAM". The optional fourth token names the lunch; columns
// without one fall back to the schedule-level default lunch.
type Heading struct {
	Weekday string
	Week    string
	Cohort  string
	Lunch   string
	Tag     CohortTag
}

// ParseHeading splits heading into weekday, week and cohort plus an optional
// lunch token. Headings with fewer than three tokens are rejected.
func ParseHeading(heading, defaultLunch string) (Heading, error) {
	fields := strings.Fields(heading)
	if len(fields) < 3 {
		return Heading{}, fmt.Errorf("%w: %q has %d tokens, need at least 3", ErrHeadingFormat, heading, len(fields))
	}
	h := Heading{
		Weekday: fields[0],
		Week:    fields[1],
		Cohort:  fields[2],
		Lunch:   defaultLunch,
	}
	if len(fields) >= 4 {
		h.Lunch = fields[3]
	}
	h.Tag = resolveTag(h.Cohort)
	return h, nil
}

// resolveTag uses substring containment, not exact match, so compound cohort
// labels like "Red/SWS" still resolve.
func resolveTag(cohort string) CohortTag {
	upper := strings.ToUpper(cohort)
	switch {
	case strings.Contains(upper, "RED"):
		return CohortRed
	case strings.Contains(upper, "BLU"):
		return CohortBlue
	case strings.Contains(upper, "BHS"):
		return CohortBHS
	}
	return CohortOther
}

func (h Heading) contains(tag string) bool {
	return strings.Contains(strings.ToUpper(h.Cohort), tag)
}

// IsBHS reports whether the cohort label contains "BHS".
func (h Heading) IsBHS() bool { return h.contains("BHS") }

// IsRed reports whether the cohort label contains "RED".
func (h Heading) IsRed() bool { return h.contains("RED") }

// IsBlue reports whether the cohort label contains "BLU".
func (h Heading) IsBlue() bool { return h.contains("BLU") }

// Key returns the aggregation key used for totals: the cohort plus the lunch
// initial, or just the cohort when no lunch is known.
func (h Heading) Key() string {
	if h.Lunch != "" {
		return h.Cohort + "-" + h.Lunch[:1]
	}
	return h.Cohort
}

func (h Heading) String() string {
	return fmt.Sprintf("%s|%s|%s|%s", h.Weekday, h.Week, h.Cohort, h.Lunch)
}

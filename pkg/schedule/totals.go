package schedule

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// blockCodePattern matches class-block names: a non-digit prefix followed by
// one or more digits, e.g. "A1" or "B12". Names without a digit suffix (such
// as "PB2O") contribute nothing to the letter-keyed totals.
var blockCodePattern = regexp.MustCompile(`^(\D+)\d+$`)

// Total accumulates the durations of every block contributing to one
// cohort/code cell, preserving contribution order for display.
type Total struct {
	Parts []int
}

func (t *Total) add(minutes int) { t.Parts = append(t.Parts, minutes) }

// Sum returns the canonical integer total.
func (t *Total) Sum() int {
	sum := 0
	for _, p := range t.Parts {
		sum += p
	}
	return sum
}

// Expr returns the symbolic sum, e.g. "45+50+30". Evaluating it always
// yields Sum.
func (t *Total) Expr() string {
	parts := make([]string, len(t.Parts))
	for i, p := range t.Parts {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, "+")
}

// TotalsTable maps cohort aggregation keys to per-block-code totals.
type TotalsTable struct {
	Cohorts []string // aggregation keys, in grid column order
	cells   map[string]map[string]*Total
}

// Codes returns the sorted union of block codes across all cohorts.
func (t *TotalsTable) Codes() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, cells := range t.cells {
		for code := range cells {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	sort.Strings(codes)
	return codes
}

// Get returns the total for a cohort/code pair; the zero total when the pair
// never accumulated anything.
func (t *TotalsTable) Get(cohort, code string) *Total {
	if total, ok := t.cells[cohort][code]; ok {
		return total
	}
	return &Total{}
}

func (t *TotalsTable) cell(cohort, code string) *Total {
	total, ok := t.cells[cohort][code]
	if !ok {
		total = &Total{}
		t.cells[cohort][code] = total
	}
	return total
}

// ComputeTotals aggregates block durations per cohort key and block code.
// Each block contributes to exactly one cohort, the one whose key matches
// its column heading. Lunch blocks always also accumulate under "L".
func ComputeTotals(s *Schedule) (*TotalsTable, error) {
	table := &TotalsTable{cells: make(map[string]map[string]*Total)}
	for _, day := range s.Days {
		heading, err := ParseHeading(day, s.Label)
		if err != nil {
			return nil, err
		}
		key := heading.Key()
		if _, ok := table.cells[key]; !ok {
			table.Cohorts = append(table.Cohorts, key)
			table.cells[key] = make(map[string]*Total)
		}
		for _, b := range s.Blocks[day] {
			if m := blockCodePattern.FindStringSubmatch(b.Name); m != nil {
				table.cell(key, m[1]).add(b.Duration())
			}
			if b.IsLunch() {
				table.cell(key, "L").add(b.Duration())
			}
		}
	}
	return table, nil
}

package schedule

import "strings"

// Schedule owns the parsed grid plus the per-column block sequences, keyed by
// column heading with grid order preserved in Days.
type Schedule struct {
	Label  string // schedule label from cell [0][0], also the default lunch
	Grid   Grid
	Days   []string
	Blocks map[string][]*Block
}

// minuteUnset marks a passing-window bound that was never observed.
const minuteUnset = -1

// passingWindow records the first and last minute at which the inter-building
// passing tokens appear in one column. The window decides whether ordinary
// blocks around it are on-site or off-site.
type passingWindow struct {
	firstB2O, lastB2O int
	firstO2B, lastO2B int
}

// Extract run-length decodes every column of g into ordered Blocks.
func Extract(g Grid) (*Schedule, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	s := &Schedule{
		Label:  g[0][0],
		Grid:   g,
		Blocks: make(map[string][]*Block),
	}
	for col := 1; col < len(g[0]); col++ {
		day := g[0][col]
		heading, err := ParseHeading(day, s.Label)
		if err != nil {
			return nil, err
		}
		blocks, err := extractColumn(g, col, heading)
		if err != nil {
			return nil, err
		}
		s.Days = append(s.Days, day)
		s.Blocks[day] = blocks
	}
	return s, nil
}

// extractColumn walks the data rows of one column top to bottom, extending
// the current run while the token repeats and closing it into a Block when
// the token changes. The passing window is computed first since closing an
// ordinary block needs it for location classification.
func extractColumn(g Grid, col int, heading Heading) ([]*Block, error) {
	win, err := findPassingWindow(g, col)
	if err != nil {
		return nil, err
	}

	day := g[0][col]
	var blocks []*Block
	name := g[1][col]
	start, err := Minute(g[1][0])
	if err != nil {
		return nil, err
	}
	end := start

	emit := func() {
		blocks = append(blocks, &Block{
			Name:   name,
			Start:  start,
			End:    end,
			School: classify(name, start, end, heading, win),
			Column: col,
			Day:    day,
			Lunch:  heading.Lunch,
		})
	}

	for _, row := range g[1:] {
		minute, err := Minute(row[0])
		if err != nil {
			return nil, err
		}
		if row[col] == name {
			end = minute
			continue
		}
		if name != "" {
			emit()
		}
		name = row[col]
		start, end = minute, minute
	}
	// Close the trailing run. A grid without a blank sentinel row at the
	// bottom would otherwise silently drop its last block.
	if name != "" {
		emit()
	}
	return blocks, nil
}

// findPassingWindow scans the data rows for cells containing the PB2O or
// PO2B tokens and records each token's first and last minute.
func findPassingWindow(g Grid, col int) (passingWindow, error) {
	win := passingWindow{
		firstB2O: minuteUnset, lastB2O: minuteUnset,
		firstO2B: minuteUnset, lastO2B: minuteUnset,
	}
	for _, row := range g[1:] {
		cell := strings.ToUpper(row[col])
		b2o := strings.Contains(cell, string(SchoolB2O))
		o2b := strings.Contains(cell, string(SchoolO2B))
		if !b2o && !o2b {
			continue
		}
		minute, err := Minute(row[0])
		if err != nil {
			return win, err
		}
		if b2o {
			if win.firstB2O == minuteUnset {
				win.firstB2O = minute
			}
			win.lastB2O = minute
		}
		if o2b {
			if win.firstO2B == minuteUnset {
				win.firstO2B = minute
			}
			win.lastO2B = minute
		}
	}
	return win, nil
}

// classify resolves where a cohort physically is during a block: the Red
// cohort is off-site once its outbound passing has finished, the Blue cohort
// is off-site until its inbound passing begins, and the inter-building
// passing blocks themselves carry their token as the location.
func classify(name string, start, end int, heading Heading, win passingWindow) School {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, string(SchoolB2O)):
		return SchoolB2O
	case strings.Contains(upper, string(SchoolO2B)):
		return SchoolO2B
	case heading.Tag == CohortRed && (win.lastB2O == minuteUnset || start > win.lastB2O):
		return SchoolOLS
	case heading.Tag == CohortBlue && (win.firstO2B == minuteUnset || end < win.firstO2B):
		return SchoolOLS
	}
	return SchoolBHS
}

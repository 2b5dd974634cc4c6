// Package webpage renders a parsed schedule into the static HTML page.
// Rendering is a pure function of its inputs: identical schedule data and
// timestamp produce byte-identical output.
package webpage

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/schedule"
)

const (
	// pxPerMinute is the linear scale between block duration and its
	// rendered height.
	pxPerMinute = 3

	// cohortsPerDay groups every three grid columns into one day article.
	cohortsPerDay = 3

	// borderAdjust compensates a non-zero start skip for block borders.
	borderAdjust = 2
)

// Options carries the per-run rendering inputs. Now is injected by the
// caller so output stays reproducible.
type Options struct {
	Filename string
	CSVPath  string
	Now      time.Time
}

// Page is the top-level view model handed to the page template.
type Page struct {
	Heading      string
	Comment      string
	Filename     string
	Generated    string
	CSVPath      string
	Days         []Day
	Calculations string
	NoPass       Table
}

// Day is one rendered day article holding up to cohortsPerDay timelines, or
// the trailing totals article.
type Day struct {
	Title   string
	Cohorts []CohortView
}

// CohortView is one vertical timeline (or totals list) for a single cohort.
type CohortView struct {
	Style   string // "blocks" or "totals"
	Name    string
	Skip    int // px of empty space before the first block
	HasSkip bool
	Blocks  []BlockView
}

// BlockView is one rendered paragraph in a cohort timeline.
type BlockView struct {
	Class     string
	Height    int
	HasHeight bool
	Title     string
	Text      string
}

// Table is the flat no-passing re-listing in the footer.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// Cell is one table cell with its mouse-over title.
type Cell struct {
	Title string
	Text  string
}

// Render formats the whole HTML document for s and its totals.
func Render(s *schedule.Schedule, totals *schedule.TotalsTable, opts Options) (string, error) {
	gridStart, err := schedule.Minute(s.Grid[1][0])
	if err != nil {
		return "", err
	}

	page := Page{
		Heading:   s.Label + " Lunch",
		Comment:   comment(s, opts.Now),
		Filename:  opts.Filename,
		Generated: opts.Now.Format(time.ANSIC),
		CSVPath:   opts.CSVPath,
	}

	days, err := scheduleDays(s, gridStart)
	if err != nil {
		return "", err
	}
	page.Days = append(days, totalsDay(totals))
	page.Calculations = calculations(totals)
	page.NoPass = noPassTable(s)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to execute page template: %w", err)
	}
	return buf.String(), nil
}

// comment builds the HTML-comment body: generation timestamp plus a verbatim
// echo of the parsed grid.
func comment(s *schedule.Schedule, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Created by bhs-calendar on %s from CSV:\n", now.Format(time.ANSIC))
	for _, row := range s.Grid {
		fmt.Fprintf(&sb, "%q\n", row)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// scheduleDays groups the schedule columns three to a day article.
func scheduleDays(s *schedule.Schedule, gridStart int) ([]Day, error) {
	var days []Day
	var cohorts []CohortView
	var title string

	for _, dayLabel := range s.Days {
		heading, err := schedule.ParseHeading(dayLabel, s.Label)
		if err != nil {
			return nil, err
		}
		initial := heading.Lunch
		if len(initial) > 1 {
			initial = initial[:1]
		}
		title = fmt.Sprintf("%s - %s - %s", heading.Weekday, heading.Week, initial)
		cohorts = append(cohorts, cohortView(heading, s.Blocks[dayLabel], gridStart))
		if len(cohorts) == cohortsPerDay {
			days = append(days, Day{Title: title, Cohorts: cohorts})
			cohorts = nil
		}
	}
	// A trailing partial group still gets its own article.
	if len(cohorts) > 0 {
		days = append(days, Day{Title: title, Cohorts: cohorts})
	}
	return days, nil
}

// cohortView lays out one column's blocks, including the leading skip for a
// day that starts later than the grid's first time row.
func cohortView(heading schedule.Heading, blocks []*schedule.Block, gridStart int) CohortView {
	view := CohortView{
		Style:   "blocks",
		Name:    heading.Cohort,
		HasSkip: true,
	}
	if len(blocks) > 0 {
		view.Skip = (blocks[0].Start - gridStart) * pxPerMinute
		if view.Skip > 0 {
			view.Skip += borderAdjust
		}
	}
	for _, b := range blocks {
		view.Blocks = append(view.Blocks, blockView(b, heading.Cohort))
	}
	return view
}

func blockView(b *schedule.Block, cohort string) BlockView {
	name := strings.ToUpper(b.Name)
	view := BlockView{
		Height:    b.Duration() * pxPerMinute,
		HasHeight: true,
		Title: fmt.Sprintf("%s @ %s: %s = %d",
			name, b.School, b.TimeRange(), b.Duration()),
	}

	switch {
	case b.IsPassing() && !b.IsSchoolPassing():
		// Ordinary passing renders with no content, just its class and
		// mouse-over title.
		classes := []string{"passing"}
		if b.IsPassingSplit() {
			classes = append(classes, "split")
		}
		if b.IsPassingQuestion() {
			classes = append(classes, "question")
		}
		if b.IsShort() {
			classes = append(classes, "short")
		}
		view.Class = strings.Join(classes, " ")
	case b.IsSchoolPassing():
		view.Class = "school-" + strings.ToLower(name)
		view.Text = blockText(b)
	default:
		view.Class = fmt.Sprintf("block cohort-%s school-%s",
			strings.ToLower(cohort), strings.ToLower(string(b.School)))
		if b.IsLunch() {
			view.Class += " lunch"
		}
		view.Text = blockText(b)
	}
	return view
}

func blockText(b *schedule.Block) string {
	return fmt.Sprintf("%s<br />%s<br />%d", b.Name, b.TimeRange(), b.Duration())
}

// totalsDay renders the trailing "Totals" article, one totals list per
// cohort aggregation key over the sorted union of block codes.
func totalsDay(totals *schedule.TotalsTable) Day {
	codes := totals.Codes()
	day := Day{Title: "Totals"}
	for _, cohort := range totals.Cohorts {
		view := CohortView{Style: "totals", Name: cohort}
		for _, code := range codes {
			text := fmt.Sprintf("%s = %03d", code, totals.Get(cohort, code).Sum())
			view.Blocks = append(view.Blocks, BlockView{
				Class: "total",
				Title: text,
				Text:  text,
			})
		}
		day.Cohorts = append(day.Cohorts, view)
	}
	return day
}

// calculations formats the per-cohort sum breakdowns for the footer pre.
func calculations(totals *schedule.TotalsTable) string {
	var sb strings.Builder
	for _, cohort := range totals.Cohorts {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s:", cohort)
		for _, code := range totals.Codes() {
			total := totals.Get(cohort, code)
			if len(total.Parts) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "\n  %-3s = %3d = %s", code, total.Sum(), total.Expr())
		}
	}
	return sb.String()
}

// noPassTable flattens every column's non-passing blocks into the footer
// table, one column per day heading.
func noPassTable(s *schedule.Schedule) Table {
	table := Table{}
	columns := make([][]*schedule.Block, 0, len(s.Days))
	length := 0
	for _, day := range s.Days {
		table.Header = append(table.Header, Cell{Title: day, Text: day})
		var kept []*schedule.Block
		for _, b := range s.Blocks[day] {
			if !b.IsPassing() {
				kept = append(kept, b)
			}
		}
		if len(kept) > length {
			length = len(kept)
		}
		columns = append(columns, kept)
	}
	for i := 0; i < length; i++ {
		var row []Cell
		for _, column := range columns {
			if i < len(column) {
				row = append(row, Cell{Title: column[i].String(), Text: blockText(column[i])})
			} else {
				row = append(row, Cell{})
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

package webpage

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/schedule"
)

func timeLabel(minute int) string {
	hour, meridiem := minute/60, "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute%60, meridiem)
}

// testSchedule builds one day of three cohort columns: class, passing,
// lunch, class, blank sentinel.
func testSchedule(t *testing.T) *schedule.Schedule {
	t.Helper()

	var cells []string
	add := func(token string, count int) {
		for i := 0; i < count; i++ {
			cells = append(cells, token)
		}
	}
	add("A1", 50)
	add("P", 5)
	add("L", 30)
	add("B1", 50)
	add("", 1)

	g := schedule.Grid{{"STEAM", "Monday A BHS", "Monday A Red", "Monday A Blue"}}
	for i, cell := range cells {
		g = append(g, []string{timeLabel(450 + i), cell, cell, cell})
	}

	s, err := schedule.Extract(g)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	return s
}

func renderTestPage(t *testing.T) string {
	t.Helper()
	s := testSchedule(t)
	totals, err := schedule.ComputeTotals(s)
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}
	page, err := Render(s, totals, Options{
		Filename: "schedule-test",
		CSVPath:  "../data/schedule-test.csv",
		Now:      time.Date(2019, 9, 9, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return page
}

func TestRenderStructure(t *testing.T) {
	page := renderTestPage(t)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse rendered page: %v", err)
	}

	// One schedule day plus the trailing totals article.
	if n := doc.Find("article.day").Length(); n != 2 {
		t.Errorf("expected 2 day articles, got %d", n)
	}
	if title := doc.Find("article.day h3").First().Text(); title != "Monday - A - S" {
		t.Errorf("expected day title 'Monday - A - S', got %q", title)
	}

	// 3 cohort timelines plus 3 totals lists.
	if n := doc.Find("div.cohort").Length(); n != 6 {
		t.Errorf("expected 6 cohort divs, got %d", n)
	}

	first := doc.Find("p.block").First()
	if cls, _ := first.Attr("class"); cls != "block cohort-bhs school-bhs" {
		t.Errorf("unexpected first block class %q", cls)
	}
	if style, _ := first.Attr("style"); style != "height: 150px;" {
		t.Errorf("expected 50-minute block at 150px, got %q", style)
	}

	// Passing renders with no content and no short class at 5 minutes.
	passing := doc.Find("p.passing").First()
	if cls, _ := passing.Attr("class"); cls != "passing" {
		t.Errorf("unexpected passing class %q", cls)
	}
	if text := passing.Text(); text != "" {
		t.Errorf("expected empty passing paragraph, got %q", text)
	}

	if n := doc.Find("p.lunch").Length(); n != 3 {
		t.Errorf("expected a lunch block per cohort column, got %d", n)
	}

	// The Red column never passes out, so its blocks sit off-site.
	if n := doc.Find("p.school-ols").Length(); n == 0 {
		t.Errorf("expected off-site blocks for the Red column")
	}
}

func TestRenderTotalsSection(t *testing.T) {
	page := renderTestPage(t)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse rendered page: %v", err)
	}

	totalsTitle := doc.Find("article.day h3").Last().Text()
	if totalsTitle != "Totals" {
		t.Errorf("expected trailing totals article, got %q", totalsTitle)
	}

	var texts []string
	doc.Find("div.totals p.total").Each(func(i int, sel *goquery.Selection) {
		texts = append(texts, sel.Text())
	})
	// Codes A, B, L for each of the three cohort keys, zero-padded sums.
	if len(texts) != 9 {
		t.Fatalf("expected 9 totals cells, got %d: %v", len(texts), texts)
	}
	if texts[0] != "A = 050" || texts[1] != "B = 050" || texts[2] != "L = 030" {
		t.Errorf("unexpected totals cells: %v", texts[:3])
	}

	if !strings.Contains(page, "BHS-S:") {
		t.Errorf("expected calculations pre to list the BHS-S cohort")
	}
	if !strings.Contains(page, "A   =  50 = 50") {
		t.Errorf("expected calculations line for code A, got page without it")
	}
}

func TestRenderNoPassTable(t *testing.T) {
	page := renderTestPage(t)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse rendered page: %v", err)
	}

	if n := doc.Find("table.no-pass th").Length(); n != 3 {
		t.Errorf("expected 3 table headers, got %d", n)
	}
	// 3 non-passing blocks per column (A1, L, B1).
	if n := doc.Find("table.no-pass td").Length(); n != 9 {
		t.Errorf("expected 9 table cells, got %d", n)
	}
	if cell := doc.Find("table.no-pass td").First().Text(); !strings.Contains(cell, "A1") {
		t.Errorf("expected first cell to describe A1, got %q", cell)
	}
}

func TestRenderDeterministic(t *testing.T) {
	first := renderTestPage(t)
	second := renderTestPage(t)
	if first != second {
		t.Errorf("rendering the same schedule with a fixed timestamp must be byte-identical")
	}
}

func TestRenderComment(t *testing.T) {
	page := renderTestPage(t)

	if !strings.Contains(page, "Created by bhs-calendar on Mon Sep  9 12:00:00 2019") {
		t.Errorf("expected generation timestamp in the HTML comment")
	}
	if !strings.Contains(page, `"Monday A BHS"`) {
		t.Errorf("expected the grid heading row echoed in the HTML comment")
	}
}

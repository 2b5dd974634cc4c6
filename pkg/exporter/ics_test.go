package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/schedule"
)

func testSchedule(t *testing.T) *schedule.Schedule {
	t.Helper()

	g := schedule.Grid{
		{"STEAM", "Monday A BHS", "Tuesday A BHS"},
		{"7:30 AM", "A1", "B1"},
		{"8:19 AM", "A1", "B1"},
		{"8:20 AM", "P", "P"},
		{"8:24 AM", "P", "P"},
		{"8:25 AM", "", ""},
	}
	s, err := schedule.Extract(g)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	return s
}

func TestGenerateICS(t *testing.T) {
	s := testSchedule(t)

	monday := time.Date(2019, 9, 9, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	if err := GenerateICS(s, monday, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:A1 (BHS)") {
		t.Errorf("expected ICS to contain the block summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:BHS") {
		t.Errorf("expected ICS to carry the school as location")
	}

	// 09-Sep-2019 07:30 in Brookline is 11:30 UTC.
	if !strings.Contains(output, "DTSTART:20190909T113000Z") {
		t.Errorf("expected Monday start time in UTC, got: \n%s", output)
	}

	// The Tuesday column lands one day later.
	if !strings.Contains(output, "DTSTART:20190910T113000Z") {
		t.Errorf("expected Tuesday start time in UTC, got: \n%s", output)
	}

	// Passing blocks are not calendar events.
	if strings.Contains(output, "SUMMARY:P (") {
		t.Errorf("expected passing blocks to be skipped, got: \n%s", output)
	}
}

func TestGenerateICSExclusiveEnd(t *testing.T) {
	s := testSchedule(t)

	monday := time.Date(2019, 9, 9, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	if err := GenerateICS(s, monday, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	// A1 covers minutes 450-499 inclusive, so the event ends at 8:20 local,
	// 12:20 UTC.
	if !strings.Contains(buf.String(), "DTEND:20190909T122000Z") {
		t.Errorf("expected exclusive event end at 12:20 UTC, got: \n%s", buf.String())
	}
}

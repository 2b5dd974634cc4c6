package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/schedule"
)

// weekdayOffsets maps a heading's weekday token to its day offset from the
// anchor Monday.
var weekdayOffsets = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// GenerateICS maps every non-passing block of s onto the concrete week
// beginning at monday and writes the calendar to w.
func GenerateICS(s *schedule.Schedule, monday time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// Timezone location for Brookline, MA
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	title := cases.Title(language.AmericanEnglish)
	for _, day := range s.Days {
		heading, err := schedule.ParseHeading(day, s.Label)
		if err != nil {
			return err
		}

		// Normalize casing so headings like "MONDAY" still resolve.
		offset, ok := weekdayOffsets[title.String(strings.ToLower(heading.Weekday))]
		if !ok {
			continue // skip columns without a real weekday
		}
		date := monday.AddDate(0, 0, offset)

		for i, b := range s.Blocks[day] {
			if b.IsPassing() {
				continue
			}

			start := time.Date(date.Year(), date.Month(), date.Day(),
				b.Start/60, b.Start%60, 0, 0, loc)
			end := time.Date(date.Year(), date.Month(), date.Day(),
				(b.End+1)/60, (b.End+1)%60, 0, 0, loc)

			event := cal.AddEvent(fmt.Sprintf("%s-%d-%d", start.Format("20060102T150405Z"), b.Column, i))
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(fmt.Sprintf("%s (%s)", b.Name, heading.Cohort))
			event.SetLocation(string(b.School))

			description := fmt.Sprintf("Cohort: %s\nLunch: %s\nWeek: %s",
				heading.Cohort, b.Lunch, heading.Week)
			event.SetDescription(description)
		}
	}

	return cal.SerializeTo(w)
}

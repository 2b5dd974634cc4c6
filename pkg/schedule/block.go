package schedule

import (
	"fmt"
	"strings"
)

// School is the physical location a cohort occupies during a block.
type School string

const (
	SchoolBHS School = "BHS"  // main building
	SchoolOLS School = "OLS"  // off-site location
	SchoolB2O School = "PB2O" // passing, building to off-site
	SchoolO2B School = "PO2B" // passing, off-site to building
)

// shortPassingMinutes is the strict upper bound for a "short" passing block.
// A 4-minute passing is short; a 5-minute passing is not.
const shortPassingMinutes = 5

// Block is a contiguous named time interval within one schedule column.
// Start and End are minutes since midnight and both inclusive, so a block
// spanning one grid row has duration 1.
type Block struct {
	Name   string
	Start  int
	End    int
	School School
	Column int
	Day    string
	Lunch  string
}

// Duration returns the block length in minutes.
func (b *Block) Duration() int { return b.End - b.Start + 1 }

// IsPassing reports whether the block is any kind of passing time, by its
// leading "P" or "?".
func (b *Block) IsPassing() bool {
	if b.Name == "" {
		return false
	}
	first := strings.ToUpper(b.Name[:1])
	return first == "P" || first == "?"
}

// IsPassingSplit reports whether the block is split-lunch passing time.
func (b *Block) IsPassingSplit() bool { return strings.EqualFold(b.Name, "PS") }

// IsPassingQuestion reports whether the block is an adjusted zero-length
// passing placeholder.
func (b *Block) IsPassingQuestion() bool { return b.Name == "?" }

// IsSchoolPassing reports whether the block marks movement between the main
// building and the off-site location.
func (b *Block) IsSchoolPassing() bool {
	return strings.EqualFold(b.Name, "PB2O") || strings.EqualFold(b.Name, "PO2B")
}

// IsLunch reports whether the block is a lunch period, by its leading "L".
func (b *Block) IsLunch() bool {
	return b.Name != "" && strings.EqualFold(b.Name[:1], "L")
}

// IsShort reports whether the block is under the short-passing threshold.
func (b *Block) IsShort() bool { return b.Duration() < shortPassingMinutes }

// TimeRange returns the display range, e.g. "07:30-08:20". The end bound is
// exclusive for display, so a block ending at minute 499 prints as 08:20.
func (b *Block) TimeRange() string {
	return clock(b.Start) + "-" + clock(b.End+1)
}

// clock formats a minutes-since-midnight value on a zero-padded 12-hour dial.
func clock(minute int) string {
	hour := minute / 60 % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d", hour, minute%60)
}

func (b *Block) String() string {
	return fmt.Sprintf("%s-%s-%d-%s-(%s)-%d",
		b.Name, b.TimeRange(), b.Duration(), b.School, b.Day, b.Column)
}

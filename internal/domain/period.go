package domain

import "time"

// PeriodType identifies the shape of a requested calendar window
type PeriodType string

const (
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodCustom  PeriodType = "custom"
)

// IsValid returns true if the period type is one of the known types
func (t PeriodType) IsValid() bool {
	return t == PeriodMonth || t == PeriodQuarter || t == PeriodCustom
}

// Period is a contiguous, ordered span of calendar dates with navigation
// metadata. Invariant: Dates is strictly ascending, each date exactly one
// day after the previous, From <= To.
type Period struct {
	Type   PeriodType
	Offset int
	From   time.Time
	To     time.Time
	Dates  []time.Time
	Label  string

	// Navigation for month/quarter windows
	PrevOffset int
	NextOffset int

	// Navigation for custom windows: the same span shifted by one page
	PrevFrom time.Time
	PrevTo   time.Time
	NextFrom time.Time
	NextTo   time.Time
}

// SpanDays returns the inclusive length of the period in days
func (p *Period) SpanDays() int {
	return len(p.Dates)
}

// Contains returns true if the date falls inside the period
func (p *Period) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(p.From) && !d.After(p.To)
}

// DateOnly normalizes a timestamp to its calendar date at midnight UTC.
// All dates handled by the engine go through this normalization.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

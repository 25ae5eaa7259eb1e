package date

import (
	"fmt"
	"time"
)

// DayBeforeOrEquals returns whether d1 falls on the same day as d2 or earlier
func DayBeforeOrEquals(d1 time.Time, d2 time.Time) bool {
	return !StartOfDay(d1).After(StartOfDay(d2))
}

// StartOfDay truncates a time to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first day of the month t falls in
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of the month t falls in
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of days of the month t falls in
func DaysInMonth(t time.Time) int {
	return EndOfMonth(t).Day()
}

// SameMonth checks if two dates fall in the same month of the same year
func SameMonth(d1 time.Time, d2 time.Time) bool {
	return d1.Year() == d2.Year() && d1.Month() == d2.Month()
}

// SameDay checks if two dates fall on the same calendar day
func SameDay(d1 time.Time, d2 time.Time) bool {
	return SameMonth(d1, d2) && d1.Day() == d2.Day()
}

// Span is a date span at day granularity, inclusive of both endpoints
type Span struct {
	Start time.Time `json:"start" bson:"start" validate:"required"`
	End   time.Time `json:"end" bson:"end" validate:"required"`
}

// Days returns the number of days a Span covers, counting both endpoints
func (s *Span) Days() int {
	start := StartOfDay(s.Start)
	end := StartOfDay(s.End)
	return int(end.Sub(start).Hours()/24) + 1
}

// IsStartBeforeEnd checks if start is on the same day as end or earlier
func (s *Span) IsStartBeforeEnd() bool {
	return DayBeforeOrEquals(s.Start, s.End)
}

// String prints a date span string
func (s *Span) String() string {
	return fmt.Sprintf("%s - %s", s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"))
}

// Contains checks if a day falls inside the span
func (s *Span) Contains(day time.Time) bool {
	return DayBeforeOrEquals(s.Start, day) && DayBeforeOrEquals(day, s.End)
}

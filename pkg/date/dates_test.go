package date

import (
	"testing"
	"time"
)

func TestSpanDays(t *testing.T) {
	span := Span{
		Start: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	if span.Days() != 1 {
		t.Errorf("single day span should count 1 day, got %d", span.Days())
	}

	span.End = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	if span.Days() != 5 {
		t.Errorf("Jan 3 - Jan 7 should count 5 days, got %d", span.Days())
	}
}

func TestSpanDaysIgnoresClock(t *testing.T) {
	span := Span{
		Start: time.Date(2024, 1, 3, 23, 30, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 4, 0, 15, 0, 0, time.UTC),
	}

	if span.Days() != 2 {
		t.Errorf("span over midnight should count 2 days, got %d", span.Days())
	}
}

func TestSpanContains(t *testing.T) {
	span := Span{
		Start: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}

	if !span.Contains(time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC)) {
		t.Error("span should contain a day in the middle")
	}

	if span.Contains(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Error("span should not contain the day after its end")
	}
}

func TestMonthHelpers(t *testing.T) {
	d := time.Date(2024, 2, 14, 13, 45, 0, 0, time.UTC)

	if StartOfMonth(d).Day() != 1 {
		t.Error("start of month should be the first")
	}

	if EndOfMonth(d).Day() != 29 {
		t.Errorf("February 2024 should end on the 29th, got %d", EndOfMonth(d).Day())
	}

	if DaysInMonth(d) != 29 {
		t.Errorf("February 2024 should have 29 days, got %d", DaysInMonth(d))
	}

	if !SameMonth(d, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("dates in the same month should match")
	}

	if SameMonth(d, time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC)) {
		t.Error("same month in a different year should not match")
	}
}

func TestClockConversions(t *testing.T) {
	display, err := ClockTo12("17:30")
	if err != nil {
		t.Fatal(err)
	}
	if display != "5:30 PM" {
		t.Errorf("expected 5:30 PM, got %s", display)
	}

	wire, err := ClockTo24("5:30 PM")
	if err != nil {
		t.Fatal(err)
	}
	if wire != "17:30" {
		t.Errorf("expected 17:30, got %s", wire)
	}

	if !ClockBefore("09:00", "17:00") {
		t.Error("09:00 should read before 17:00")
	}

	if ClockBefore("17:00", "09:00") {
		t.Error("17:00 should not read before 09:00")
	}
}

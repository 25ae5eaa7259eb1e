package schedule

import (
	"errors"
	"testing"
	"time"
)

var testEmployee = Employee{FirstName: "Jane", LastName: "Doe"}

func fullDayBlock(day int, row int) Block {
	d := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return NewBlock(BlockTypeFullDay, d, d, "09:00", "17:00", row, testEmployee, "Server")
}

func TestNewBlockAssignsUniqueIDs(t *testing.T) {
	a := fullDayBlock(1, 0)
	b := fullDayBlock(1, 0)

	if a.ID == "" || a.ID == b.ID {
		t.Error("every new block needs its own id")
	}
}

func TestValidateRequiresTimesPerType(t *testing.T) {
	block := fullDayBlock(3, 0)
	block.StartTime = ""

	err := block.Validate(DefaultRules)

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for a full day block without times, got %v", err)
	}

	vacation := block
	vacation.Type = BlockTypeVacation
	vacation.StartTime = ""
	vacation.EndTime = ""

	if err := vacation.Validate(DefaultRules); err != nil {
		t.Errorf("vacation blocks carry no times, got %v", err)
	}

	vacation.StartTime = "09:00"
	if err := vacation.Validate(DefaultRules); err == nil {
		t.Error("vacation blocks must not carry times")
	}
}

func TestValidateTimeOrderIsConfigurable(t *testing.T) {
	block := fullDayBlock(3, 0)
	block.StartTime = "17:00"
	block.EndTime = "09:00"

	if err := block.Validate(Rules{EnforceTimeOrder: true}); err == nil {
		t.Error("reversed times should fail when time order is enforced")
	}

	if err := block.Validate(Rules{}); err != nil {
		t.Errorf("reversed times should pass when time order is not enforced, got %v", err)
	}

	block.EndTime = "17:00"
	if err := block.Validate(Rules{}); err == nil {
		t.Error("equal start and end time is never valid")
	}
}

func TestValidateDateOrderAndBounds(t *testing.T) {
	block := fullDayBlock(5, 0)
	block.EndDate = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	if err := block.Validate(DefaultRules); err == nil {
		t.Error("end date before start date should fail")
	}

	block = fullDayBlock(5, 14)
	if err := block.Validate(DefaultRules); err == nil {
		t.Error("row 14 is outside the grid")
	}

	block = fullDayBlock(5, -1)
	if err := block.Validate(DefaultRules); err == nil {
		t.Error("negative rows are outside the grid")
	}
}

func TestWithPositionPreservesSpan(t *testing.T) {
	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	block := NewBlock(BlockTypeFullDay, start, end, "09:00", "17:00", 0, testEmployee, "Server")

	moved := block.WithPosition(3, 10)

	if moved.Row != 3 {
		t.Errorf("expected row 3, got %d", moved.Row)
	}

	if moved.StartColumn() != 10 {
		t.Errorf("expected start column 10, got %d", moved.StartColumn())
	}

	if span := moved.Span(); span.Days() != 4 {
		t.Errorf("moving must preserve the 4 day span, got %d", span.Days())
	}

	if block.Row != 0 || block.StartColumn() != 2 {
		t.Error("the original block must not be mutated")
	}
}

func TestOverlaps(t *testing.T) {
	a := fullDayBlock(3, 0)
	a.EndDate = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	b := fullDayBlock(5, 0)
	if !Overlaps(a, b) {
		t.Error("blocks sharing row and day should overlap")
	}

	c := fullDayBlock(5, 1)
	if Overlaps(a, c) {
		t.Error("blocks in different rows never overlap")
	}

	d := fullDayBlock(7, 0)
	if Overlaps(a, d) {
		t.Error("blocks on disjoint days do not overlap")
	}

	if OverlapsAny(a, []Block{a}) {
		t.Error("a block does not overlap itself")
	}
}

package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/shiftgrid-app/shiftgrid-backend/pkg/date"
)

func TestColumnForDateRoundTrip(t *testing.T) {
	geometry := NewGeometry(0)
	anchor := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	previousLeft := -1
	for day := 1; day <= date.DaysInMonth(anchor); day++ {
		d := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)

		column, err := geometry.ColumnForDate(d, anchor)
		if err != nil {
			t.Fatal(err)
		}

		if column < 0 || column >= Columns {
			t.Fatalf("column %d for day %d is outside the grid", column, day)
		}

		left := geometry.PixelLeft(column)
		if left <= previousLeft {
			t.Fatalf("pixel offset should increase with the date, got %d after %d", left, previousLeft)
		}
		previousLeft = left
	}
}

func TestColumnForDateRejectsOtherMonths(t *testing.T) {
	geometry := NewGeometry(0)
	anchor := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := geometry.ColumnForDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), anchor)

	var outOfRange *OutOfRangeError
	if !errors.As(err, &outOfRange) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
}

func TestBlockWidth(t *testing.T) {
	geometry := NewGeometry(0)

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	if width := geometry.BlockWidth(start, start); width != DefaultCellSize {
		t.Errorf("single day block should be one cell wide, got %d", width)
	}

	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	if width := geometry.BlockWidth(start, end); width != 5*DefaultCellSize {
		t.Errorf("5 day block should be five cells wide, got %d", width)
	}
}

func TestBlockWidthClampsAtMonthEnd(t *testing.T) {
	geometry := NewGeometry(0)

	start := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	if width := geometry.BlockWidth(start, end); width != 2*DefaultCellSize {
		t.Errorf("block should clamp to the last column of January, got %d", width)
	}

	if !geometry.ClampsAtMonthEnd(start, end) {
		t.Error("a clamped block should report a continuation")
	}

	if geometry.ClampsAtMonthEnd(start, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Error("a block ending inside the month should not report a continuation")
	}
}

func TestGeometryCellSizeFallback(t *testing.T) {
	if NewGeometry(-5).CellSize != DefaultCellSize {
		t.Error("non-positive cell sizes should fall back to the default")
	}

	if NewGeometry(64).CellSize != 64 {
		t.Error("an explicit cell size should be kept")
	}
}

package schedule

import (
	"time"

	"github.com/shiftgrid-app/shiftgrid-backend/pkg/date"
)

// Grid dimensions. 31 day columns cover the longest month, 14 rows are two
// stacked 7-row week bands.
const (
	Columns  = 31
	Rows     = 14
	BandRows = 7
)

// DefaultCellSize is the square cell edge in pixels
const DefaultCellSize = 80

// Geometry maps calendar dates to grid columns and grid columns to pixel
// offsets. All methods are pure.
type Geometry struct {
	CellSize int
}

// NewGeometry builds a Geometry, falling back to the default cell size
func NewGeometry(cellSize int) Geometry {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	return Geometry{CellSize: cellSize}
}

// ColumnForDate returns the 0-indexed column of a date inside the anchor
// month. Dates outside the anchor month are rejected.
func (g Geometry) ColumnForDate(d time.Time, monthAnchor time.Time) (int, error) {
	if !date.SameMonth(d, monthAnchor) {
		return 0, &OutOfRangeError{What: "day", Value: d.Day()}
	}

	return d.Day() - 1, nil
}

// PixelLeft returns the pixel offset of a column's left edge
func (g Geometry) PixelLeft(column int) int {
	return column * g.CellSize
}

// BlockWidth returns the pixel width of a block spanning startDate to
// endDate, counting both endpoints. The width is clamped to the last column
// of the start month, months are rendered independently.
func (g Geometry) BlockWidth(startDate time.Time, endDate time.Time) int {
	days := spanDaysClamped(startDate, endDate)
	return days * g.CellSize
}

// ClampsAtMonthEnd reports whether a block runs past the last day of its
// start month and therefore renders with a continuation indicator
func (g Geometry) ClampsAtMonthEnd(startDate time.Time, endDate time.Time) bool {
	span := date.Span{Start: startDate, End: endDate}
	return span.Days() > daysLeftInMonth(startDate)
}

func spanDaysClamped(startDate time.Time, endDate time.Time) int {
	span := date.Span{Start: startDate, End: endDate}

	days := span.Days()
	if days < 1 {
		days = 1
	}

	if left := daysLeftInMonth(startDate); days > left {
		days = left
	}

	return days
}

func daysLeftInMonth(d time.Time) int {
	return date.DaysInMonth(d) - d.Day() + 1
}

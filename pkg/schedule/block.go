package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/date"
)

// BlockType is the closed set of schedule block kinds
type BlockType string

// The three block kinds the grid renders
const (
	BlockTypeFullDay  BlockType = "Full Day Block"
	BlockTypeOffDay   BlockType = "Off Day Block"
	BlockTypeVacation BlockType = "Vacation Block"
)

// IsValid checks membership in the closed type set
func (t BlockType) IsValid() bool {
	return t == BlockTypeFullDay || t == BlockTypeOffDay || t == BlockTypeVacation
}

// RequiresTimes reports whether the type carries start and end times.
// Vacation blocks have no time of day.
func (t BlockType) RequiresTimes() bool {
	return t == BlockTypeFullDay || t == BlockTypeOffDay
}

// Employee is a snapshot of the assigned worker taken at block creation
// time. It is not a live reference, later profile edits do not propagate.
type Employee struct {
	FirstName string `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required"`
	PhotoURL  string `json:"photoURL" bson:"photoURL"`
}

// Block is a single scheduled interval for one worker, anchored to a date
// span and a grid row
type Block struct {
	ID        string    `json:"id" validate:"required"`
	Type      BlockType `json:"type" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	Row       int       `json:"row"`
	Employee  Employee  `json:"employee"`
	JobTitle  string    `json:"jobTitle"`
}

// NewBlock builds a block with a fresh collision-resistant id
func NewBlock(blockType BlockType, startDate time.Time, endDate time.Time, startTime string, endTime string, row int, employee Employee, jobTitle string) Block {
	return Block{
		ID:        uuid.New().String(),
		Type:      blockType,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
		Row:       row,
		Employee:  employee,
		JobTitle:  jobTitle,
	}
}

// Span returns the block's date span
func (b Block) Span() date.Span {
	return date.Span{Start: b.StartDate, End: b.EndDate}
}

// StartColumn returns the 0-indexed grid column of the block's first day
func (b Block) StartColumn() int {
	return b.StartDate.Day() - 1
}

// WithPosition returns a copy re-anchored at a new row and column. The day
// span length is preserved, the start month stays the same.
func (b Block) WithPosition(row int, column int) Block {
	span := b.Span()
	start := time.Date(b.StartDate.Year(), b.StartDate.Month(), column+1, 0, 0, 0, 0, b.StartDate.Location())

	b.Row = row
	b.StartDate = start
	b.EndDate = start.AddDate(0, 0, span.Days()-1)

	return b
}

// WithDates returns a copy with only the date span changed
func (b Block) WithDates(startDate time.Time, endDate time.Time) Block {
	b.StartDate = startDate
	b.EndDate = endDate

	return b
}

// WithTimes returns a copy with only the time of day changed
func (b Block) WithTimes(startTime string, endTime string) Block {
	b.StartTime = startTime
	b.EndTime = endTime

	return b
}

// Overlaps reports whether two blocks share a row and at least one day
func Overlaps(a Block, b Block) bool {
	if a.Row != b.Row {
		return false
	}

	aSpan := a.Span()
	bSpan := b.Span()

	return aSpan.Contains(bSpan.Start) || bSpan.Contains(aSpan.Start)
}

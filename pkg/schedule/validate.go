package schedule

import (
	"github.com/go-playground/validator/v10"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/date"
)

// Rules configures the validation checks that the reference behavior leaves
// ambiguous: whether start time must read before end time and whether two
// blocks may overlap in the same row.
type Rules struct {
	EnforceTimeOrder bool
	RejectOverlaps   bool
}

// DefaultRules enforces time order and allows same-row overlaps
var DefaultRules = Rules{EnforceTimeOrder: true}

// Validate checks a block's fields against the per-type requirements, the
// date order and the grid bounds
func (b *Block) Validate(rules Rules) error {
	v := validator.New()
	err := v.Struct(b)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			return &ValidationError{Field: e.Field(), Reason: "is required"}
		}
	}

	if !b.Type.IsValid() {
		return &ValidationError{Field: "Type", Reason: "is not a known block type"}
	}

	if b.Type.RequiresTimes() {
		if b.StartTime == "" || b.EndTime == "" {
			return &ValidationError{Field: "StartTime", Reason: "is required for " + string(b.Type)}
		}

		if _, err := date.ParseClock(b.StartTime); err != nil {
			return &ValidationError{Field: "StartTime", Reason: "is not a valid time of day"}
		}

		if _, err := date.ParseClock(b.EndTime); err != nil {
			return &ValidationError{Field: "EndTime", Reason: "is not a valid time of day"}
		}

		if b.StartTime == b.EndTime {
			return &ValidationError{Field: "EndTime", Reason: "must differ from start time"}
		}

		if rules.EnforceTimeOrder && !date.ClockBefore(b.StartTime, b.EndTime) {
			return &ValidationError{Field: "EndTime", Reason: "must read after start time"}
		}
	} else if b.StartTime != "" || b.EndTime != "" {
		return &ValidationError{Field: "StartTime", Reason: "must be empty for " + string(b.Type)}
	}

	span := b.Span()
	if !span.IsStartBeforeEnd() {
		return &ValidationError{Field: "EndDate", Reason: "must not be before start date"}
	}

	if b.Row < 0 || b.Row >= Rows {
		return &OutOfRangeError{What: "row", Value: b.Row}
	}

	startColumn := b.StartColumn()
	if startColumn < 0 || startColumn >= Columns {
		return &OutOfRangeError{What: "column", Value: startColumn}
	}

	return nil
}

// OverlapsAny reports whether a block overlaps any block of a collection,
// ignoring the entry with the same id
func OverlapsAny(block Block, blocks []Block) bool {
	for _, other := range blocks {
		if other.ID == block.ID {
			continue
		}

		if Overlaps(block, other) {
			return true
		}
	}

	return false
}

package schedule

import "fmt"

// ValidationError is returned when a block's fields fail validation.
// The block is not created or saved.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid block: %s %s", e.Field, e.Reason)
}

// OutOfRangeError is returned when a date or grid position falls outside
// the 31x14 month grid
type OutOfRangeError struct {
	What  string
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d is outside the grid", e.What, e.Value)
}

// ImportFormatError is returned when an uploaded spreadsheet is missing a
// required column. The whole batch is rejected, nothing is imported.
type ImportFormatError struct {
	Column string
	Row    int
}

func (e *ImportFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("import rejected: row %d is missing column %s", e.Row, e.Column)
	}
	return fmt.Sprintf("import rejected: missing column %s", e.Column)
}

// PersistenceError wraps a failure from the persistence collaborator
type PersistenceError struct {
	Op      string
	BlockID string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s for block %s failed: %v", e.Op, e.BlockID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// errStaleLoad marks a superseded load response. It is discarded internally
// and never surfaced to callers.
var errStaleLoad = fmt.Errorf("stale load discarded")

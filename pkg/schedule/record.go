package schedule

import (
	"time"

	"github.com/pkg/errors"
)

// BlockRecord is the persisted shape of a Block. Dates travel as ISO-8601
// strings, parsing and formatting happen only at this boundary. The block's
// own id is the native document key.
type BlockRecord struct {
	ID             string    `bson:"_id"`
	ScopeID        string    `bson:"scopeId"`
	Type           string    `bson:"type"`
	StartDate      string    `bson:"startDate"`
	EndDate        string    `bson:"endDate"`
	StartTime      string    `bson:"startTime,omitempty"`
	EndTime        string    `bson:"endTime,omitempty"`
	Row            int       `bson:"row"`
	Employee       Employee  `bson:"employee"`
	JobTitle       string    `bson:"jobTitle"`
	CreatedAt      time.Time `bson:"createdAt"`
	LastModifiedAt time.Time `bson:"lastModifiedAt"`
}

// NewBlockRecord converts a Block into its persisted shape
func NewBlockRecord(scopeID string, block Block) BlockRecord {
	return BlockRecord{
		ID:        block.ID,
		ScopeID:   scopeID,
		Type:      string(block.Type),
		StartDate: block.StartDate.Format(time.RFC3339),
		EndDate:   block.EndDate.Format(time.RFC3339),
		StartTime: block.StartTime,
		EndTime:   block.EndTime,
		Row:       block.Row,
		Employee:  block.Employee,
		JobTitle:  block.JobTitle,
	}
}

// ToBlock converts a persisted record back into a Block
func (r BlockRecord) ToBlock() (Block, error) {
	startDate, err := time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return Block{}, errors.Wrapf(err, "record %s has a malformed start date", r.ID)
	}

	endDate, err := time.Parse(time.RFC3339, r.EndDate)
	if err != nil {
		return Block{}, errors.Wrapf(err, "record %s has a malformed end date", r.ID)
	}

	return Block{
		ID:        r.ID,
		Type:      BlockType(r.Type),
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Row:       r.Row,
		Employee:  r.Employee,
		JobTitle:  r.JobTitle,
	}, nil
}

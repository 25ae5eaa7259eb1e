package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/shiftgrid-app/shiftgrid-backend/pkg/date"
)

// MockBlockRepository is a block repository for testing. FailWith makes
// every write fail, DeleteCalls counts delete invocations.
type MockBlockRepository struct {
	mu       sync.Mutex
	Records  map[string][]Block
	FailWith error

	AddCalls       int
	UpsertCalls    int
	DeleteCalls    int
	DeleteAllCalls int
}

// NewMockBlockRepository initializes an empty MockBlockRepository
func NewMockBlockRepository() *MockBlockRepository {
	return &MockBlockRepository{Records: map[string][]Block{}}
}

// Add adds a block
func (m *MockBlockRepository) Add(_ context.Context, scopeID string, block Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AddCalls++
	if m.FailWith != nil {
		return m.FailWith
	}

	m.Records[scopeID] = append(m.Records[scopeID], block)
	return nil
}

// Upsert updates a block by id, inserting it when absent
func (m *MockBlockRepository) Upsert(_ context.Context, scopeID string, block Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpsertCalls++
	if m.FailWith != nil {
		return m.FailWith
	}

	for i, existing := range m.Records[scopeID] {
		if existing.ID == block.ID {
			m.Records[scopeID][i] = block
			return nil
		}
	}

	m.Records[scopeID] = append(m.Records[scopeID], block)
	return nil
}

// FindAll finds all blocks of a scope
func (m *MockBlockRepository) FindAll(_ context.Context, scopeID string) ([]Block, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blocks := make([]Block, len(m.Records[scopeID]))
	copy(blocks, m.Records[scopeID])

	return blocks, nil
}

// FindByMonth finds the blocks of a scope starting in a month for one job title
func (m *MockBlockRepository) FindByMonth(_ context.Context, scopeID string, month time.Time, jobTitle string) ([]Block, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var blocks []Block
	for _, block := range m.Records[scopeID] {
		if block.JobTitle == jobTitle && date.SameMonth(block.StartDate, month) {
			blocks = append(blocks, block)
		}
	}

	return blocks, nil
}

// Delete removes a block by id, absent ids are a no-op
func (m *MockBlockRepository) Delete(_ context.Context, scopeID string, blockID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteCalls++
	if m.FailWith != nil {
		return m.FailWith
	}

	for i, block := range m.Records[scopeID] {
		if block.ID == blockID {
			m.Records[scopeID] = append(m.Records[scopeID][:i], m.Records[scopeID][i+1:]...)
			break
		}
	}

	return nil
}

// DeleteAll clears every block of a scope
func (m *MockBlockRepository) DeleteAll(_ context.Context, scopeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteAllCalls++
	if m.FailWith != nil {
		return m.FailWith
	}

	delete(m.Records, scopeID)
	return nil
}

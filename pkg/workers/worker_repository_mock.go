package workers

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockWorkerRepository is a worker repository for testing
type MockWorkerRepository struct {
	Workers []*Worker
}

// Add adds a worker
func (m *MockWorkerRepository) Add(_ context.Context, worker *Worker) error {
	worker.CreatedAt = time.Now()
	worker.LastModifiedAt = time.Now()
	worker.ID = primitive.NewObjectID()

	m.Workers = append(m.Workers, worker)
	return nil
}

// FindByID finds a worker
func (m *MockWorkerRepository) FindByID(_ context.Context, id string, managerID string) (*Worker, error) {
	for _, w := range m.Workers {
		if w.ID.Hex() == id && w.ManagerID == managerID {
			return w, nil
		}
	}

	return nil, errors.New("no worker found")
}

// FindAllByManager finds all workers of a manager
func (m *MockWorkerRepository) FindAllByManager(_ context.Context, managerID string) ([]Worker, error) {
	var workers []Worker

	for _, w := range m.Workers {
		if w.ManagerID == managerID {
			workers = append(workers, *w)
		}
	}

	return workers, nil
}

// FindAllByPosition finds all workers of a manager holding a position
func (m *MockWorkerRepository) FindAllByPosition(_ context.Context, managerID string, position string) ([]Worker, error) {
	var workers []Worker

	for _, w := range m.Workers {
		if w.ManagerID == managerID && w.Position == position {
			workers = append(workers, *w)
		}
	}

	return workers, nil
}

// Update updates a worker
func (m *MockWorkerRepository) Update(_ context.Context, worker *Worker) error {
	for i, w := range m.Workers {
		if w.ID == worker.ID && w.ManagerID == worker.ManagerID {
			m.Workers[i] = worker
			return nil
		}
	}

	return errors.New("no worker found")
}

// Remove removes a worker
func (m *MockWorkerRepository) Remove(_ context.Context, id string, managerID string) error {
	for i, w := range m.Workers {
		if w.ID.Hex() == id && w.ManagerID == managerID {
			m.Workers = append(m.Workers[:i], m.Workers[i+1:]...)
			return nil
		}
	}

	return errors.New("no worker found")
}

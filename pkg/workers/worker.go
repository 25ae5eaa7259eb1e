package workers

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Worker is the model for a worker in a manager's directory
type Worker struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	ManagerID      string             `json:"managerId" bson:"managerId" validate:"required"`
	FirstName      string             `json:"firstName" bson:"firstName" validate:"required"`
	LastName       string             `json:"lastName" bson:"lastName" validate:"required"`
	PhotoURL       string             `json:"photoURL" bson:"photoURL"`
	Position       string             `json:"position" bson:"position" validate:"required"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	LastModifiedAt time.Time          `json:"lastModifiedAt" bson:"lastModifiedAt"`
}

// DisplayName returns the worker's full name
func (w *Worker) DisplayName() string {
	return w.FirstName + " " + w.LastName
}

// JobTitles derives the sorted set of distinct positions from a worker list
func JobTitles(workers []Worker) []string {
	set := map[string]bool{}
	for _, worker := range workers {
		if worker.Position != "" {
			set[worker.Position] = true
		}
	}

	titles := make([]string, 0, len(set))
	for title := range set {
		titles = append(titles, title)
	}

	sort.Strings(titles)

	return titles
}

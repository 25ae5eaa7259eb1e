package workers

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WorkerRepositoryInterface is the interface for a worker repository
type WorkerRepositoryInterface interface {
	Add(ctx context.Context, worker *Worker) error
	FindByID(ctx context.Context, id string, managerID string) (*Worker, error)
	FindAllByManager(ctx context.Context, managerID string) ([]Worker, error)
	FindAllByPosition(ctx context.Context, managerID string, position string) ([]Worker, error)
	Update(ctx context.Context, worker *Worker) error
	Remove(ctx context.Context, id string, managerID string) error
}

// MongoDBWorkerRepository does everything related to storing and finding workers
type MongoDBWorkerRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// Add adds a worker
func (s *MongoDBWorkerRepository) Add(ctx context.Context, worker *Worker) error {
	worker.CreatedAt = time.Now()
	worker.LastModifiedAt = time.Now()
	worker.ID = primitive.NewObjectID()

	_, err := s.DB.InsertOne(ctx, worker)
	return err
}

// FindByID finds a worker in a manager's directory
func (s *MongoDBWorkerRepository) FindByID(ctx context.Context, id string, managerID string) (*Worker, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	worker := Worker{}

	result := s.DB.FindOne(ctx, bson.M{"_id": objectID, "managerId": managerID})
	if result.Err() != nil {
		return nil, errors.Wrap(result.Err(), "could not find worker")
	}

	err = result.Decode(&worker)
	if err != nil {
		return nil, err
	}

	return &worker, nil
}

// FindAllByManager finds all workers of a manager
func (s *MongoDBWorkerRepository) FindAllByManager(ctx context.Context, managerID string) ([]Worker, error) {
	w := []Worker{}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}})

	cursor, err := s.DB.Find(ctx, bson.M{"managerId": managerID}, findOptions)
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &w)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// FindAllByPosition finds all workers of a manager holding a position
func (s *MongoDBWorkerRepository) FindAllByPosition(ctx context.Context, managerID string, position string) ([]Worker, error) {
	w := []Worker{}

	cursor, err := s.DB.Find(ctx, bson.M{"managerId": managerID, "position": position})
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &w)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// Update updates a worker
func (s *MongoDBWorkerRepository) Update(ctx context.Context, worker *Worker) error {
	worker.LastModifiedAt = time.Now()

	result, err := s.DB.UpdateOne(ctx,
		bson.M{"_id": worker.ID, "managerId": worker.ManagerID},
		bson.M{"$set": worker})
	if err != nil {
		return err
	}

	if result.MatchedCount != 1 {
		return errors.New("updated count != 1")
	}

	return nil
}

// Remove removes a worker from a manager's directory
func (s *MongoDBWorkerRepository) Remove(ctx context.Context, id string, managerID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := s.DB.DeleteOne(ctx, bson.M{"_id": objectID, "managerId": managerID})
	if err != nil {
		return err
	}

	if result.DeletedCount != 1 {
		return errors.New("no worker found")
	}

	return nil
}

package schedule

import (
	"context"
	"time"

	"github.com/shiftgrid-app/shiftgrid-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlockRepositoryInterface is the persistence collaborator for schedule
// blocks. Records are addressed by the block's own id, there is no scanning
// for a matching id field.
type BlockRepositoryInterface interface {
	Add(ctx context.Context, scopeID string, block Block) error
	Upsert(ctx context.Context, scopeID string, block Block) error
	FindAll(ctx context.Context, scopeID string) ([]Block, error)
	FindByMonth(ctx context.Context, scopeID string, month time.Time, jobTitle string) ([]Block, error)
	Delete(ctx context.Context, scopeID string, blockID string) error
	DeleteAll(ctx context.Context, scopeID string) error
}

// MongoDBBlockRepository does everything related to storing and finding
// schedule blocks
type MongoDBBlockRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// Add inserts a block into the scoped collection
func (s *MongoDBBlockRepository) Add(ctx context.Context, scopeID string, block Block) error {
	record := NewBlockRecord(scopeID, block)
	record.CreatedAt = time.Now()
	record.LastModifiedAt = time.Now()

	_, err := s.DB.InsertOne(ctx, record)
	return err
}

// Upsert updates a block keyed by its id, inserting it when absent
func (s *MongoDBBlockRepository) Upsert(ctx context.Context, scopeID string, block Block) error {
	record := NewBlockRecord(scopeID, block)
	record.LastModifiedAt = time.Now()

	update := bson.M{
		"$set":         record,
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}

	opts := options.Update().SetUpsert(true)

	_, err := s.DB.UpdateOne(ctx, bson.M{"_id": block.ID, "scopeId": scopeID}, update, opts)
	return err
}

// FindAll finds all blocks of a scope
func (s *MongoDBBlockRepository) FindAll(ctx context.Context, scopeID string) ([]Block, error) {
	return s.find(ctx, bson.M{"scopeId": scopeID})
}

// FindByMonth finds the blocks of a scope whose start date falls in a month,
// filtered to one job title. The ISO date string lets the month match as a
// prefix.
func (s *MongoDBBlockRepository) FindByMonth(ctx context.Context, scopeID string, month time.Time, jobTitle string) ([]Block, error) {
	filter := bson.M{
		"scopeId":   scopeID,
		"jobTitle":  jobTitle,
		"startDate": primitive.Regex{Pattern: "^" + month.Format("2006-01")},
	}

	return s.find(ctx, filter)
}

func (s *MongoDBBlockRepository) find(ctx context.Context, filter bson.M) ([]Block, error) {
	records := []BlockRecord{}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "startDate", Value: 1}, {Key: "row", Value: 1}})

	cursor, err := s.DB.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, 0, len(records))
	for _, record := range records {
		block, err := record.ToBlock()
		if err != nil {
			s.Logger.Error("Skipping malformed schedule record", err)
			continue
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}

// Delete removes a block by id. Deleting an absent id is a no-op.
func (s *MongoDBBlockRepository) Delete(ctx context.Context, scopeID string, blockID string) error {
	_, err := s.DB.DeleteOne(ctx, bson.M{"_id": blockID, "scopeId": scopeID})
	return err
}

// DeleteAll clears every block of a scope
func (s *MongoDBBlockRepository) DeleteAll(ctx context.Context, scopeID string) error {
	_, err := s.DB.DeleteMany(ctx, bson.M{"scopeId": scopeID})
	return err
}

package workers

import (
	"context"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
	"time"
)

// DirectoryCacheInterface caches a manager's worker directory
type DirectoryCacheInterface interface {
	Add(ctx context.Context, managerID string, entry *DirectoryCacheEntry) error
	Invalidate(ctx context.Context, managerID string) error
	Get(ctx context.Context, managerID string) (*DirectoryCacheEntry, error)
}

// DirectoryCacheEntry holds a manager's workers and the job titles derived from them
type DirectoryCacheEntry struct {
	Workers   []Worker
	JobTitles []string
}

// DirectoryCacheRedis caches worker directories in redis
type DirectoryCacheRedis struct {
	Cache *cache.Cache
}

// NewDirectoryCacheRedis initializes a new DirectoryCacheRedis
func NewDirectoryCacheRedis(redisClient *redis.Client) (*DirectoryCacheRedis, error) {
	redisCache := cache.New(&cache.Options{
		Redis: redisClient,
	})

	return &DirectoryCacheRedis{
		Cache: redisCache,
	}, nil
}

// Add adds a DirectoryCacheEntry
func (c *DirectoryCacheRedis) Add(ctx context.Context, managerID string, entry *DirectoryCacheEntry) error {
	err := c.Cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   directoryCacheKey(managerID),
		Value: entry,
		TTL:   time.Minute * 10,
	})
	if err != nil {
		return err
	}

	return nil
}

// Invalidate invalidates an entry
func (c *DirectoryCacheRedis) Invalidate(ctx context.Context, managerID string) error {
	err := c.Cache.Delete(ctx, directoryCacheKey(managerID))
	if err != nil {
		return err
	}

	return nil
}

// Get retrieves a DirectoryCacheEntry
func (c *DirectoryCacheRedis) Get(ctx context.Context, managerID string) (*DirectoryCacheEntry, error) {
	result := DirectoryCacheEntry{}
	err := c.Cache.Get(ctx, directoryCacheKey(managerID), &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func directoryCacheKey(managerID string) string {
	return "worker-directory:" + managerID
}

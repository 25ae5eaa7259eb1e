package workers

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// DirectoryCacheMemory caches worker directories in process memory
type DirectoryCacheMemory struct {
	Cache *lru.Cache
}

// NewDirectoryCacheMemory initializes a new DirectoryCacheMemory
func NewDirectoryCacheMemory() (*DirectoryCacheMemory, error) {
	c, err := lru.New(100)
	if err != nil {
		return nil, err
	}

	return &DirectoryCacheMemory{
		Cache: c,
	}, nil
}

// Add adds a DirectoryCacheEntry to the cache
func (c *DirectoryCacheMemory) Add(_ context.Context, managerID string, entry *DirectoryCacheEntry) error {
	_ = c.Cache.Add(directoryCacheKey(managerID), entry)
	return nil
}

// Invalidate removes a DirectoryCacheEntry from the cache
func (c *DirectoryCacheMemory) Invalidate(_ context.Context, managerID string) error {
	c.Cache.Remove(directoryCacheKey(managerID))
	return nil
}

// Get retrieves a DirectoryCacheEntry from the cache
func (c *DirectoryCacheMemory) Get(_ context.Context, managerID string) (*DirectoryCacheEntry, error) {
	result, ok := c.Cache.Get(directoryCacheKey(managerID))
	if !ok {
		return nil, fmt.Errorf("could not find manager %s in directory cache", managerID)
	}

	entry, ok := result.(*DirectoryCacheEntry)
	if !ok {
		return nil, fmt.Errorf("cache entry was not a directory cache entry")
	}

	return entry, nil
}

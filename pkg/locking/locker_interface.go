package locking

import (
	"context"
	"time"
)

// LockerInterface hands out locks keyed by a string, used to serialize
// schedule writes per block id
type LockerInterface interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (LockInterface, error)
}

// LockInterface represents a held lock
type LockInterface interface {
	Key() string
	Release(ctx context.Context) error
}

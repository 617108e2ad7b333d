package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis. Admin edits to a price
// configuration tuple are serialized through it so two concurrent saves
// cannot both pass the duplicate-active check.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireConfigLock attempts to acquire the edit lock for a
// (service type, city) tuple. Returns true if the lock was acquired,
// false if already held.
func (s *LockStore) AcquireConfigLock(ctx context.Context, serviceTypeID, cityID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:priceconfig:%s:%s", serviceTypeID, cityID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseConfigLock releases the edit lock for a tuple.
func (s *LockStore) ReleaseConfigLock(ctx context.Context, serviceTypeID, cityID string) error {
	key := fmt.Sprintf("lock:priceconfig:%s:%s", serviceTypeID, cityID)

	return s.client.Del(ctx, key).Err()
}

package redis

import (
	"context"
	"time"

	"fare/internal/domain"
)

// CacheStoreInterface defines the interface for active configuration caching.
type CacheStoreInterface interface {
	GetActiveConfig(ctx context.Context, serviceTypeID, cityID string) (*domain.PriceConfiguration, error)
	SetActiveConfig(ctx context.Context, cfg *domain.PriceConfiguration) error
	InvalidateActiveConfig(ctx context.Context, serviceTypeID, cityID string) error
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireConfigLock(ctx context.Context, serviceTypeID, cityID string, ttl time.Duration) (bool, error)
	ReleaseConfigLock(ctx context.Context, serviceTypeID, cityID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ CacheStoreInterface = (*CacheStore)(nil)
	_ LockStoreInterface  = (*LockStore)(nil)
)

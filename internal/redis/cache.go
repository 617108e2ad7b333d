package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"fare/internal/domain"
)

// CacheStore caches active price configurations in Redis. Quotes hit this
// before the database; every admin write invalidates the affected tuple.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// ActiveConfigTTL bounds staleness for quotes when an invalidation is missed.
// Configurations change rarely, so a few minutes is acceptable.
const ActiveConfigTTL = 5 * time.Minute

const activeConfigPrefix = "cache:priceconfig:active:"

func activeConfigKey(serviceTypeID, cityID string) string {
	return activeConfigPrefix + serviceTypeID + ":" + cityID
}

// GetActiveConfig retrieves the cached active configuration for a
// (service type, city) pair. Returns (nil, nil) on a cache miss.
func (s *CacheStore) GetActiveConfig(ctx context.Context, serviceTypeID, cityID string) (*domain.PriceConfiguration, error) {
	data, err := s.client.Get(ctx, activeConfigKey(serviceTypeID, cityID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var cfg domain.PriceConfiguration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetActiveConfig stores the active configuration for its tuple.
func (s *CacheStore) SetActiveConfig(ctx context.Context, cfg *domain.PriceConfiguration) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, activeConfigKey(cfg.ServiceTypeID, cfg.CityID), data, ActiveConfigTTL).Err()
}

// InvalidateActiveConfig removes the cached configuration for a tuple.
func (s *CacheStore) InvalidateActiveConfig(ctx context.Context, serviceTypeID, cityID string) error {
	return s.client.Del(ctx, activeConfigKey(serviceTypeID, cityID)).Err()
}

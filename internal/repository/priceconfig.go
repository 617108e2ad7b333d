package repository

import (
	"context"

	"fare/internal/domain"
)

// PriceConfigRepository defines the persistence operations for price
// configurations. Surge slots are owned by the configuration and travel with
// it on every read and write.
type PriceConfigRepository interface {
	// Create persists a new configuration together with its surge slots.
	Create(ctx context.Context, cfg *domain.PriceConfiguration) error

	// GetByID retrieves a configuration (with slots) by ID.
	GetByID(ctx context.Context, id string) (*domain.PriceConfiguration, error)

	// GetAll retrieves all configurations, active and inactive.
	GetAll(ctx context.Context) ([]*domain.PriceConfiguration, error)

	// GetActiveByTuple retrieves the single active configuration for a
	// (service type, city) pair, or ErrNotFound if none is active.
	GetActiveByTuple(ctx context.Context, serviceTypeID, cityID string) (*domain.PriceConfiguration, error)

	// Update replaces all mutable fields of an existing configuration and
	// its full surge slot set.
	Update(ctx context.Context, cfg *domain.PriceConfiguration) error
}

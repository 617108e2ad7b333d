package repository

import (
	"context"

	"fare/internal/domain"
)

// ZonePriceRepository defines the persistence operations for zone-to-zone
// fixed prices.
type ZonePriceRepository interface {
	// Create persists a new zone price.
	Create(ctx context.Context, zp *domain.ZonePrice) error

	// GetByID retrieves a zone price by ID.
	GetByID(ctx context.Context, id string) (*domain.ZonePrice, error)

	// GetByPair retrieves the zone price covering the unordered pair
	// (zoneA, zoneB) for a configuration, or ErrNotFound if none exists.
	GetByPair(ctx context.Context, configID, zoneA, zoneB string) (*domain.ZonePrice, error)

	// ListByConfig retrieves all zone prices attached to a configuration.
	ListByConfig(ctx context.Context, configID string) ([]*domain.ZonePrice, error)

	// Delete removes a zone price.
	Delete(ctx context.Context, id string) error
}

// ZoneRepository defines read operations over city zones. Zones are owned by
// the city catalog and only referenced here.
type ZoneRepository interface {
	// GetByID retrieves a zone by ID.
	GetByID(ctx context.Context, id string) (*domain.Zone, error)

	// ListByCity retrieves all zones of a city.
	ListByCity(ctx context.Context, cityID string) ([]*domain.Zone, error)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fare/internal/domain"
	"fare/internal/repository"
)

// ZonePriceService handles authoring of zone-to-zone fixed prices.
type ZonePriceService struct {
	zonePriceRepo repository.ZonePriceRepository
	zoneRepo      repository.ZoneRepository
	configRepo    repository.PriceConfigRepository
}

// NewZonePriceService creates a new ZonePriceService.
func NewZonePriceService(
	zonePriceRepo repository.ZonePriceRepository,
	zoneRepo repository.ZoneRepository,
	configRepo repository.PriceConfigRepository,
) *ZonePriceService {
	return &ZonePriceService{
		zonePriceRepo: zonePriceRepo,
		zoneRepo:      zoneRepo,
		configRepo:    configRepo,
	}
}

// CreateZonePriceRequest contains the parameters for creating a zone price.
type CreateZonePriceRequest struct {
	PriceConfigurationID string
	FromZoneID           string
	ToZoneID             string
	Amount               float64
}

// Create validates and persists a new zone price. Both zones must exist,
// belong to the owning configuration's city, and differ; only one record may
// cover an unordered zone pair.
func (s *ZonePriceService) Create(ctx context.Context, req CreateZonePriceRequest) (*domain.ZonePrice, error) {
	if req.PriceConfigurationID == "" {
		return nil, ErrInvalidConfigID
	}
	if req.FromZoneID == "" {
		return nil, &ValidationError{Field: "from_zone_id", Reason: "must not be empty"}
	}
	if req.ToZoneID == "" {
		return nil, &ValidationError{Field: "to_zone_id", Reason: "must not be empty"}
	}
	if req.FromZoneID == req.ToZoneID {
		return nil, ErrSameZone
	}
	if req.Amount < 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	cfg, err := s.configRepo.GetByID(ctx, req.PriceConfigurationID)
	if err != nil {
		return nil, err
	}

	for _, zoneID := range []string{req.FromZoneID, req.ToZoneID} {
		zone, err := s.zoneRepo.GetByID(ctx, zoneID)
		if err != nil {
			return nil, err
		}
		if zone.CityID != cfg.CityID {
			return nil, ErrZoneCityMismatch
		}
	}

	existing, err := s.zonePriceRepo.GetByPair(ctx, cfg.ID, req.FromZoneID, req.ToZoneID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &OverrideConflictError{
			FromZoneID: req.FromZoneID,
			ToZoneID:   req.ToZoneID,
			ExistingID: existing.ID,
		}
	}

	zp := &domain.ZonePrice{
		ID:                   uuid.New().String(),
		PriceConfigurationID: cfg.ID,
		FromZoneID:           req.FromZoneID,
		ToZoneID:             req.ToZoneID,
		Amount:               req.Amount,
		CreatedAt:            time.Now(),
	}

	if err := s.zonePriceRepo.Create(ctx, zp); err != nil {
		return nil, err
	}

	return zp, nil
}

// Get retrieves a zone price by ID.
func (s *ZonePriceService) Get(ctx context.Context, id string) (*domain.ZonePrice, error) {
	if id == "" {
		return nil, ErrInvalidZonePriceID
	}
	return s.zonePriceRepo.GetByID(ctx, id)
}

// ListByConfig retrieves all zone prices for a configuration.
func (s *ZonePriceService) ListByConfig(ctx context.Context, configID string) ([]*domain.ZonePrice, error) {
	if configID == "" {
		return nil, ErrInvalidConfigID
	}
	return s.zonePriceRepo.ListByConfig(ctx, configID)
}

// Delete removes a zone price.
func (s *ZonePriceService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidZonePriceID
	}
	return s.zonePriceRepo.Delete(ctx, id)
}

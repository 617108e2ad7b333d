package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fare/internal/domain"
	"fare/internal/redis"
	"fare/internal/repository"
)

// editLockTTL bounds how long an admin save can hold a tuple's edit lock.
const editLockTTL = 10 * time.Second

// PriceConfigService handles authoring of price configurations.
type PriceConfigService struct {
	configRepo      repository.PriceConfigRepository
	cityRepo        repository.CityRepository
	serviceTypeRepo repository.ServiceTypeRepository
	cacheStore      redis.CacheStoreInterface
	lockStore       redis.LockStoreInterface
}

// NewPriceConfigService creates a new PriceConfigService.
func NewPriceConfigService(
	configRepo repository.PriceConfigRepository,
	cityRepo repository.CityRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	cacheStore redis.CacheStoreInterface,
	lockStore redis.LockStoreInterface,
) *PriceConfigService {
	return &PriceConfigService{
		configRepo:      configRepo,
		cityRepo:        cityRepo,
		serviceTypeRepo: serviceTypeRepo,
		cacheStore:      cacheStore,
		lockStore:       lockStore,
	}
}

// PriceConfigInput carries all mutable fields of a configuration. Updates
// are a full replace, so Create and Update share it.
type PriceConfigInput struct {
	ServiceTypeID string
	CityID        string

	MaxSpace       int
	ProviderProfit float64

	MinFare                     float64
	BasePrice                   float64
	DistanceForBasePrice        float64
	PricePerUnitDistance        float64
	PricePerUnitTime            float64
	WaitingTimeStartAfterMinute float64
	PriceForWaitingTime         float64
	CancellationFee             float64

	Tax                      float64
	UserTax                  float64
	UserMiscellaneousFee     float64
	ProviderTax              float64
	ProviderMiscellaneousFee float64

	CarRentalBusiness bool
	IsZone            bool
	IsSurgeHours      bool
	BusinessStatus    bool

	SurgeMultiplier float64
	SurgeTimes      []domain.SurgeSlot
}

// Create validates and persists a new configuration.
func (s *PriceConfigService) Create(ctx context.Context, input PriceConfigInput) (*domain.PriceConfiguration, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	city, err := s.resolveReferences(ctx, input)
	if err != nil {
		return nil, err
	}

	release, err := s.acquireEditLock(ctx, input.ServiceTypeID, input.CityID)
	if err != nil {
		return nil, err
	}
	defer release()

	if input.BusinessStatus {
		if err := s.checkDuplicate(ctx, input.ServiceTypeID, input.CityID, ""); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	cfg := buildConfig(input)
	cfg.ID = uuid.New().String()
	cfg.CountryID = city.CountryID
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	if err := s.configRepo.Create(ctx, cfg); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cfg.ServiceTypeID, cfg.CityID)
	return cfg, nil
}

// Update validates and fully replaces the mutable fields of an existing
// configuration, including its surge slot set.
func (s *PriceConfigService) Update(ctx context.Context, id string, input PriceConfigInput) (*domain.PriceConfiguration, error) {
	if id == "" {
		return nil, ErrInvalidConfigID
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	city, err := s.resolveReferences(ctx, input)
	if err != nil {
		return nil, err
	}

	release, err := s.acquireEditLock(ctx, input.ServiceTypeID, input.CityID)
	if err != nil {
		return nil, err
	}
	defer release()

	if input.BusinessStatus {
		if err := s.checkDuplicate(ctx, input.ServiceTypeID, input.CityID, id); err != nil {
			return nil, err
		}
	}

	cfg := buildConfig(input)
	cfg.ID = id
	cfg.CountryID = city.CountryID
	cfg.CreatedAt = existing.CreatedAt
	cfg.UpdatedAt = time.Now()

	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return nil, err
	}

	// The tuple may have moved; drop both cache entries.
	s.invalidate(ctx, existing.ServiceTypeID, existing.CityID)
	s.invalidate(ctx, cfg.ServiceTypeID, cfg.CityID)
	return cfg, nil
}

// Deactivate disables a configuration. Configurations are never deleted so
// historical trips keep their pricing provenance.
func (s *PriceConfigService) Deactivate(ctx context.Context, id string) (*domain.PriceConfiguration, error) {
	if id == "" {
		return nil, ErrInvalidConfigID
	}

	cfg, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	release, err := s.acquireEditLock(ctx, cfg.ServiceTypeID, cfg.CityID)
	if err != nil {
		return nil, err
	}
	defer release()

	cfg.BusinessStatus = false
	cfg.UpdatedAt = time.Now()

	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cfg.ServiceTypeID, cfg.CityID)
	return cfg, nil
}

// Get retrieves a configuration by ID.
func (s *PriceConfigService) Get(ctx context.Context, id string) (*domain.PriceConfiguration, error) {
	if id == "" {
		return nil, ErrInvalidConfigID
	}
	return s.configRepo.GetByID(ctx, id)
}

// GetAll retrieves all configurations for admin listing.
func (s *PriceConfigService) GetAll(ctx context.Context) ([]*domain.PriceConfiguration, error) {
	return s.configRepo.GetAll(ctx)
}

// GetActive resolves the active configuration for a (service type, city)
// pair, consulting the cache first.
func (s *PriceConfigService) GetActive(ctx context.Context, serviceTypeID, cityID string) (*domain.PriceConfiguration, error) {
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetActiveConfig(ctx, serviceTypeID, cityID)
		if err == nil && cached != nil {
			return cached, nil
		}
		// Cache errors fall through to the database.
	}

	cfg, err := s.configRepo.GetActiveByTuple(ctx, serviceTypeID, cityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveConfiguration
		}
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetActiveConfig(ctx, cfg)
	}

	return cfg, nil
}

func (s *PriceConfigService) validateInput(input PriceConfigInput) error {
	if input.ServiceTypeID == "" {
		return &ValidationError{Field: "service_type_id", Reason: "must not be empty"}
	}
	if input.CityID == "" {
		return &ValidationError{Field: "city_id", Reason: "must not be empty"}
	}
	if input.MaxSpace < 1 {
		return &ValidationError{Field: "max_space", Reason: "must be at least 1"}
	}
	if input.ProviderProfit < 0 || input.ProviderProfit > 100 {
		return &ValidationError{Field: "provider_profit", Reason: "must be between 0 and 100"}
	}

	components := []struct {
		name  string
		value float64
	}{
		{"min_fare", input.MinFare},
		{"base_price", input.BasePrice},
		{"distance_for_base_price", input.DistanceForBasePrice},
		{"price_per_unit_distance", input.PricePerUnitDistance},
		{"price_per_unit_time", input.PricePerUnitTime},
		{"waiting_time_start_after_minute", input.WaitingTimeStartAfterMinute},
		{"price_for_waiting_time", input.PriceForWaitingTime},
		{"cancellation_fee", input.CancellationFee},
		{"tax", input.Tax},
		{"user_tax", input.UserTax},
		{"user_miscellaneous_fee", input.UserMiscellaneousFee},
		{"provider_tax", input.ProviderTax},
		{"provider_miscellaneous_fee", input.ProviderMiscellaneousFee},
	}
	for _, c := range components {
		if c.value < 0 {
			return &ValidationError{Field: c.name, Reason: "must not be negative"}
		}
	}

	return validateSurgeSlots(input.SurgeTimes)
}

// resolveReferences verifies the referenced catalog records exist and
// returns the city, whose country the configuration inherits.
func (s *PriceConfigService) resolveReferences(ctx context.Context, input PriceConfigInput) (*domain.City, error) {
	if _, err := s.serviceTypeRepo.GetByID(ctx, input.ServiceTypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ValidationError{Field: "service_type_id", Reason: "unknown service type"}
		}
		return nil, err
	}

	city, err := s.cityRepo.GetByID(ctx, input.CityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ValidationError{Field: "city_id", Reason: "unknown city"}
		}
		return nil, err
	}

	return city, nil
}

// checkDuplicate enforces the single-active-configuration invariant for a
// tuple, excluding the record under update.
func (s *PriceConfigService) checkDuplicate(ctx context.Context, serviceTypeID, cityID, excludeID string) error {
	active, err := s.configRepo.GetActiveByTuple(ctx, serviceTypeID, cityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	if active.ID == excludeID {
		return nil
	}

	return &DuplicateConfigurationError{
		ServiceTypeID: serviceTypeID,
		CityID:        cityID,
		ConflictingID: active.ID,
	}
}

func (s *PriceConfigService) acquireEditLock(ctx context.Context, serviceTypeID, cityID string) (func(), error) {
	if s.lockStore == nil {
		return func() {}, nil
	}

	ok, err := s.lockStore.AcquireConfigLock(ctx, serviceTypeID, cityID, editLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConfigEditInProgress
	}

	return func() {
		_ = s.lockStore.ReleaseConfigLock(ctx, serviceTypeID, cityID)
	}, nil
}

func (s *PriceConfigService) invalidate(ctx context.Context, serviceTypeID, cityID string) {
	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateActiveConfig(ctx, serviceTypeID, cityID)
	}
}

func buildConfig(input PriceConfigInput) *domain.PriceConfiguration {
	surgeMultiplier := input.SurgeMultiplier
	if surgeMultiplier < 1.0 {
		surgeMultiplier = 1.0
	}

	return &domain.PriceConfiguration{
		ServiceTypeID:               input.ServiceTypeID,
		CityID:                      input.CityID,
		MaxSpace:                    input.MaxSpace,
		ProviderProfit:              input.ProviderProfit,
		MinFare:                     input.MinFare,
		BasePrice:                   input.BasePrice,
		DistanceForBasePrice:        input.DistanceForBasePrice,
		PricePerUnitDistance:        input.PricePerUnitDistance,
		PricePerUnitTime:            input.PricePerUnitTime,
		WaitingTimeStartAfterMinute: input.WaitingTimeStartAfterMinute,
		PriceForWaitingTime:         input.PriceForWaitingTime,
		CancellationFee:             input.CancellationFee,
		Tax:                         input.Tax,
		UserTax:                     input.UserTax,
		UserMiscellaneousFee:        input.UserMiscellaneousFee,
		ProviderTax:                 input.ProviderTax,
		ProviderMiscellaneousFee:    input.ProviderMiscellaneousFee,
		CarRentalBusiness:           input.CarRentalBusiness,
		IsZone:                      input.IsZone,
		IsSurgeHours:                input.IsSurgeHours,
		BusinessStatus:              input.BusinessStatus,
		SurgeMultiplier:             surgeMultiplier,
		SurgeTimes:                  input.SurgeTimes,
	}
}

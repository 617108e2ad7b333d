package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"fare/internal/domain"
	"fare/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK PRICE CONFIG REPOSITORY
// ──────────────────────────────────────────────

// MockPriceConfigRepository is a mock implementation of PriceConfigRepository.
type MockPriceConfigRepository struct {
	mu      sync.RWMutex
	configs map[string]*domain.PriceConfiguration

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockPriceConfigRepository creates a new mock price config repository.
func NewMockPriceConfigRepository() *MockPriceConfigRepository {
	return &MockPriceConfigRepository{
		configs: make(map[string]*domain.PriceConfiguration),
	}
}

// AddConfig adds a configuration to the mock repository.
func (m *MockPriceConfigRepository) AddConfig(cfg *domain.PriceConfiguration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs[cfg.ID] = cfg
}

func (m *MockPriceConfigRepository) Create(ctx context.Context, cfg *domain.PriceConfiguration) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs[cfg.ID] = cfg
	return nil
}

func (m *MockPriceConfigRepository) GetByID(ctx context.Context, id string) (*domain.PriceConfiguration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg, ok := m.configs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *cfg
	return &copy, nil
}

func (m *MockPriceConfigRepository) GetAll(ctx context.Context) ([]*domain.PriceConfiguration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.PriceConfiguration, 0, len(m.configs))
	for _, cfg := range m.configs {
		copy := *cfg
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockPriceConfigRepository) GetActiveByTuple(ctx context.Context, serviceTypeID, cityID string) (*domain.PriceConfiguration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, cfg := range m.configs {
		if cfg.ServiceTypeID == serviceTypeID && cfg.CityID == cityID && cfg.BusinessStatus {
			copy := *cfg
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockPriceConfigRepository) Update(ctx context.Context, cfg *domain.PriceConfiguration) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.configs[cfg.ID]; !ok {
		return repository.ErrNotFound
	}
	m.configs[cfg.ID] = cfg
	return nil
}

// GetConfig returns the configuration by ID (for test assertions).
func (m *MockPriceConfigRepository) GetConfig(id string) *domain.PriceConfiguration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configs[id]
}

// ──────────────────────────────────────────────
// MOCK ZONE PRICE REPOSITORY
// ──────────────────────────────────────────────

// MockZonePriceRepository is a mock implementation of ZonePriceRepository.
type MockZonePriceRepository struct {
	mu     sync.RWMutex
	prices map[string]*domain.ZonePrice

	// Counters for verification
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	ListError   error
}

// NewMockZonePriceRepository creates a new mock zone price repository.
func NewMockZonePriceRepository() *MockZonePriceRepository {
	return &MockZonePriceRepository{
		prices: make(map[string]*domain.ZonePrice),
	}
}

// AddZonePrice adds a zone price to the mock repository.
func (m *MockZonePriceRepository) AddZonePrice(zp *domain.ZonePrice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[zp.ID] = zp
}

func (m *MockZonePriceRepository) Create(ctx context.Context, zp *domain.ZonePrice) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[zp.ID] = zp
	return nil
}

func (m *MockZonePriceRepository) GetByID(ctx context.Context, id string) (*domain.ZonePrice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	zp, ok := m.prices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *zp
	return &copy, nil
}

func (m *MockZonePriceRepository) GetByPair(ctx context.Context, configID, zoneA, zoneB string) (*domain.ZonePrice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, zp := range m.prices {
		if zp.PriceConfigurationID == configID && zp.MatchesPair(zoneA, zoneB) {
			copy := *zp
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockZonePriceRepository) ListByConfig(ctx context.Context, configID string) ([]*domain.ZonePrice, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.ZonePrice
	for _, zp := range m.prices {
		if zp.PriceConfigurationID == configID {
			copy := *zp
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockZonePriceRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.prices[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.prices, id)
	return nil
}

// CountZonePrices returns the number of zone prices.
func (m *MockZonePriceRepository) CountZonePrices() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.prices)
}

// ──────────────────────────────────────────────
// MOCK CATALOG REPOSITORIES
// ──────────────────────────────────────────────

// MockZoneRepository is a mock implementation of ZoneRepository.
type MockZoneRepository struct {
	mu    sync.RWMutex
	zones map[string]*domain.Zone
}

// NewMockZoneRepository creates a new mock zone repository.
func NewMockZoneRepository() *MockZoneRepository {
	return &MockZoneRepository{zones: make(map[string]*domain.Zone)}
}

// AddZone adds a zone to the mock repository.
func (m *MockZoneRepository) AddZone(zone *domain.Zone) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zones[zone.ID] = zone
}

func (m *MockZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	zone, ok := m.zones[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *zone
	return &copy, nil
}

func (m *MockZoneRepository) ListByCity(ctx context.Context, cityID string) ([]*domain.Zone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Zone
	for _, zone := range m.zones {
		if zone.CityID == cityID {
			copy := *zone
			result = append(result, &copy)
		}
	}
	return result, nil
}

// MockCityRepository is a mock implementation of CityRepository.
type MockCityRepository struct {
	mu     sync.RWMutex
	cities map[string]*domain.City
}

// NewMockCityRepository creates a new mock city repository.
func NewMockCityRepository() *MockCityRepository {
	return &MockCityRepository{cities: make(map[string]*domain.City)}
}

// AddCity adds a city to the mock repository.
func (m *MockCityRepository) AddCity(city *domain.City) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cities[city.ID] = city
}

func (m *MockCityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	city, ok := m.cities[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *city
	return &copy, nil
}

func (m *MockCityRepository) GetAll(ctx context.Context) ([]*domain.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.City, 0, len(m.cities))
	for _, city := range m.cities {
		copy := *city
		result = append(result, &copy)
	}
	return result, nil
}

// MockCountryRepository is a mock implementation of CountryRepository.
type MockCountryRepository struct {
	mu        sync.RWMutex
	countries map[string]*domain.Country
}

// NewMockCountryRepository creates a new mock country repository.
func NewMockCountryRepository() *MockCountryRepository {
	return &MockCountryRepository{countries: make(map[string]*domain.Country)}
}

// AddCountry adds a country to the mock repository.
func (m *MockCountryRepository) AddCountry(country *domain.Country) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countries[country.ID] = country
}

func (m *MockCountryRepository) GetByID(ctx context.Context, id string) (*domain.Country, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	country, ok := m.countries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *country
	return &copy, nil
}

// MockServiceTypeRepository is a mock implementation of ServiceTypeRepository.
type MockServiceTypeRepository struct {
	mu    sync.RWMutex
	types map[string]*domain.ServiceType
}

// NewMockServiceTypeRepository creates a new mock service type repository.
func NewMockServiceTypeRepository() *MockServiceTypeRepository {
	return &MockServiceTypeRepository{types: make(map[string]*domain.ServiceType)}
}

// AddServiceType adds a service type to the mock repository.
func (m *MockServiceTypeRepository) AddServiceType(st *domain.ServiceType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types[st.ID] = st
}

func (m *MockServiceTypeRepository) GetByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.types[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *st
	return &copy, nil
}

func (m *MockServiceTypeRepository) GetAll(ctx context.Context) ([]*domain.ServiceType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.ServiceType, 0, len(m.types))
	for _, st := range m.types {
		copy := *st
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK REDIS STORES
// ──────────────────────────────────────────────

// MockCacheStore is an in-memory implementation of CacheStoreInterface.
type MockCacheStore struct {
	mu      sync.RWMutex
	configs map[string]*domain.PriceConfiguration

	// Counters for verification
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32

	// Error injection
	GetError error
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{configs: make(map[string]*domain.PriceConfiguration)}
}

func cacheKey(serviceTypeID, cityID string) string {
	return serviceTypeID + ":" + cityID
}

func (m *MockCacheStore) GetActiveConfig(ctx context.Context, serviceTypeID, cityID string) (*domain.PriceConfiguration, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg, ok := m.configs[cacheKey(serviceTypeID, cityID)]
	if !ok {
		return nil, nil
	}
	copy := *cfg
	return &copy, nil
}

func (m *MockCacheStore) SetActiveConfig(ctx context.Context, cfg *domain.PriceConfiguration) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs[cacheKey(cfg.ServiceTypeID, cfg.CityID)] = cfg
	return nil
}

func (m *MockCacheStore) InvalidateActiveConfig(ctx context.Context, serviceTypeID, cityID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.configs, cacheKey(serviceTypeID, cityID))
	return nil
}

// MockLockStore is an in-memory implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	// Error injection
	AcquireError error

	// HoldAll makes every acquisition fail, simulating a concurrent edit.
	HoldAll bool
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{locks: make(map[string]bool)}
}

func (m *MockLockStore) AcquireConfigLock(ctx context.Context, serviceTypeID, cityID string, ttl time.Duration) (bool, error) {
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.HoldAll {
		return false, nil
	}
	key := cacheKey(serviceTypeID, cityID)
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

func (m *MockLockStore) ReleaseConfigLock(ctx context.Context, serviceTypeID, cityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, cacheKey(serviceTypeID, cityID))
	return nil
}

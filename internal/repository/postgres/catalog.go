package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fare/internal/domain"
	"fare/internal/repository"
)

// CityRepository is a PostgreSQL implementation of repository.CityRepository.
type CityRepository struct {
	q Querier
}

// NewCityRepository creates a new PostgreSQL city repository.
func NewCityRepository(db *sql.DB) *CityRepository {
	return &CityRepository{q: db}
}

// GetByID retrieves a city by ID.
func (r *CityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	query := `SELECT id, country_id, name, timezone FROM cities WHERE id = $1`

	var city domain.City
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&city.ID,
		&city.CountryID,
		&city.Name,
		&city.Timezone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &city, nil
}

// GetAll retrieves all cities.
func (r *CityRepository) GetAll(ctx context.Context) ([]*domain.City, error) {
	query := `SELECT id, country_id, name, timezone FROM cities ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []*domain.City
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.ID, &city.CountryID, &city.Name, &city.Timezone); err != nil {
			return nil, err
		}
		cities = append(cities, &city)
	}
	return cities, rows.Err()
}

// CountryRepository is a PostgreSQL implementation of repository.CountryRepository.
type CountryRepository struct {
	q Querier
}

// NewCountryRepository creates a new PostgreSQL country repository.
func NewCountryRepository(db *sql.DB) *CountryRepository {
	return &CountryRepository{q: db}
}

// GetByID retrieves a country by ID.
func (r *CountryRepository) GetByID(ctx context.Context, id string) (*domain.Country, error) {
	query := `SELECT id, name, currency FROM countries WHERE id = $1`

	var country domain.Country
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&country.ID,
		&country.Name,
		&country.Currency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &country, nil
}

// ServiceTypeRepository is a PostgreSQL implementation of repository.ServiceTypeRepository.
type ServiceTypeRepository struct {
	q Querier
}

// NewServiceTypeRepository creates a new PostgreSQL service type repository.
func NewServiceTypeRepository(db *sql.DB) *ServiceTypeRepository {
	return &ServiceTypeRepository{q: db}
}

// GetByID retrieves a service type by ID.
func (r *ServiceTypeRepository) GetByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	query := `SELECT id, name, default_max_space FROM service_types WHERE id = $1`

	var st domain.ServiceType
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&st.ID,
		&st.Name,
		&st.DefaultMaxSpace,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &st, nil
}

// GetAll retrieves all service types.
func (r *ServiceTypeRepository) GetAll(ctx context.Context) ([]*domain.ServiceType, error) {
	query := `SELECT id, name, default_max_space FROM service_types ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*domain.ServiceType
	for rows.Next() {
		var st domain.ServiceType
		if err := rows.Scan(&st.ID, &st.Name, &st.DefaultMaxSpace); err != nil {
			return nil, err
		}
		types = append(types, &st)
	}
	return types, rows.Err()
}

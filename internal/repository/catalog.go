package repository

import (
	"context"

	"fare/internal/domain"
)

// CityRepository defines read operations over the city catalog.
type CityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.City, error)
	GetAll(ctx context.Context) ([]*domain.City, error)
}

// CountryRepository defines read operations over the country catalog.
type CountryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Country, error)
}

// ServiceTypeRepository defines read operations over the service type catalog.
type ServiceTypeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceType, error)
	GetAll(ctx context.Context) ([]*domain.ServiceType, error)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fare/internal/domain"
	"fare/internal/repository"
)

// ZoneRepository is a PostgreSQL implementation of repository.ZoneRepository.
type ZoneRepository struct {
	q Querier
}

// NewZoneRepository creates a new PostgreSQL zone repository.
func NewZoneRepository(db *sql.DB) *ZoneRepository {
	return &ZoneRepository{q: db}
}

// GetByID retrieves a zone by ID.
func (r *ZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	query := `SELECT id, city_id, name, is_airport, created_at FROM zones WHERE id = $1`

	var zone domain.Zone
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&zone.ID,
		&zone.CityID,
		&zone.Name,
		&zone.IsAirport,
		&zone.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &zone, nil
}

// ListByCity retrieves all zones of a city.
func (r *ZoneRepository) ListByCity(ctx context.Context, cityID string) ([]*domain.Zone, error) {
	query := `SELECT id, city_id, name, is_airport, created_at FROM zones WHERE city_id = $1 ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []*domain.Zone
	for rows.Next() {
		var zone domain.Zone
		if err := rows.Scan(
			&zone.ID,
			&zone.CityID,
			&zone.Name,
			&zone.IsAirport,
			&zone.CreatedAt,
		); err != nil {
			return nil, err
		}
		zones = append(zones, &zone)
	}
	return zones, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fare/internal/domain"
	"fare/internal/repository"
)

// ZonePriceRepository is a PostgreSQL implementation of repository.ZonePriceRepository.
type ZonePriceRepository struct {
	q Querier
}

// NewZonePriceRepository creates a new PostgreSQL zone price repository.
func NewZonePriceRepository(db *sql.DB) *ZonePriceRepository {
	return &ZonePriceRepository{q: db}
}

// NewZonePriceRepositoryWithTx creates a zone price repository using a transaction.
func NewZonePriceRepositoryWithTx(tx *sql.Tx) *ZonePriceRepository {
	return &ZonePriceRepository{q: tx}
}

// Create persists a new zone price.
func (r *ZonePriceRepository) Create(ctx context.Context, zp *domain.ZonePrice) error {
	query := `
		INSERT INTO zone_prices (id, price_configuration_id, from_zone_id, to_zone_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		zp.ID,
		zp.PriceConfigurationID,
		zp.FromZoneID,
		zp.ToZoneID,
		zp.Amount,
		zp.CreatedAt,
	)
	return err
}

// GetByID retrieves a zone price by ID.
func (r *ZonePriceRepository) GetByID(ctx context.Context, id string) (*domain.ZonePrice, error) {
	query := `
		SELECT id, price_configuration_id, from_zone_id, to_zone_id, amount, created_at
		FROM zone_prices WHERE id = $1
	`

	var zp domain.ZonePrice
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&zp.ID,
		&zp.PriceConfigurationID,
		&zp.FromZoneID,
		&zp.ToZoneID,
		&zp.Amount,
		&zp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &zp, nil
}

// GetByPair retrieves the zone price for an unordered zone pair. The lookup is
// order-independent: (A,B) and (B,A) hit the same row.
func (r *ZonePriceRepository) GetByPair(ctx context.Context, configID, zoneA, zoneB string) (*domain.ZonePrice, error) {
	query := `
		SELECT id, price_configuration_id, from_zone_id, to_zone_id, amount, created_at
		FROM zone_prices
		WHERE price_configuration_id = $1
		  AND ((from_zone_id = $2 AND to_zone_id = $3) OR (from_zone_id = $3 AND to_zone_id = $2))
	`

	var zp domain.ZonePrice
	err := r.q.QueryRowContext(ctx, query, configID, zoneA, zoneB).Scan(
		&zp.ID,
		&zp.PriceConfigurationID,
		&zp.FromZoneID,
		&zp.ToZoneID,
		&zp.Amount,
		&zp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &zp, nil
}

// ListByConfig retrieves all zone prices attached to a configuration.
func (r *ZonePriceRepository) ListByConfig(ctx context.Context, configID string) ([]*domain.ZonePrice, error) {
	query := `
		SELECT id, price_configuration_id, from_zone_id, to_zone_id, amount, created_at
		FROM zone_prices
		WHERE price_configuration_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.QueryContext(ctx, query, configID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []*domain.ZonePrice
	for rows.Next() {
		var zp domain.ZonePrice
		if err := rows.Scan(
			&zp.ID,
			&zp.PriceConfigurationID,
			&zp.FromZoneID,
			&zp.ToZoneID,
			&zp.Amount,
			&zp.CreatedAt,
		); err != nil {
			return nil, err
		}
		prices = append(prices, &zp)
	}
	return prices, rows.Err()
}

// Delete removes a zone price.
func (r *ZonePriceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM zone_prices WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fare/internal/domain"
	"fare/internal/repository"
)

// PriceConfigRepository is a PostgreSQL implementation of
// repository.PriceConfigRepository. Surge slots live in a child table and are
// replaced wholesale on every configuration write.
type PriceConfigRepository struct {
	q Querier
}

// NewPriceConfigRepository creates a new PostgreSQL price configuration repository.
func NewPriceConfigRepository(db *sql.DB) *PriceConfigRepository {
	return &PriceConfigRepository{q: db}
}

// NewPriceConfigRepositoryWithTx creates a price configuration repository using a transaction.
func NewPriceConfigRepositoryWithTx(tx *sql.Tx) *PriceConfigRepository {
	return &PriceConfigRepository{q: tx}
}

const priceConfigColumns = `
	id, service_type_id, country_id, city_id, max_space, provider_profit,
	min_fare, base_price, distance_for_base_price, price_per_unit_distance,
	price_per_unit_time, waiting_time_start_after_minute, price_for_waiting_time,
	cancellation_fee, tax, user_tax, user_miscellaneous_fee, provider_tax,
	provider_miscellaneous_fee, car_rental_business, is_zone, is_surge_hours,
	business_status, surge_multiplier, created_at, updated_at
`

// Create persists a new configuration and its surge slots.
func (r *PriceConfigRepository) Create(ctx context.Context, cfg *domain.PriceConfiguration) error {
	query := `
		INSERT INTO price_configurations (` + priceConfigColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	`

	_, err := r.q.ExecContext(ctx, query,
		cfg.ID,
		cfg.ServiceTypeID,
		cfg.CountryID,
		cfg.CityID,
		cfg.MaxSpace,
		cfg.ProviderProfit,
		cfg.MinFare,
		cfg.BasePrice,
		cfg.DistanceForBasePrice,
		cfg.PricePerUnitDistance,
		cfg.PricePerUnitTime,
		cfg.WaitingTimeStartAfterMinute,
		cfg.PriceForWaitingTime,
		cfg.CancellationFee,
		cfg.Tax,
		cfg.UserTax,
		cfg.UserMiscellaneousFee,
		cfg.ProviderTax,
		cfg.ProviderMiscellaneousFee,
		cfg.CarRentalBusiness,
		cfg.IsZone,
		cfg.IsSurgeHours,
		cfg.BusinessStatus,
		cfg.SurgeMultiplier,
		cfg.CreatedAt,
		cfg.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return r.insertSlots(ctx, cfg.ID, cfg.SurgeTimes)
}

// GetByID retrieves a configuration (with slots) by ID.
func (r *PriceConfigRepository) GetByID(ctx context.Context, id string) (*domain.PriceConfiguration, error) {
	query := `SELECT ` + priceConfigColumns + ` FROM price_configurations WHERE id = $1`

	cfg, err := r.scanConfig(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.loadSlots(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetAll retrieves all configurations, active and inactive.
func (r *PriceConfigRepository) GetAll(ctx context.Context) ([]*domain.PriceConfiguration, error) {
	query := `SELECT ` + priceConfigColumns + ` FROM price_configurations ORDER BY created_at DESC LIMIT 200`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*domain.PriceConfiguration
	for rows.Next() {
		cfg, err := r.scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, cfg := range configs {
		if err := r.loadSlots(ctx, cfg); err != nil {
			return nil, err
		}
	}

	return configs, nil
}

// GetActiveByTuple retrieves the active configuration for a (service type, city) pair.
func (r *PriceConfigRepository) GetActiveByTuple(ctx context.Context, serviceTypeID, cityID string) (*domain.PriceConfiguration, error) {
	query := `
		SELECT ` + priceConfigColumns + `
		FROM price_configurations
		WHERE service_type_id = $1 AND city_id = $2 AND business_status = TRUE
	`

	cfg, err := r.scanConfig(r.q.QueryRowContext(ctx, query, serviceTypeID, cityID))
	if err != nil {
		return nil, err
	}

	if err := r.loadSlots(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Update replaces all mutable fields and the full surge slot set.
func (r *PriceConfigRepository) Update(ctx context.Context, cfg *domain.PriceConfiguration) error {
	query := `
		UPDATE price_configurations
		SET service_type_id = $1, country_id = $2, city_id = $3, max_space = $4,
			provider_profit = $5, min_fare = $6, base_price = $7,
			distance_for_base_price = $8, price_per_unit_distance = $9,
			price_per_unit_time = $10, waiting_time_start_after_minute = $11,
			price_for_waiting_time = $12, cancellation_fee = $13, tax = $14,
			user_tax = $15, user_miscellaneous_fee = $16, provider_tax = $17,
			provider_miscellaneous_fee = $18, car_rental_business = $19,
			is_zone = $20, is_surge_hours = $21, business_status = $22,
			surge_multiplier = $23, updated_at = $24
		WHERE id = $25
	`

	result, err := r.q.ExecContext(ctx, query,
		cfg.ServiceTypeID,
		cfg.CountryID,
		cfg.CityID,
		cfg.MaxSpace,
		cfg.ProviderProfit,
		cfg.MinFare,
		cfg.BasePrice,
		cfg.DistanceForBasePrice,
		cfg.PricePerUnitDistance,
		cfg.PricePerUnitTime,
		cfg.WaitingTimeStartAfterMinute,
		cfg.PriceForWaitingTime,
		cfg.CancellationFee,
		cfg.Tax,
		cfg.UserTax,
		cfg.UserMiscellaneousFee,
		cfg.ProviderTax,
		cfg.ProviderMiscellaneousFee,
		cfg.CarRentalBusiness,
		cfg.IsZone,
		cfg.IsSurgeHours,
		cfg.BusinessStatus,
		cfg.SurgeMultiplier,
		cfg.UpdatedAt,
		cfg.ID,
	)
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

	if _, err := r.q.ExecContext(ctx, `DELETE FROM surge_slots WHERE price_configuration_id = $1`, cfg.ID); err != nil {
		return err
	}

	return r.insertSlots(ctx, cfg.ID, cfg.SurgeTimes)
}

// scanner abstracts *sql.Row and *sql.Rows for scanConfig.
type scanner interface {
	Scan(dest ...any) error
}

func (r *PriceConfigRepository) scanConfig(row scanner) (*domain.PriceConfiguration, error) {
	var cfg domain.PriceConfiguration
	err := row.Scan(
		&cfg.ID,
		&cfg.ServiceTypeID,
		&cfg.CountryID,
		&cfg.CityID,
		&cfg.MaxSpace,
		&cfg.ProviderProfit,
		&cfg.MinFare,
		&cfg.BasePrice,
		&cfg.DistanceForBasePrice,
		&cfg.PricePerUnitDistance,
		&cfg.PricePerUnitTime,
		&cfg.WaitingTimeStartAfterMinute,
		&cfg.PriceForWaitingTime,
		&cfg.CancellationFee,
		&cfg.Tax,
		&cfg.UserTax,
		&cfg.UserMiscellaneousFee,
		&cfg.ProviderTax,
		&cfg.ProviderMiscellaneousFee,
		&cfg.CarRentalBusiness,
		&cfg.IsZone,
		&cfg.IsSurgeHours,
		&cfg.BusinessStatus,
		&cfg.SurgeMultiplier,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *PriceConfigRepository) insertSlots(ctx context.Context, configID string, slots []domain.SurgeSlot) error {
	query := `
		INSERT INTO surge_slots (price_configuration_id, day, start_minute, end_minute, multiplier)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, slot := range slots {
		if _, err := r.q.ExecContext(ctx, query,
			configID,
			slot.Day,
			slot.StartMinute,
			slot.EndMinute,
			slot.Multiplier,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PriceConfigRepository) loadSlots(ctx context.Context, cfg *domain.PriceConfiguration) error {
	query := `
		SELECT day, start_minute, end_minute, multiplier
		FROM surge_slots
		WHERE price_configuration_id = $1
		ORDER BY day, start_minute
	`

	rows, err := r.q.QueryContext(ctx, query, cfg.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var slot domain.SurgeSlot
		if err := rows.Scan(&slot.Day, &slot.StartMinute, &slot.EndMinute, &slot.Multiplier); err != nil {
			return err
		}
		cfg.SurgeTimes = append(cfg.SurgeTimes, slot)
	}
	return rows.Err()
}

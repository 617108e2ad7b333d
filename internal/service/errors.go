package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfigID is returned when a configuration ID is empty.
	ErrInvalidConfigID = errors.New("invalid price configuration id")

	// ErrInvalidZonePriceID is returned when a zone price ID is empty.
	ErrInvalidZonePriceID = errors.New("invalid zone price id")

	// ErrInvalidTripInput is returned when trip distance or duration is negative.
	ErrInvalidTripInput = errors.New("invalid trip input")

	// ErrInactiveConfiguration is returned when pricing is attempted against a
	// configuration whose business status is disabled.
	ErrInactiveConfiguration = errors.New("configuration is inactive")

	// ErrNoActiveConfiguration is returned when no active configuration exists
	// for the requested (service type, city) pair.
	ErrNoActiveConfiguration = errors.New("no active configuration for service type and city")

	// ErrSameZone is returned when a zone price references one zone twice.
	ErrSameZone = errors.New("from and to zones must differ")

	// ErrZoneCityMismatch is returned when a zone price references a zone
	// outside the configuration's city.
	ErrZoneCityMismatch = errors.New("zone does not belong to the configuration's city")

	// ErrConfigEditInProgress is returned when another admin edit holds the
	// tuple's edit lock.
	ErrConfigEditInProgress = errors.New("another edit is in progress for this configuration")
)

// ValidationError reports a rejected configuration or request field. It
// carries the field name so the caller can render an actionable message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateConfigurationError reports a (service type, city) tuple collision
// with another active configuration.
type DuplicateConfigurationError struct {
	ServiceTypeID string
	CityID        string
	ConflictingID string
}

func (e *DuplicateConfigurationError) Error() string {
	return fmt.Sprintf(
		"active configuration %s already exists for service type %s in city %s",
		e.ConflictingID, e.ServiceTypeID, e.CityID,
	)
}

// OverrideConflictError reports an attempt to create a second zone price for
// an unordered zone pair.
type OverrideConflictError struct {
	FromZoneID string
	ToZoneID   string
	ExistingID string
}

func (e *OverrideConflictError) Error() string {
	return fmt.Sprintf(
		"zone price %s already covers the pair (%s, %s)",
		e.ExistingID, e.FromZoneID, e.ToZoneID,
	)
}

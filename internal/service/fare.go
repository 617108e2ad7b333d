package service

import (
	"fmt"

	"fare/internal/domain"
)

// ResolveZoneOverride returns the fixed zone price covering the trip's
// unordered zone pair, or nil when zone pricing is disabled on the
// configuration, either zone is missing, or no record matches. The lookup is
// bidirectional: (A,B) and (B,A) resolve to the same record.
func ResolveZoneOverride(cfg *domain.PriceConfiguration, overrides []*domain.ZonePrice, fromZoneID, toZoneID string) *domain.ZonePrice {
	if cfg == nil || !cfg.IsZone {
		return nil
	}
	if fromZoneID == "" || toZoneID == "" {
		return nil
	}

	for _, zp := range overrides {
		if zp.MatchesPair(fromZoneID, toZoneID) {
			return zp
		}
	}
	return nil
}

// ComposeFare prices a candidate trip against a configuration. It is pure:
// the same configuration, override set, and trip always produce the same
// breakdown, and time-of-day is taken from the trip rather than a clock.
//
// When a zone override resolves, the fare is the fixed amount plus rider
// taxes and fees; distance, time, waiting, and surge are bypassed entirely.
// Otherwise the metered formula applies: base price plus distance beyond the
// included allowance, duration, and waiting beyond the grace period, scaled
// by the surge multiplier, then floored at the minimum fare. The floor is
// applied after surge so a low multiplier can never undercut it.
//
// The cancellation fee is never part of a composed fare; see
// CancellationCharge for that path.
func ComposeFare(cfg *domain.PriceConfiguration, overrides []*domain.ZonePrice, trip domain.TripDetails) (*domain.FareBreakdown, error) {
	if cfg == nil {
		return nil, ErrInvalidConfigID
	}
	if !cfg.BusinessStatus {
		return nil, ErrInactiveConfiguration
	}
	if trip.DistanceTraveled < 0 {
		return nil, fmt.Errorf("%w: distance_traveled is negative", ErrInvalidTripInput)
	}
	if trip.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration_minutes is negative", ErrInvalidTripInput)
	}
	if trip.WaitMinutes < 0 {
		return nil, fmt.Errorf("%w: wait_minutes is negative", ErrInvalidTripInput)
	}

	if zp := ResolveZoneOverride(cfg, overrides, trip.FromZoneID, trip.ToZoneID); zp != nil {
		return settle(cfg, &domain.FareBreakdown{
			Path:            domain.PricingPathZoneFixed,
			ZonePriceID:     zp.ID,
			SurgeMultiplier: 1.0,
			Subtotal:        zp.Amount,
		}), nil
	}

	billableDistance := trip.DistanceTraveled - cfg.DistanceForBasePrice
	if billableDistance < 0 {
		billableDistance = 0
	}
	distanceCharge := billableDistance * cfg.PricePerUnitDistance

	timeCharge := trip.DurationMinutes * cfg.PricePerUnitTime

	billableWait := trip.WaitMinutes - cfg.WaitingTimeStartAfterMinute
	if billableWait < 0 {
		billableWait = 0
	}
	waitCharge := billableWait * cfg.PriceForWaitingTime

	subtotal := cfg.BasePrice + distanceCharge + timeCharge + waitCharge

	multiplier := ResolveSurgeMultiplier(cfg, trip.RequestDay, trip.RequestMinuteOfDay)
	subtotal *= multiplier

	minFareApplied := false
	if subtotal < cfg.MinFare {
		subtotal = cfg.MinFare
		minFareApplied = true
	}

	return settle(cfg, &domain.FareBreakdown{
		Path:            domain.PricingPathMetered,
		BaseCharge:      cfg.BasePrice,
		DistanceCharge:  distanceCharge,
		TimeCharge:      timeCharge,
		WaitCharge:      waitCharge,
		SurgeMultiplier: multiplier,
		MinFareApplied:  minFareApplied,
		Subtotal:        subtotal,
	}), nil
}

// settle fills the tax lines, rider total, and revenue split from a
// breakdown whose Subtotal is final. Tax percentages each apply to the
// subtotal independently, never to each other's output, and the flat
// miscellaneous fee stacks on top. The driver share is a percentage of the
// subtotal with the provider tax and the flat provider fee deducted,
// floored at zero.
func settle(cfg *domain.PriceConfiguration, b *domain.FareBreakdown) *domain.FareBreakdown {
	b.TaxAmount = b.Subtotal * (cfg.Tax / 100)
	b.UserTaxAmount = b.Subtotal * (cfg.UserTax / 100)
	b.UserMiscFee = cfg.UserMiscellaneousFee
	b.RiderTotal = b.Subtotal + b.TaxAmount + b.UserTaxAmount + b.UserMiscFee

	share := b.Subtotal * (cfg.ProviderProfit / 100)
	payout := share - share*(cfg.ProviderTax/100) - cfg.ProviderMiscellaneousFee
	if payout < 0 {
		payout = 0
	}
	b.DriverPayout = payout
	b.PlatformRevenue = b.RiderTotal - b.DriverPayout

	return b
}

// CancellationCharge returns the rider-facing charge for a cancelled trip:
// the configuration's cancellation fee plus rider taxes and fees, additively.
// This is the only path on which the cancellation fee is billed.
func CancellationCharge(cfg *domain.PriceConfiguration) (float64, error) {
	if cfg == nil {
		return 0, ErrInvalidConfigID
	}
	if !cfg.BusinessStatus {
		return 0, ErrInactiveConfiguration
	}

	fee := cfg.CancellationFee
	return fee + fee*(cfg.Tax/100) + fee*(cfg.UserTax/100) + cfg.UserMiscellaneousFee, nil
}

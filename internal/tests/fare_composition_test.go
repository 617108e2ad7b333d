package tests

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"fare/internal/domain"
	"fare/internal/service"
)

// floatEquals compares fare amounts with a tolerance well below a cent.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// meteredConfig returns an active configuration with no surge, no zones,
// and no taxes, so metered math can be asserted in isolation.
func meteredConfig() *domain.PriceConfiguration {
	return &domain.PriceConfiguration{
		ID:                   "cfg-1",
		ServiceTypeID:        "st-sedan",
		CityID:               "city-1",
		MaxSpace:             4,
		ProviderProfit:       80,
		MinFare:              1.75,
		BasePrice:            6,
		PricePerUnitDistance: 1.75,
		PricePerUnitTime:     0.25,
		BusinessStatus:       true,
	}
}

// ──────────────────────────────────────────────
// METERED PATH
// ──────────────────────────────────────────────

func TestComposeFare_MeteredSubtotal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		trip         domain.TripDetails
		wantSubtotal float64
		wantFloored  bool
	}{
		{
			name:         "distance and time charges",
			trip:         domain.TripDetails{DistanceTraveled: 5, DurationMinutes: 10},
			wantSubtotal: 6 + 5*1.75 + 10*0.25, // 17.25
		},
		{
			name:         "short trip still above minimum",
			trip:         domain.TripDetails{DistanceTraveled: 0, DurationMinutes: 1},
			wantSubtotal: 6.25,
		},
		{
			name:         "zero trip collapses to base",
			trip:         domain.TripDetails{},
			wantSubtotal: 6,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			breakdown, err := service.ComposeFare(meteredConfig(), nil, tc.trip)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			if breakdown.Path != domain.PricingPathMetered {
				t.Errorf("expected metered path, got %s", breakdown.Path)
			}
			if !floatEquals(breakdown.Subtotal, tc.wantSubtotal) {
				t.Errorf("expected subtotal %v, got %v", tc.wantSubtotal, breakdown.Subtotal)
			}
			if breakdown.MinFareApplied != tc.wantFloored {
				t.Errorf("expected min fare applied=%v, got %v", tc.wantFloored, breakdown.MinFareApplied)
			}
		})
	}
}

func TestComposeFare_MinimumFareFloor(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.BasePrice = 0
	cfg.PricePerUnitDistance = 0.1
	cfg.PricePerUnitTime = 0
	cfg.MinFare = 5

	breakdown, err := service.ComposeFare(cfg, nil, domain.TripDetails{DistanceTraveled: 1})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !floatEquals(breakdown.Subtotal, 5) {
		t.Errorf("expected subtotal floored to 5, got %v", breakdown.Subtotal)
	}
	if !breakdown.MinFareApplied {
		t.Error("expected min fare applied flag to be set")
	}
	// The raw distance charge stays visible for auditing.
	if !floatEquals(breakdown.DistanceCharge, 0.1) {
		t.Errorf("expected distance charge 0.1, got %v", breakdown.DistanceCharge)
	}
}

func TestComposeFare_FloorAppliesAfterSurge(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.BasePrice = 40
	cfg.PricePerUnitDistance = 0
	cfg.PricePerUnitTime = 0
	cfg.MinFare = 100
	cfg.IsSurgeHours = true
	cfg.SurgeTimes = []domain.SurgeSlot{
		{Day: domain.WeekdayMon, StartMinute: 8 * 60, EndMinute: 10 * 60, Multiplier: 2.0},
	}

	trip := domain.TripDetails{RequestDay: domain.WeekdayMon, RequestMinuteOfDay: 9 * 60}

	// 40 * 2.0 = 80, still below the floor.
	breakdown, err := service.ComposeFare(cfg, nil, trip)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !floatEquals(breakdown.Subtotal, 100) {
		t.Errorf("expected floored subtotal 100, got %v", breakdown.Subtotal)
	}
	if !breakdown.MinFareApplied {
		t.Error("expected min fare applied flag to be set")
	}

	// 60 * 2.0 = 120 clears the floor.
	cfg.BasePrice = 60
	breakdown, err = service.ComposeFare(cfg, nil, trip)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !floatEquals(breakdown.Subtotal, 120) {
		t.Errorf("expected surged subtotal 120, got %v", breakdown.Subtotal)
	}
	if breakdown.MinFareApplied {
		t.Error("expected min fare applied flag to be unset")
	}
}

func TestComposeFare_SubUnitMultiplierDiscountsDownToFloor(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.BasePrice = 40
	cfg.PricePerUnitDistance = 0
	cfg.PricePerUnitTime = 0
	cfg.MinFare = 20
	cfg.IsSurgeHours = true
	cfg.SurgeTimes = []domain.SurgeSlot{
		{Day: domain.WeekdayMon, StartMinute: 8 * 60, EndMinute: 10 * 60, Multiplier: 0.8},
	}

	trip := domain.TripDetails{RequestDay: domain.WeekdayMon, RequestMinuteOfDay: 9 * 60}

	// 40 * 0.8 = 32, above the floor: the discount sticks.
	breakdown, err := service.ComposeFare(cfg, nil, trip)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !floatEquals(breakdown.SurgeMultiplier, 0.8) {
		t.Errorf("expected surge multiplier 0.8, got %v", breakdown.SurgeMultiplier)
	}
	if !floatEquals(breakdown.Subtotal, 32) {
		t.Errorf("expected discounted subtotal 32, got %v", breakdown.Subtotal)
	}
	if breakdown.MinFareApplied {
		t.Error("expected min fare applied flag to be unset")
	}

	// The floor, not the multiplier, limits how low a discount can go.
	cfg.MinFare = 35
	breakdown, err = service.ComposeFare(cfg, nil, trip)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !floatEquals(breakdown.Subtotal, 35) {
		t.Errorf("expected floored subtotal 35, got %v", breakdown.Subtotal)
	}
	if !breakdown.MinFareApplied {
		t.Error("expected min fare applied flag to be set")
	}
}

func TestComposeFare_DistanceAllowanceAndWaitingGrace(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.DistanceForBasePrice = 3
	cfg.WaitingTimeStartAfterMinute = 3
	cfg.PriceForWaitingTime = 2

	// Distance below the included allowance is not billed.
	breakdown, err := service.ComposeFare(cfg, nil, domain.TripDetails{DistanceTraveled: 2})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !floatEquals(breakdown.DistanceCharge, 0) {
		t.Errorf("expected zero distance charge, got %v", breakdown.DistanceCharge)
	}

	// Waiting is billed only beyond the grace period.
	breakdown, err = service.ComposeFare(cfg, nil, domain.TripDetails{WaitMinutes: 10})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !floatEquals(breakdown.WaitCharge, (10-3)*2) {
		t.Errorf("expected wait charge 14, got %v", breakdown.WaitCharge)
	}
}

// ──────────────────────────────────────────────
// TAXES AND REVENUE SPLIT
// ──────────────────────────────────────────────

func TestComposeFare_TaxesApplyIndependently(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.BasePrice = 100
	cfg.PricePerUnitDistance = 0
	cfg.PricePerUnitTime = 0
	cfg.Tax = 10
	cfg.UserTax = 5
	cfg.UserMiscellaneousFee = 2

	breakdown, err := service.ComposeFare(cfg, nil, domain.TripDetails{})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Each percentage applies to the subtotal, never to the other's output.
	if !floatEquals(breakdown.TaxAmount, 10) {
		t.Errorf("expected tax 10, got %v", breakdown.TaxAmount)
	}
	if !floatEquals(breakdown.UserTaxAmount, 5) {
		t.Errorf("expected user tax 5, got %v", breakdown.UserTaxAmount)
	}
	if !floatEquals(breakdown.RiderTotal, 117) {
		t.Errorf("expected rider total 117, got %v", breakdown.RiderTotal)
	}
}

func TestComposeFare_DriverPayoutFormula(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		providerProfit float64
		providerTax    float64
		providerMisc   float64
		wantPayout     float64
	}{
		{name: "full share", providerProfit: 100, wantPayout: 100},
		{name: "no share", providerProfit: 0, wantPayout: 0},
		{name: "typical split", providerProfit: 80, providerTax: 10, providerMisc: 1, wantPayout: 80 - 8 - 1},
		{name: "deductions floor at zero", providerProfit: 1, providerTax: 0, providerMisc: 50, wantPayout: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := meteredConfig()
			cfg.BasePrice = 100
			cfg.PricePerUnitDistance = 0
			cfg.PricePerUnitTime = 0
			cfg.ProviderProfit = tc.providerProfit
			cfg.ProviderTax = tc.providerTax
			cfg.ProviderMiscellaneousFee = tc.providerMisc

			breakdown, err := service.ComposeFare(cfg, nil, domain.TripDetails{})
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			if !floatEquals(breakdown.DriverPayout, tc.wantPayout) {
				t.Errorf("expected payout %v, got %v", tc.wantPayout, breakdown.DriverPayout)
			}
			if !floatEquals(breakdown.PlatformRevenue, breakdown.RiderTotal-breakdown.DriverPayout) {
				t.Errorf("platform revenue must be rider total minus payout, got %v", breakdown.PlatformRevenue)
			}
		})
	}
}

// ──────────────────────────────────────────────
// ZONE OVERRIDE PATH
// ──────────────────────────────────────────────

func TestComposeFare_ZoneOverrideBypassesMetering(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.IsZone = true
	cfg.IsSurgeHours = true
	cfg.SurgeTimes = []domain.SurgeSlot{
		{Day: domain.WeekdayMon, StartMinute: 0, EndMinute: 24 * 60, Multiplier: 3.0},
	}
	overrides := []*domain.ZonePrice{
		{ID: "zp-1", PriceConfigurationID: cfg.ID, FromZoneID: "zone-a", ToZoneID: "zone-b", Amount: 25},
	}

	// A very long trip that would be expensive on the meter.
	trip := domain.TripDetails{
		DistanceTraveled:   100,
		DurationMinutes:    90,
		FromZoneID:         "zone-a",
		ToZoneID:           "zone-b",
		RequestDay:         domain.WeekdayMon,
		RequestMinuteOfDay: 9 * 60,
	}

	breakdown, err := service.ComposeFare(cfg, overrides, trip)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if breakdown.Path != domain.PricingPathZoneFixed {
		t.Fatalf("expected zone fixed path, got %s", breakdown.Path)
	}
	if breakdown.ZonePriceID != "zp-1" {
		t.Errorf("expected zone price id zp-1, got %s", breakdown.ZonePriceID)
	}
	if !floatEquals(breakdown.Subtotal, 25) {
		t.Errorf("expected fixed subtotal 25, got %v", breakdown.Subtotal)
	}
	// Surge and metered components must not contribute.
	if breakdown.SurgeMultiplier != 1.0 {
		t.Errorf("expected surge bypassed, got multiplier %v", breakdown.SurgeMultiplier)
	}
	if breakdown.DistanceCharge != 0 || breakdown.TimeCharge != 0 || breakdown.WaitCharge != 0 || breakdown.BaseCharge != 0 {
		t.Error("expected zero metered components on the zone fixed path")
	}
}

func TestComposeFare_ReversedZonePairResolvesSameFare(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.IsZone = true
	overrides := []*domain.ZonePrice{
		{ID: "zp-1", PriceConfigurationID: cfg.ID, FromZoneID: "zone-a", ToZoneID: "zone-b", Amount: 25},
	}

	forward, err := service.ComposeFare(cfg, overrides, domain.TripDetails{FromZoneID: "zone-a", ToZoneID: "zone-b"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	reverse, err := service.ComposeFare(cfg, overrides, domain.TripDetails{FromZoneID: "zone-b", ToZoneID: "zone-a"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if forward.RiderTotal != reverse.RiderTotal {
		t.Errorf("expected identical totals both directions, got %v and %v", forward.RiderTotal, reverse.RiderTotal)
	}
}

func TestComposeFare_ZoneFlagOffIgnoresOverrides(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.IsZone = false
	overrides := []*domain.ZonePrice{
		{ID: "zp-1", PriceConfigurationID: cfg.ID, FromZoneID: "zone-a", ToZoneID: "zone-b", Amount: 25},
	}

	breakdown, err := service.ComposeFare(cfg, overrides, domain.TripDetails{
		DistanceTraveled: 5,
		DurationMinutes:  10,
		FromZoneID:       "zone-a",
		ToZoneID:         "zone-b",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if breakdown.Path != domain.PricingPathMetered {
		t.Errorf("expected metered path with zone flag off, got %s", breakdown.Path)
	}
	if !floatEquals(breakdown.Subtotal, 17.25) {
		t.Errorf("expected metered subtotal 17.25, got %v", breakdown.Subtotal)
	}
}

// ──────────────────────────────────────────────
// ERRORS AND DETERMINISM
// ──────────────────────────────────────────────

func TestComposeFare_RejectsInvalidTripInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		trip domain.TripDetails
	}{
		{name: "negative distance", trip: domain.TripDetails{DistanceTraveled: -1}},
		{name: "negative duration", trip: domain.TripDetails{DurationMinutes: -1}},
		{name: "negative wait", trip: domain.TripDetails{WaitMinutes: -1}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := service.ComposeFare(meteredConfig(), nil, tc.trip)
			if !errors.Is(err, service.ErrInvalidTripInput) {
				t.Errorf("expected ErrInvalidTripInput, got: %v", err)
			}
		})
	}
}

func TestComposeFare_RejectsInactiveConfiguration(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.BusinessStatus = false

	_, err := service.ComposeFare(cfg, nil, domain.TripDetails{DistanceTraveled: 5})
	if !errors.Is(err, service.ErrInactiveConfiguration) {
		t.Errorf("expected ErrInactiveConfiguration, got: %v", err)
	}
}

func TestComposeFare_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.Tax = 7.5
	cfg.UserMiscellaneousFee = 1.2
	cfg.IsSurgeHours = true
	cfg.SurgeTimes = []domain.SurgeSlot{
		{Day: domain.WeekdayFri, StartMinute: 17 * 60, EndMinute: 20 * 60, Multiplier: 1.8},
	}

	trip := domain.TripDetails{
		DistanceTraveled:   12.4,
		DurationMinutes:    27,
		WaitMinutes:        4,
		RequestDay:         domain.WeekdayFri,
		RequestMinuteOfDay: 18*60 + 30,
	}

	first, err := service.ComposeFare(cfg, nil, trip)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := service.ComposeFare(cfg, nil, trip)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("expected identical breakdowns, got %+v and %+v", first, again)
		}
	}
}

func TestCancellationCharge(t *testing.T) {
	t.Parallel()

	cfg := meteredConfig()
	cfg.CancellationFee = 10
	cfg.Tax = 10
	cfg.UserTax = 5
	cfg.UserMiscellaneousFee = 2

	amount, err := service.CancellationCharge(cfg)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !floatEquals(amount, 10+1+0.5+2) {
		t.Errorf("expected cancellation charge 13.5, got %v", amount)
	}

	cfg.BusinessStatus = false
	if _, err := service.CancellationCharge(cfg); !errors.Is(err, service.ErrInactiveConfiguration) {
		t.Errorf("expected ErrInactiveConfiguration, got: %v", err)
	}
}

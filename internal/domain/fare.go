package domain

// PricingPath indicates which branch produced a fare.
type PricingPath string

const (
	// PricingPathMetered means the fare came from the distance/time/waiting
	// formula, with surge and the minimum-fare floor applied.
	PricingPathMetered PricingPath = "METERED"

	// PricingPathZoneFixed means a zone-to-zone fixed price applied and the
	// metered formula and surge were bypassed.
	PricingPathZoneFixed PricingPath = "ZONE_FIXED"
)

// TripDetails describes a candidate trip to be priced. Day and time are
// already localized to the city's timezone by the caller; fare composition
// itself never reads a clock.
type TripDetails struct {
	DistanceTraveled   float64 // same unit as the configuration's distance rates
	DurationMinutes    float64
	WaitMinutes        float64
	FromZoneID         string // optional
	ToZoneID           string // optional
	RequestDay         Weekday
	RequestMinuteOfDay int // minutes after local midnight
}

// FareBreakdown is the result of composing a fare. Every component that
// contributed to the totals is exposed for auditing.
type FareBreakdown struct {
	Path PricingPath

	BaseCharge     float64
	DistanceCharge float64
	TimeCharge     float64
	WaitCharge     float64

	SurgeMultiplier float64 // 1.0 when surge did not apply
	MinFareApplied  bool

	ZonePriceID string // set only on the zone-fixed path

	// Subtotal is post-surge, post-floor, pre-tax.
	Subtotal float64

	TaxAmount     float64
	UserTaxAmount float64
	UserMiscFee   float64

	RiderTotal      float64
	DriverPayout    float64
	PlatformRevenue float64
}

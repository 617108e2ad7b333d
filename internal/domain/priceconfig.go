package domain

import "time"

// Weekday identifies a day of the week in a surge slot.
type Weekday string

const (
	WeekdayMon Weekday = "Mon"
	WeekdayTue Weekday = "Tue"
	WeekdayWed Weekday = "Wed"
	WeekdayThu Weekday = "Thu"
	WeekdayFri Weekday = "Fri"
	WeekdaySat Weekday = "Sat"
	WeekdaySun Weekday = "Sun"
)

// SurgeSlot is a recurring weekly time window during which the metered fare
// is scaled by Multiplier. Times are minutes after local midnight in the
// city's timezone. Slots never span midnight; a window that would is stored
// as two slots.
type SurgeSlot struct {
	Day         Weekday
	StartMinute int
	EndMinute   int
	Multiplier  float64
}

// Matches reports whether the slot covers the given day and minute-of-day.
// The interval is half-open: [StartMinute, EndMinute).
func (s SurgeSlot) Matches(day Weekday, minuteOfDay int) bool {
	return s.Day == day && minuteOfDay >= s.StartMinute && minuteOfDay < s.EndMinute
}

// PriceConfiguration is the pricing rule set for one (service type, city)
// pair. At most one active configuration may exist per pair. Configurations
// are deactivated rather than deleted so completed trips keep their pricing
// provenance.
type PriceConfiguration struct {
	ID            string
	ServiceTypeID string
	CountryID     string
	CityID        string

	MaxSpace       int
	ProviderProfit float64 // percentage of the fare paid to the driver, 0-100

	MinFare                     float64
	BasePrice                   float64
	DistanceForBasePrice        float64 // distance already covered by BasePrice
	PricePerUnitDistance        float64
	PricePerUnitTime            float64
	WaitingTimeStartAfterMinute float64 // grace period before waiting fees accrue
	PriceForWaitingTime         float64 // per minute
	CancellationFee             float64

	Tax                      float64
	UserTax                  float64
	UserMiscellaneousFee     float64
	ProviderTax              float64
	ProviderMiscellaneousFee float64

	CarRentalBusiness bool
	IsZone            bool
	IsSurgeHours      bool
	BusinessStatus    bool

	// SurgeMultiplier is the legacy baseline multiplier. Slot resolution in
	// SurgeTimes is authoritative; values below 1 are treated as 1.0.
	SurgeMultiplier float64

	SurgeTimes []SurgeSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

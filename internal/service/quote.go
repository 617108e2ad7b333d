package service

import (
	"context"
	"time"

	"fare/internal/domain"
	"fare/internal/repository"
)

// QuoteService resolves the inputs of a fare quote (active configuration,
// zone prices, localized request time, currency) and delegates the actual
// pricing to ComposeFare, which stays pure.
type QuoteService struct {
	configService *PriceConfigService
	zonePriceRepo repository.ZonePriceRepository
	cityRepo      repository.CityRepository
	countryRepo   repository.CountryRepository
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(
	configService *PriceConfigService,
	zonePriceRepo repository.ZonePriceRepository,
	cityRepo repository.CityRepository,
	countryRepo repository.CountryRepository,
) *QuoteService {
	return &QuoteService{
		configService: configService,
		zonePriceRepo: zonePriceRepo,
		cityRepo:      cityRepo,
		countryRepo:   countryRepo,
	}
}

// QuoteRequest contains the parameters for a fare quote.
type QuoteRequest struct {
	ServiceTypeID    string
	CityID           string
	DistanceTraveled float64
	DurationMinutes  float64
	WaitMinutes      float64
	FromZoneID       string    // optional
	ToZoneID         string    // optional
	RequestTime      time.Time // zero means now
}

// QuoteResult contains a composed fare and its context.
type QuoteResult struct {
	ConfigID  string
	Currency  string
	Breakdown *domain.FareBreakdown
}

// CancellationQuoteResult contains the rider-facing cancellation charge.
type CancellationQuoteResult struct {
	ConfigID string
	Currency string
	Amount   float64
}

var weekdayNames = [...]domain.Weekday{
	time.Sunday:    domain.WeekdaySun,
	time.Monday:    domain.WeekdayMon,
	time.Tuesday:   domain.WeekdayTue,
	time.Wednesday: domain.WeekdayWed,
	time.Thursday:  domain.WeekdayThu,
	time.Friday:    domain.WeekdayFri,
	time.Saturday:  domain.WeekdaySat,
}

// Quote prices a candidate trip against the active configuration for the
// requested (service type, city) pair.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	if req.ServiceTypeID == "" {
		return nil, &ValidationError{Field: "service_type_id", Reason: "must not be empty"}
	}
	if req.CityID == "" {
		return nil, &ValidationError{Field: "city_id", Reason: "must not be empty"}
	}

	cfg, err := s.configService.GetActive(ctx, req.ServiceTypeID, req.CityID)
	if err != nil {
		return nil, err
	}

	var overrides []*domain.ZonePrice
	if cfg.IsZone && req.FromZoneID != "" && req.ToZoneID != "" {
		overrides, err = s.zonePriceRepo.ListByConfig(ctx, cfg.ID)
		if err != nil {
			return nil, err
		}
	}

	city, err := s.cityRepo.GetByID(ctx, req.CityID)
	if err != nil {
		return nil, err
	}

	day, minuteOfDay := s.localize(req.RequestTime, city.Timezone)

	breakdown, err := ComposeFare(cfg, overrides, domain.TripDetails{
		DistanceTraveled:   req.DistanceTraveled,
		DurationMinutes:    req.DurationMinutes,
		WaitMinutes:        req.WaitMinutes,
		FromZoneID:         req.FromZoneID,
		ToZoneID:           req.ToZoneID,
		RequestDay:         day,
		RequestMinuteOfDay: minuteOfDay,
	})
	if err != nil {
		return nil, err
	}

	return &QuoteResult{
		ConfigID:  cfg.ID,
		Currency:  s.currency(ctx, city.CountryID),
		Breakdown: breakdown,
	}, nil
}

// CancellationQuote returns the charge for cancelling a trip priced under
// the active configuration for the tuple.
func (s *QuoteService) CancellationQuote(ctx context.Context, serviceTypeID, cityID string) (*CancellationQuoteResult, error) {
	if serviceTypeID == "" {
		return nil, &ValidationError{Field: "service_type_id", Reason: "must not be empty"}
	}
	if cityID == "" {
		return nil, &ValidationError{Field: "city_id", Reason: "must not be empty"}
	}

	cfg, err := s.configService.GetActive(ctx, serviceTypeID, cityID)
	if err != nil {
		return nil, err
	}

	amount, err := CancellationCharge(cfg)
	if err != nil {
		return nil, err
	}

	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return nil, err
	}

	return &CancellationQuoteResult{
		ConfigID: cfg.ID,
		Currency: s.currency(ctx, city.CountryID),
		Amount:   amount,
	}, nil
}

// localize converts a request instant into the city's local weekday and
// minute-of-day. An unknown timezone falls back to UTC rather than failing
// the quote.
func (s *QuoteService) localize(at time.Time, timezone string) (domain.Weekday, int) {
	if at.IsZero() {
		at = time.Now()
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	local := at.In(loc)
	return weekdayNames[local.Weekday()], local.Hour()*60 + local.Minute()
}

// currency resolves the country's ISO currency code; quotes still go out if
// the catalog row is missing.
func (s *QuoteService) currency(ctx context.Context, countryID string) string {
	country, err := s.countryRepo.GetByID(ctx, countryID)
	if err != nil {
		return ""
	}
	return country.Currency
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fare/internal/domain"
	"fare/internal/service"
)

// QuoteHandler handles HTTP requests for fare quotes.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// QuoteRequest is the HTTP request body for a fare quote.
type QuoteRequest struct {
	ServiceTypeID    string  `json:"service_type_id"`
	CityID           string  `json:"city_id"`
	DistanceTraveled float64 `json:"distance_traveled"`
	DurationMinutes  float64 `json:"duration_minutes"`
	WaitMinutes      float64 `json:"wait_minutes"`
	FromZoneID       string  `json:"from_zone_id,omitempty"`
	ToZoneID         string  `json:"to_zone_id,omitempty"`
	RequestTime      string  `json:"request_time,omitempty"` // RFC 3339; defaults to now
}

// CancellationQuoteRequest is the HTTP request body for a cancellation quote.
type CancellationQuoteRequest struct {
	ServiceTypeID string `json:"service_type_id"`
	CityID        string `json:"city_id"`
}

// FareBreakdownResponse exposes every component of a composed fare.
type FareBreakdownResponse struct {
	Path            string  `json:"path"`
	BaseCharge      float64 `json:"base_charge"`
	DistanceCharge  float64 `json:"distance_charge"`
	TimeCharge      float64 `json:"time_charge"`
	WaitCharge      float64 `json:"wait_charge"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
	SurgeActive     bool    `json:"surge_active"`
	MinFareApplied  bool    `json:"min_fare_applied"`
	ZonePriceID     string  `json:"zone_price_id,omitempty"`
	Subtotal        float64 `json:"subtotal"`
	TaxAmount       float64 `json:"tax_amount"`
	UserTaxAmount   float64 `json:"user_tax_amount"`
	UserMiscFee     float64 `json:"user_miscellaneous_fee"`
	RiderTotal      float64 `json:"rider_total"`
	DriverPayout    float64 `json:"driver_payout"`
	PlatformRevenue float64 `json:"platform_revenue"`
}

// QuoteResponse is the HTTP response for a fare quote.
type QuoteResponse struct {
	ConfigID  string                `json:"price_configuration_id"`
	Currency  string                `json:"currency,omitempty"`
	Breakdown FareBreakdownResponse `json:"breakdown"`
}

// CancellationQuoteResponse is the HTTP response for a cancellation quote.
type CancellationQuoteResponse struct {
	ConfigID string  `json:"price_configuration_id"`
	Currency string  `json:"currency,omitempty"`
	Amount   float64 `json:"amount"`
}

// Quote handles POST /v1/quotes
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var requestTime time.Time
	if req.RequestTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.RequestTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "request_time must be RFC 3339",
				Field: "request_time",
			})
			return
		}
		requestTime = parsed
	}

	result, err := h.quoteService.Quote(c.Request.Context(), service.QuoteRequest{
		ServiceTypeID:    req.ServiceTypeID,
		CityID:           req.CityID,
		DistanceTraveled: req.DistanceTraveled,
		DurationMinutes:  req.DurationMinutes,
		WaitMinutes:      req.WaitMinutes,
		FromZoneID:       req.FromZoneID,
		ToZoneID:         req.ToZoneID,
		RequestTime:      requestTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, QuoteResponse{
		ConfigID:  result.ConfigID,
		Currency:  result.Currency,
		Breakdown: toBreakdownResponse(result.Breakdown),
	})
}

// CancellationQuote handles POST /v1/quotes/cancellation
func (h *QuoteHandler) CancellationQuote(c *gin.Context) {
	var req CancellationQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.quoteService.CancellationQuote(c.Request.Context(), req.ServiceTypeID, req.CityID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, CancellationQuoteResponse{
		ConfigID: result.ConfigID,
		Currency: result.Currency,
		Amount:   result.Amount,
	})
}

func toBreakdownResponse(b *domain.FareBreakdown) FareBreakdownResponse {
	return FareBreakdownResponse{
		Path:            string(b.Path),
		BaseCharge:      b.BaseCharge,
		DistanceCharge:  b.DistanceCharge,
		TimeCharge:      b.TimeCharge,
		WaitCharge:      b.WaitCharge,
		SurgeMultiplier: b.SurgeMultiplier,
		SurgeActive:     b.SurgeMultiplier > 1.0,
		MinFareApplied:  b.MinFareApplied,
		ZonePriceID:     b.ZonePriceID,
		Subtotal:        b.Subtotal,
		TaxAmount:       b.TaxAmount,
		UserTaxAmount:   b.UserTaxAmount,
		UserMiscFee:     b.UserMiscFee,
		RiderTotal:      b.RiderTotal,
		DriverPayout:    b.DriverPayout,
		PlatformRevenue: b.PlatformRevenue,
	}
}

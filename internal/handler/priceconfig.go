package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fare/internal/domain"
	"fare/internal/service"
)

// PriceConfigHandler handles HTTP requests for price configurations.
type PriceConfigHandler struct {
	configService *service.PriceConfigService
}

// NewPriceConfigHandler creates a new PriceConfigHandler.
func NewPriceConfigHandler(configService *service.PriceConfigService) *PriceConfigHandler {
	return &PriceConfigHandler{configService: configService}
}

// SurgeSlotPayload is the wire form of a surge slot. Times are "HH:MM" in
// the city's timezone.
type SurgeSlotPayload struct {
	Day        string  `json:"day"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Multiplier float64 `json:"multiplier"`
}

// PriceConfigPayload is the HTTP request body for creating or updating a
// price configuration. Updates replace all mutable fields.
type PriceConfigPayload struct {
	ServiceTypeID string `json:"service_type_id"`
	CityID        string `json:"city_id"`

	MaxSpace       int     `json:"max_space"`
	ProviderProfit float64 `json:"provider_profit"`

	MinFare                     float64 `json:"min_fare"`
	BasePrice                   float64 `json:"base_price"`
	DistanceForBasePrice        float64 `json:"distance_for_base_price"`
	PricePerUnitDistance        float64 `json:"price_per_unit_distance"`
	PricePerUnitTime            float64 `json:"price_per_unit_time"`
	WaitingTimeStartAfterMinute float64 `json:"waiting_time_start_after_minute"`
	PriceForWaitingTime         float64 `json:"price_for_waiting_time"`
	CancellationFee             float64 `json:"cancellation_fee"`

	Tax                      float64 `json:"tax"`
	UserTax                  float64 `json:"user_tax"`
	UserMiscellaneousFee     float64 `json:"user_miscellaneous_fee"`
	ProviderTax              float64 `json:"provider_tax"`
	ProviderMiscellaneousFee float64 `json:"provider_miscellaneous_fee"`

	CarRentalBusiness bool `json:"car_rental_business"`
	IsZone            bool `json:"is_zone"`
	IsSurgeHours      bool `json:"is_surge_hours"`
	BusinessStatus    bool `json:"business_status"`

	SurgeMultiplier float64            `json:"surge_multiplier,omitempty"`
	SurgeTimes      []SurgeSlotPayload `json:"surge_times,omitempty"`
}

// PriceConfigResponse is the HTTP response for a price configuration.
type PriceConfigResponse struct {
	ID            string `json:"id"`
	ServiceTypeID string `json:"service_type_id"`
	CountryID     string `json:"country_id"`
	CityID        string `json:"city_id"`

	MaxSpace       int     `json:"max_space"`
	ProviderProfit float64 `json:"provider_profit"`

	MinFare                     float64 `json:"min_fare"`
	BasePrice                   float64 `json:"base_price"`
	DistanceForBasePrice        float64 `json:"distance_for_base_price"`
	PricePerUnitDistance        float64 `json:"price_per_unit_distance"`
	PricePerUnitTime            float64 `json:"price_per_unit_time"`
	WaitingTimeStartAfterMinute float64 `json:"waiting_time_start_after_minute"`
	PriceForWaitingTime         float64 `json:"price_for_waiting_time"`
	CancellationFee             float64 `json:"cancellation_fee"`

	Tax                      float64 `json:"tax"`
	UserTax                  float64 `json:"user_tax"`
	UserMiscellaneousFee     float64 `json:"user_miscellaneous_fee"`
	ProviderTax              float64 `json:"provider_tax"`
	ProviderMiscellaneousFee float64 `json:"provider_miscellaneous_fee"`

	CarRentalBusiness bool `json:"car_rental_business"`
	IsZone            bool `json:"is_zone"`
	IsSurgeHours      bool `json:"is_surge_hours"`
	BusinessStatus    bool `json:"business_status"`

	SurgeMultiplier float64            `json:"surge_multiplier"`
	SurgeTimes      []SurgeSlotPayload `json:"surge_times,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Create handles POST /v1/price-configurations
func (h *PriceConfigHandler) Create(c *gin.Context) {
	var payload PriceConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	input, err := payload.toInput()
	if err != nil {
		respondError(c, err)
		return
	}

	cfg, err := h.configService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toConfigResponse(cfg))
}

// Update handles PUT /v1/price-configurations/:id
func (h *PriceConfigHandler) Update(c *gin.Context) {
	var payload PriceConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	input, err := payload.toInput()
	if err != nil {
		respondError(c, err)
		return
	}

	cfg, err := h.configService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toConfigResponse(cfg))
}

// Get handles GET /v1/price-configurations/:id
func (h *PriceConfigHandler) Get(c *gin.Context) {
	cfg, err := h.configService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toConfigResponse(cfg))
}

// GetAll handles GET /v1/price-configurations
func (h *PriceConfigHandler) GetAll(c *gin.Context) {
	configs, err := h.configService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PriceConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		response = append(response, toConfigResponse(cfg))
	}

	respondJSON(c, http.StatusOK, response)
}

// Deactivate handles POST /v1/price-configurations/:id/deactivate
func (h *PriceConfigHandler) Deactivate(c *gin.Context) {
	cfg, err := h.configService.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toConfigResponse(cfg))
}

// toInput converts the wire payload into a service input, parsing surge slot
// clock strings. Malformed times are rejected here rather than coerced.
func (p PriceConfigPayload) toInput() (service.PriceConfigInput, error) {
	input := service.PriceConfigInput{
		ServiceTypeID:               p.ServiceTypeID,
		CityID:                      p.CityID,
		MaxSpace:                    p.MaxSpace,
		ProviderProfit:              p.ProviderProfit,
		MinFare:                     p.MinFare,
		BasePrice:                   p.BasePrice,
		DistanceForBasePrice:        p.DistanceForBasePrice,
		PricePerUnitDistance:        p.PricePerUnitDistance,
		PricePerUnitTime:            p.PricePerUnitTime,
		WaitingTimeStartAfterMinute: p.WaitingTimeStartAfterMinute,
		PriceForWaitingTime:         p.PriceForWaitingTime,
		CancellationFee:             p.CancellationFee,
		Tax:                         p.Tax,
		UserTax:                     p.UserTax,
		UserMiscellaneousFee:        p.UserMiscellaneousFee,
		ProviderTax:                 p.ProviderTax,
		ProviderMiscellaneousFee:    p.ProviderMiscellaneousFee,
		CarRentalBusiness:           p.CarRentalBusiness,
		IsZone:                      p.IsZone,
		IsSurgeHours:                p.IsSurgeHours,
		BusinessStatus:              p.BusinessStatus,
		SurgeMultiplier:             p.SurgeMultiplier,
	}

	for i, slot := range p.SurgeTimes {
		start, err := service.ParseClock(slot.StartTime)
		if err != nil {
			return input, &service.ValidationError{
				Field:  fmt.Sprintf("surge_times[%d].start_time", i),
				Reason: err.Error(),
			}
		}
		end, err := service.ParseClock(slot.EndTime)
		if err != nil {
			return input, &service.ValidationError{
				Field:  fmt.Sprintf("surge_times[%d].end_time", i),
				Reason: err.Error(),
			}
		}

		input.SurgeTimes = append(input.SurgeTimes, domain.SurgeSlot{
			Day:         domain.Weekday(slot.Day),
			StartMinute: start,
			EndMinute:   end,
			Multiplier:  slot.Multiplier,
		})
	}

	return input, nil
}

func toConfigResponse(cfg *domain.PriceConfiguration) PriceConfigResponse {
	resp := PriceConfigResponse{
		ID:                          cfg.ID,
		ServiceTypeID:               cfg.ServiceTypeID,
		CountryID:                   cfg.CountryID,
		CityID:                      cfg.CityID,
		MaxSpace:                    cfg.MaxSpace,
		ProviderProfit:              cfg.ProviderProfit,
		MinFare:                     cfg.MinFare,
		BasePrice:                   cfg.BasePrice,
		DistanceForBasePrice:        cfg.DistanceForBasePrice,
		PricePerUnitDistance:        cfg.PricePerUnitDistance,
		PricePerUnitTime:            cfg.PricePerUnitTime,
		WaitingTimeStartAfterMinute: cfg.WaitingTimeStartAfterMinute,
		PriceForWaitingTime:         cfg.PriceForWaitingTime,
		CancellationFee:             cfg.CancellationFee,
		Tax:                         cfg.Tax,
		UserTax:                     cfg.UserTax,
		UserMiscellaneousFee:        cfg.UserMiscellaneousFee,
		ProviderTax:                 cfg.ProviderTax,
		ProviderMiscellaneousFee:    cfg.ProviderMiscellaneousFee,
		CarRentalBusiness:           cfg.CarRentalBusiness,
		IsZone:                      cfg.IsZone,
		IsSurgeHours:                cfg.IsSurgeHours,
		BusinessStatus:              cfg.BusinessStatus,
		SurgeMultiplier:             cfg.SurgeMultiplier,
		CreatedAt:                   cfg.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                   cfg.UpdatedAt.Format(time.RFC3339),
	}

	for _, slot := range cfg.SurgeTimes {
		resp.SurgeTimes = append(resp.SurgeTimes, SurgeSlotPayload{
			Day:        string(slot.Day),
			StartTime:  service.FormatClock(slot.StartMinute),
			EndTime:    service.FormatClock(slot.EndMinute),
			Multiplier: slot.Multiplier,
		})
	}

	return resp
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fare/internal/domain"
	"fare/internal/service"
)

// ZonePriceHandler handles HTTP requests for zone prices.
type ZonePriceHandler struct {
	zonePriceService *service.ZonePriceService
}

// NewZonePriceHandler creates a new ZonePriceHandler.
func NewZonePriceHandler(zonePriceService *service.ZonePriceService) *ZonePriceHandler {
	return &ZonePriceHandler{zonePriceService: zonePriceService}
}

// CreateZonePriceRequest is the HTTP request body for creating a zone price.
type CreateZonePriceRequest struct {
	PriceConfigurationID string  `json:"price_configuration_id"`
	FromZoneID           string  `json:"from_zone_id"`
	ToZoneID             string  `json:"to_zone_id"`
	Amount               float64 `json:"amount"`
}

// ZonePriceResponse is the HTTP response for a zone price.
type ZonePriceResponse struct {
	ID                   string  `json:"id"`
	PriceConfigurationID string  `json:"price_configuration_id"`
	FromZoneID           string  `json:"from_zone_id"`
	ToZoneID             string  `json:"to_zone_id"`
	Amount               float64 `json:"amount"`
	CreatedAt            string  `json:"created_at"`
}

// Create handles POST /v1/zone-prices
func (h *ZonePriceHandler) Create(c *gin.Context) {
	var req CreateZonePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	zp, err := h.zonePriceService.Create(c.Request.Context(), service.CreateZonePriceRequest{
		PriceConfigurationID: req.PriceConfigurationID,
		FromZoneID:           req.FromZoneID,
		ToZoneID:             req.ToZoneID,
		Amount:               req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toZonePriceResponse(zp))
}

// Get handles GET /v1/zone-prices/:id
func (h *ZonePriceHandler) Get(c *gin.Context) {
	zp, err := h.zonePriceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toZonePriceResponse(zp))
}

// ListByConfig handles GET /v1/zone-prices?config_id=
func (h *ZonePriceHandler) ListByConfig(c *gin.Context) {
	prices, err := h.zonePriceService.ListByConfig(c.Request.Context(), c.Query("config_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ZonePriceResponse, 0, len(prices))
	for _, zp := range prices {
		response = append(response, toZonePriceResponse(zp))
	}

	respondJSON(c, http.StatusOK, response)
}

// Delete handles DELETE /v1/zone-prices/:id
func (h *ZonePriceHandler) Delete(c *gin.Context) {
	if err := h.zonePriceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toZonePriceResponse(zp *domain.ZonePrice) ZonePriceResponse {
	return ZonePriceResponse{
		ID:                   zp.ID,
		PriceConfigurationID: zp.PriceConfigurationID,
		FromZoneID:           zp.FromZoneID,
		ToZoneID:             zp.ToZoneID,
		Amount:               zp.Amount,
		CreatedAt:            zp.CreatedAt.Format(time.RFC3339),
	}
}

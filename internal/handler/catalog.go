package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fare/internal/repository"
)

// CatalogHandler serves the read-only catalog entities referenced by price
// configurations: zones, cities, and service types.
type CatalogHandler struct {
	zoneRepo        repository.ZoneRepository
	cityRepo        repository.CityRepository
	serviceTypeRepo repository.ServiceTypeRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	zoneRepo repository.ZoneRepository,
	cityRepo repository.CityRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
) *CatalogHandler {
	return &CatalogHandler{
		zoneRepo:        zoneRepo,
		cityRepo:        cityRepo,
		serviceTypeRepo: serviceTypeRepo,
	}
}

// ZoneResponse is the HTTP response for a zone.
type ZoneResponse struct {
	ID        string `json:"id"`
	CityID    string `json:"city_id"`
	Name      string `json:"name"`
	IsAirport bool   `json:"is_airport"`
}

// CityResponse is the HTTP response for a city.
type CityResponse struct {
	ID        string `json:"id"`
	CountryID string `json:"country_id"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
}

// ServiceTypeResponse is the HTTP response for a service type.
type ServiceTypeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DefaultMaxSpace int    `json:"default_max_space"`
}

// ListZones handles GET /v1/zones?city_id=
func (h *CatalogHandler) ListZones(c *gin.Context) {
	cityID := c.Query("city_id")
	if cityID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "city_id is required", Field: "city_id"})
		return
	}

	zones, err := h.zoneRepo.ListByCity(c.Request.Context(), cityID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ZoneResponse, 0, len(zones))
	for _, zone := range zones {
		response = append(response, ZoneResponse{
			ID:        zone.ID,
			CityID:    zone.CityID,
			Name:      zone.Name,
			IsAirport: zone.IsAirport,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// ListCities handles GET /v1/cities
func (h *CatalogHandler) ListCities(c *gin.Context) {
	cities, err := h.cityRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CityResponse, 0, len(cities))
	for _, city := range cities {
		response = append(response, CityResponse{
			ID:        city.ID,
			CountryID: city.CountryID,
			Name:      city.Name,
			Timezone:  city.Timezone,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// ListServiceTypes handles GET /v1/service-types
func (h *CatalogHandler) ListServiceTypes(c *gin.Context) {
	types, err := h.serviceTypeRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ServiceTypeResponse, 0, len(types))
	for _, st := range types {
		response = append(response, ServiceTypeResponse{
			ID:              st.ID,
			Name:            st.Name,
			DefaultMaxSpace: st.DefaultMaxSpace,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fare/internal/repository"
	"fare/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`

	// ConflictingID is set on duplicate/conflict errors so the admin UI can
	// link to the record that blocked the save.
	ConflictingID string `json:"conflicting_id,omitempty"`

	// Field is set on validation errors.
	Field string `json:"field,omitempty"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)

	resp := ErrorResponse{Error: err.Error()}

	var dup *service.DuplicateConfigurationError
	var conflict *service.OverrideConflictError
	var validation *service.ValidationError
	switch {
	case errors.As(err, &dup):
		resp.ConflictingID = dup.ConflictingID
	case errors.As(err, &conflict):
		resp.ConflictingID = conflict.ExistingID
	case errors.As(err, &validation):
		resp.Field = validation.Field
	}

	c.JSON(code, resp)
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	var dup *service.DuplicateConfigurationError
	var conflict *service.OverrideConflictError
	var validation *service.ValidationError

	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrNoActiveConfiguration):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.As(err, &validation),
		errors.Is(err, service.ErrInvalidConfigID),
		errors.Is(err, service.ErrInvalidZonePriceID),
		errors.Is(err, service.ErrInvalidTripInput),
		errors.Is(err, service.ErrSameZone),
		errors.Is(err, service.ErrZoneCityMismatch):
		return http.StatusBadRequest

	// Conflict errors
	case errors.As(err, &dup),
		errors.As(err, &conflict),
		errors.Is(err, service.ErrInactiveConfiguration),
		errors.Is(err, service.ErrConfigEditInProgress):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sksohail19/cricket-score-tracking-app/internal/repository"
	"github.com/sksohail19/cricket-score-tracking-app/internal/scoring"
	"github.com/sksohail19/cricket-score-tracking-app/internal/service"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Extend here as new domain error categories emerge.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, scoring.ErrMatchComplete):
		return http.StatusConflict, ErrorPayload{Error: "match_complete", Message: err.Error()}
	case isDeliveryRejection(err):
		return http.StatusBadRequest, ErrorPayload{Error: "invalid_delivery", Message: err.Error()}
	case errors.Is(err, scoring.ErrCorruptLog):
		return http.StatusInternalServerError, ErrorPayload{Error: "invariant_violation", Message: err.Error()}
	case errors.Is(err, service.ErrNotPersisted):
		return http.StatusServiceUnavailable, ErrorPayload{Error: "not_persisted", Message: err.Error()}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found"}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: "conflict"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// isDeliveryRejection groups the scoring rule errors a scorer can correct
// and resubmit.
func isDeliveryRejection(err error) bool {
	for _, target := range []error{
		scoring.ErrInvalidDelivery,
		scoring.ErrUnknownBatter,
		scoring.ErrUnknownBowler,
		scoring.ErrBatterDismissed,
		scoring.ErrBatterNotAtCrease,
		scoring.ErrBowlerRepeated,
		scoring.ErrBowlerChangedMidOver,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

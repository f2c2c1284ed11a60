package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
	"github.com/ressKim-io/phishguard/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// Input errors keep the alert text shown to the user.
func MapUsecaseError(err error) ErrorResponse {
	var inputErr *entity.InputError

	switch {
	case errors.As(err, &inputErr):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    inputErr.Alert,
		}
	case errors.Is(err, entity.ErrInvalidInput):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "invalid request",
		}
	case errors.Is(err, usecase.ErrNoClassifier):
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Code:       "UNAVAILABLE",
			Message:    "classifier not configured",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleInvalidRequest handles a malformed request body.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}

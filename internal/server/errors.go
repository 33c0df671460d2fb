package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	companydomain "github.com/smallbiznis/invoicify/internal/company/domain"
	invoicedomain "github.com/smallbiznis/invoicify/internal/invoice/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware renders the last collected error once the
// handler chain finishes without writing a response.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// mapError translates domain sentinels into HTTP responses. AlreadyExists
// and NotFound conditions are validation failures on this surface and map
// to 400, matching the external contract.
func mapError(err error) (int, errorPayload) {
	switch {
	case isAlreadyExistsError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "already_exists",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isAlreadyExistsError(err error) bool {
	return errors.Is(err, companydomain.ErrExists) ||
		errors.Is(err, invoicedomain.ErrExists)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, companydomain.ErrNotFound) ||
		errors.Is(err, invoicedomain.ErrNotFound) ||
		errors.Is(err, invoicedomain.ErrCompanyMissing)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, companydomain.ErrInvalidName) ||
		errors.Is(err, invoicedomain.ErrInvalidNumber) ||
		errors.Is(err, invoicedomain.ErrInvalidStatus)
}

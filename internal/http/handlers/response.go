package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/portwave/portwave-backend/internal/domain/aggregates"
)

var (
	errOperationNotFound = errors.New("operation not found")
	errIncidentNotFound  = errors.New("incident not found")
)

func errMissingField(field string) error {
	return fmt.Errorf("missing required field: %s", field)
}

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondAggregateError maps the aggregate error taxonomy onto HTTP statuses.
// Write-phase failures (precondition, retryable, internal) are reported
// generically; the transaction already rolled back and no partial-state
// detail leaks to the caller.
func RespondAggregateError(c *gin.Context, err error) {
	code := domainagg.CodeOf(err)
	switch code {
	case domainagg.CodeValidation, domainagg.CodeInvariantViolation:
		RespondError(c, http.StatusBadRequest, string(code), err)
	case domainagg.CodeNotFound:
		RespondError(c, http.StatusNotFound, string(code), err)
	case domainagg.CodeConflict:
		RespondError(c, http.StatusConflict, string(code), err)
	default:
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{
			Error: APIError{
				Message: "operation could not be completed",
				Code:    string(domainagg.CodeInternal),
			},
		})
	}
}

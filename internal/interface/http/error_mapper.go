package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-identity/internal/application"
	"github.com/oksasatya/go-ddd-identity/internal/domain/service"
	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
	"github.com/oksasatya/go-ddd-identity/pkg/response"
	"github.com/oksasatya/go-ddd-identity/pkg/validation"
)

// Error codes carried in error.code.
const (
	CodeInvalidPayload     = "INVALID_PAYLOAD"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternal           = "INTERNAL_ERROR"
)

type mappedError struct {
	status  int
	code    string
	message string
	reason  string
}

func mapError(err error) mappedError {
	switch application.KindOf(err) {
	case application.KindValidation:
		var ve *user.ValidationError
		errors.As(err, &ve)
		return mappedError{http.StatusUnprocessableEntity, CodeValidation, ve.Message, string(ve.Reason)}
	case application.KindNotFound:
		return mappedError{http.StatusUnprocessableEntity, CodeUserNotFound, err.Error(), ""}
	case application.KindUpstream:
		if errors.Is(err, service.ErrCredentialsRejected) {
			return mappedError{http.StatusUnauthorized, CodeInvalidCredentials, "invalid credentials", ""}
		}
		return mappedError{http.StatusInternalServerError, CodeInternal, "internal server error", ""}
	default:
		return mappedError{http.StatusInternalServerError, CodeInternal, "internal server error", ""}
	}
}

// writeError logs err under the request id and writes the matching response.
// The request id doubles as the tracking code returned to the client.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	m := mapError(err)
	if logger != nil {
		entry := logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
			"code":       m.code,
			"status":     m.status,
		}).WithError(err)
		if m.status >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected")
		}
	}
	var details map[string]string
	if m.reason != "" {
		details = map[string]string{"reason": m.reason}
	}
	resp := response.Error(c, m.status, m.code, m.message, details)
	c.JSON(resp.Status, resp)
}

func writeBindError(c *gin.Context, err error) {
	resp := response.Error(c, http.StatusBadRequest, CodeInvalidPayload, "invalid payload", validation.ToDetails(err))
	c.JSON(resp.Status, resp)
}

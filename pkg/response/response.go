package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse[T any] struct {
	Status    int        `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	RequestID string     `json:"request_id"`
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	Data      T          `json:"data,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error part of a failed response. TrackingCode lets a client
// quote the failure so it can be found in the logs.
type ErrorBody struct {
	Code         string            `json:"code"`
	Message      string            `json:"message"`
	TrackingCode string            `json:"tracking_code,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
	}
}

func Error(ctx *gin.Context, status int, code, message string, details map[string]string) APIResponse[any] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	rid := ctx.GetString("request_id")
	return APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: rid,
		Success:   false,
		Error: &ErrorBody{
			Code:         code,
			Message:      message,
			TrackingCode: rid,
			Details:      details,
		},
	}
}

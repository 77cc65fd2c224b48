package response

import (
	"errors"
	"net/http"

	"donation-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the standard error envelope. OK is always false.
type ErrorBody struct {
	OK        bool   `json:"ok"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// NoStore disables caching for the response. Payment answers must never
// be served stale.
func NoStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
}

// OK sends a 200 response with the given payload. Payloads carry their
// own `ok` field so response bodies stay flat.
func OK(c *gin.Context, payload any) {
	NoStore(c)
	c.JSON(http.StatusOK, payload)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns a generic 500.
func Error(c *gin.Context, err error) {
	NoStore(c)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{
			OK:        false,
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{
		OK:        false,
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
	})
}

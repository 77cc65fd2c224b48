package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a 400 for malformed or missing request fields.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrUnsupportedProvider(provider string) *AppError {
	return New("VAL_002", fmt.Sprintf("Unsupported donation provider: %s", provider), http.StatusBadRequest)
}

// ErrMethodNotConfigured rejects intents for hosted methods without a
// configured checkout URL; the client must not be offered them.
func ErrMethodNotConfigured(provider string) *AppError {
	return New("VAL_003", fmt.Sprintf("Donation method %s is not configured", provider), http.StatusBadRequest)
}

// ---- Webhook verification (VRF) ----

// ErrWebhookVerification covers bad/missing signatures and unparsable
// payloads alike. Internal detail stays in logs, never in the response.
func ErrWebhookVerification() *AppError {
	return New("VRF_001", "Webhook verification failed", http.StatusBadRequest)
}

// ---- Resources (TRX) ----

func ErrNotFound(entity string) *AppError {
	return New("TRX_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrStoreUnavailable is the stable, retryable 503 for a store that is
// unconfigured or unreachable, deliberately distinct from the generic
// 500 so callers know retrying can help.
func ErrStoreUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Service temporarily unavailable, please retry", http.StatusServiceUnavailable, err)
}

// InternalError wraps an unexpected error with a generic, non-leaking message.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body returned to clients on failure.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code, a user-facing message and the HTTP
// status the API layer should respond with.
type CustomError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is matches by code so wrapped instances compare equal to the
// predefined sentinels below.
func (e *CustomError) Is(target error) bool {
	var ce *CustomError
	if errors.As(target, &ce) {
		return e.Code == ce.Code
	}
	return false
}

// NewError creates a new custom error.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WrapError attaches a cause to a predefined error without mutating it.
func WrapError(base *CustomError, err error) *CustomError {
	return &CustomError{
		Code:    base.Code,
		Message: base.Message,
		Status:  base.Status,
		Err:     err,
	}
}

// Error codes for the completion pipeline.
const (
	ErrCodeConfigMissing    = "CONFIG_MISSING"    // credential or endpoint absent
	ErrCodeTransportFailure = "TRANSPORT_FAILURE" // network-level failure
	ErrCodeUpstreamFailure  = "UPSTREAM_FAILURE"  // non-2xx from the completion endpoint
	ErrCodeRateLimited      = "RATE_LIMITED"      // upstream 429
	ErrCodeEmptyResponse    = "EMPTY_RESPONSE"    // no message content in the response
	ErrCodeParseFailure     = "PARSE_FAILURE"     // content was not valid JSON
	ErrCodeInvalidShape     = "INVALID_SHAPE"     // decoded JSON missing the expected structure
	ErrCodeInvalidRequest   = "INVALID_REQUEST"   // 400
	ErrCodeNotFound         = "NOT_FOUND"         // 404
	ErrCodeInternalError    = "INTERNAL_ERROR"    // 500
)

// Predefined errors.
var (
	ErrConfigMissing    = NewError(ErrCodeConfigMissing, "AI service is not configured", http.StatusServiceUnavailable, nil)
	ErrTransportFailure = NewError(ErrCodeTransportFailure, "failed to reach AI service", http.StatusBadGateway, nil)
	ErrRateLimited      = NewError(ErrCodeRateLimited, "rate limited, retry later", http.StatusTooManyRequests, nil)
	ErrEmptyResponse    = NewError(ErrCodeEmptyResponse, "empty AI response", http.StatusBadGateway, nil)
	ErrParseFailure     = NewError(ErrCodeParseFailure, "failed to parse AI response", http.StatusBadGateway, nil)
	ErrInvalidShape     = NewError(ErrCodeInvalidShape, "unexpected AI response shape", http.StatusBadGateway, nil)
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrInternalError    = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
)

// NewUpstreamError reports a non-2xx status from the completion endpoint.
// A 429 maps to the rate-limited error so callers can tell it apart.
func NewUpstreamError(status int, body string) *CustomError {
	if status == http.StatusTooManyRequests {
		return WrapError(ErrRateLimited, fmt.Errorf("upstream status 429: %s", body))
	}
	return &CustomError{
		Code:    ErrCodeUpstreamFailure,
		Message: fmt.Sprintf("AI service error (status %d)", status),
		Status:  http.StatusBadGateway,
		Err:     fmt.Errorf("upstream status %d: %s", status, body),
	}
}

// IsRateLimited reports whether err is the upstream 429 failure.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsConfigMissing reports whether err is the missing-configuration failure.
func IsConfigMissing(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}

// AsCustomError extracts a CustomError from err, falling back to a
// generic internal error so handlers always have a status to report.
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return WrapError(ErrInternalError, err)
}

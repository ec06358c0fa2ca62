package dto

import (
	"net/http"
	"time"
)

// Machine readable codes carried in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeNotFound        = "not_found"
	ErrCodeConflict        = "conflict"
	ErrCodePayloadTooLarge = "payload_too_large"
	ErrCodeRateLimit       = "rate_limit_exceeded"
	ErrCodeTimeout         = "timeout"
	ErrCodeUnavailable     = "service_unavailable"
	ErrCodeInternal        = "internal_error"
)

var errCodes = map[int]string{
	http.StatusBadRequest:            ErrCodeInvalidRequest,
	http.StatusUnauthorized:          ErrCodeUnauthorized,
	http.StatusNotFound:              ErrCodeNotFound,
	http.StatusConflict:              ErrCodeConflict,
	http.StatusRequestEntityTooLarge: ErrCodePayloadTooLarge,
	http.StatusTooManyRequests:       ErrCodeRateLimit,
	http.StatusRequestTimeout:        ErrCodeTimeout,
	http.StatusGatewayTimeout:        ErrCodeTimeout,
	http.StatusServiceUnavailable:    ErrCodeUnavailable,
}

// SuccessResponse is the envelope around every successful body.
//
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-03-01T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the envelope around every error body.
//
// @Description Error response; details maps a rejected field or parameter to its problem
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"use_weight: must be a positive number"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-03-01T10:00:00Z"`
} // @name ErrorResponse

// NewError builds the body middleware writes without a response builder.
func NewError(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}
}

// ErrCodeFromStatus returns the code for status, ErrCodeInternal for anything unmapped.
func ErrCodeFromStatus(status int) string {
	if code, ok := errCodes[status]; ok {
		return code
	}
	return ErrCodeInternal
}

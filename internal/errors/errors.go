package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict")
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternalServer = errors.New("internal server error")

	// Business errors
	ErrInvalidCredentials = errors.New("invalid email or phone")
	ErrMissingContactInfo = errors.New("booking requires name, phone, and address")
	ErrGuideNotFound      = errors.New("guide not found")
)

// APIError represents a structured API error
type APIError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new API error
func NewAPIError(code, message string, statusCode int) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Common API errors
func NotFound(resource string) *APIError {
	return NewAPIError("not_found", fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func BadRequest(message string) *APIError {
	return NewAPIError("bad_request", message, http.StatusBadRequest)
}

func Conflict(message string) *APIError {
	return NewAPIError("conflict", message, http.StatusConflict)
}

func InternalError(message string) *APIError {
	return NewAPIError("internal_error", message, http.StatusInternalServerError)
}

func Unauthorized(message string) *APIError {
	return NewAPIError("unauthorized", message, http.StatusUnauthorized)
}

func ValidationFailed(message string) *APIError {
	return NewAPIError("validation_failed", message, http.StatusBadRequest)
}

func InvalidCredentials() *APIError {
	return NewAPIError("invalid_credentials", "Invalid email or phone", http.StatusUnauthorized)
}

func RegistrationFailed() *APIError {
	return NewAPIError("registration_failed", "Registration failed", http.StatusInternalServerError)
}

func BookingFailed() *APIError {
	return NewAPIError("booking_failed", "Booking failed", http.StatusInternalServerError)
}

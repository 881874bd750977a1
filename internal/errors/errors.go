package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidEmail is returned when the email address fails format validation.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrWeakPassword is returned when the password fails the strength policy.
	ErrWeakPassword = errors.New("password must be at least 6 characters and contain a lowercase letter, an uppercase letter and a symbol")
	// ErrEmailTaken is returned when registering an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on any failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrItemNotFound is returned when a delete or update target does not exist.
	ErrItemNotFound = errors.New("inventory item not found")
	// ErrEmptyInventory is returned when asking for recipes with no items.
	ErrEmptyInventory = errors.New("no inventory items to cook with")
	// ErrAdvisoryUnavailable is returned when the recipe advisory call fails.
	ErrAdvisoryUnavailable = errors.New("recipe advisory service unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised is
// an internal error; domain failures never abort the process.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidEmail.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, ErrWeakPassword.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrItemNotFound):
		return NewHTTPError(http.StatusNotFound, ErrItemNotFound.Error(), "ITEM_NOT_FOUND")
	case errors.Is(err, ErrEmptyInventory):
		return NewHTTPError(http.StatusBadRequest, ErrEmptyInventory.Error(), "EMPTY_INVENTORY")
	case errors.Is(err, ErrAdvisoryUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrAdvisoryUnavailable.Error(), "ADVISORY_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

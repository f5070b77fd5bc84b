package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrLocationNotFound is returned when a favorite location does not exist
	// or belongs to another user. The two cases are deliberately conflated so
	// responses never leak the existence of other users' data.
	ErrLocationNotFound = errors.New("location not found")
	// ErrFavoriteNotFound is returned when deleting a favorite that does not
	// exist or is not owned by the caller.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrNoCurrentWeather is returned when a location has no stored current
	// weather snapshot yet.
	ErrNoCurrentWeather = errors.New("no current weather stored")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
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

// MapErrorToHTTP maps domain errors to HTTP errors. Storage errors collapse
// into a generic 500 so raw driver text never reaches clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrLocationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LOCATION_NOT_FOUND")
	case errors.Is(err, ErrFavoriteNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FAVORITE_NOT_FOUND")
	case errors.Is(err, ErrNoCurrentWeather):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_CURRENT_WEATHER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package dto

import "net/http"

// Domain error codes surfaced at the HTTP boundary
const (
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeUpstream    = "UPSTREAM_ERROR"
	ErrCodePersistence = "PERSISTENCE_ERROR"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Upstream and persistence failures are collapsed to 500 with a generic
// message; the underlying detail only goes to the server log.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeNotFound:    http.StatusNotFound,
	ErrCodeUpstream:    http.StatusInternalServerError,
	ErrCodePersistence: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

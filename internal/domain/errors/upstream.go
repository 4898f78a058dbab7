package errors

import "net/http"

// UpstreamError represents a non-2xx answer from the marketplace backend.
// The backend's own message is surfaced to the operator verbatim when
// present, with a generic fallback otherwise.
type UpstreamError struct {
	StatusCode      int
	UpstreamMessage string
}

// NewUpstreamError creates an error for a failed upstream request.
func NewUpstreamError(statusCode int, message string) *UpstreamError {
	return &UpstreamError{
		StatusCode:      statusCode,
		UpstreamMessage: message,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return e.Message()
}

// HTTPCode returns the upstream HTTP status code unchanged.
func (e *UpstreamError) HTTPCode() int {
	if e.StatusCode < http.StatusBadRequest {
		return http.StatusBadGateway
	}

	return e.StatusCode
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the backend's message when it sent one.
func (e *UpstreamError) Message() string {
	if e.UpstreamMessage != "" {
		return e.UpstreamMessage
	}

	return "The marketplace backend rejected the request"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return http.StatusText(e.StatusCode)
}

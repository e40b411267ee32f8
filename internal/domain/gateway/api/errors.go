package api

import "errors"

// Failure kinds of the weather API. Callers wrap them with %w and test with errors.Is.
var (
	// ErrNotFound covers non-2xx statuses and payloads whose cod is not 200, including unknown cities
	ErrNotFound = errors.New("city not found")
	// ErrTransport covers connection failures, timeouts and cancellation
	ErrTransport = errors.New("weather api unreachable")
	// ErrMalformedResponse covers undecodable payloads and payloads missing expected fields
	ErrMalformedResponse = errors.New("malformed weather api response")
)

// ErrorKind names the failure kind of err for logs.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "unknown"
	}
}

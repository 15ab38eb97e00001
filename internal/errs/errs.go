package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrNotFound = errors.New("not found")

// ValidationError marks bad or missing caller input. Handlers map it to 400
// before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConfigurationError marks missing server-side configuration. The message must
// never contain secret values.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func Configuration(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError carries a provider's non-2xx status and its response body
// verbatim, so callers can surface the provider's own diagnostics.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %d %s", e.Operation, e.StatusCode, e.Body)
}

// HTTPStatus maps an error to the status code a handler should return.
// Upstream failures default to 502; token-acquisition failures are reported
// as 500 by the handlers themselves.
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	var configErr *ConfigurationError
	var upstreamErr *UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

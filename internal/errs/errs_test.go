package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Validation("amount is required"), want: http.StatusBadRequest},
		{name: "configuration", err: Configuration("credentials missing"), want: http.StatusInternalServerError},
		{name: "upstream", err: &UpstreamError{Operation: "PayPal capture", StatusCode: 422, Body: "{}"}, want: http.StatusBadGateway},
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", ErrNotFound), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestUpstreamErrorKeepsProviderBodyVerbatim(t *testing.T) {
	err := &UpstreamError{
		Operation:  "PayPal token request",
		StatusCode: 401,
		Body:       `{"error":"invalid_client"}`,
	}

	assert.Equal(t, `PayPal token request failed: 401 {"error":"invalid_client"}`, err.Error())
}

package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fenotesb/helping-hands-platform/internal/config"
	"github.com/fenotesb/helping-hands-platform/internal/types"
)

// fakePayPal is a scripted PayPal endpoint that counts token and order calls,
// so tests can assert which outbound calls a handler made.
type fakePayPal struct {
	srv *httptest.Server

	tokenCalls   int
	orderCalls   int
	captureCalls int

	tokenStatus   int
	orderStatus   int
	captureStatus int

	orderBody   string
	captureBody string

	lastOrderValue string
}

func newFakePayPal(t *testing.T) *fakePayPal {
	t.Helper()

	f := &fakePayPal{
		tokenStatus:   http.StatusOK,
		orderStatus:   http.StatusOK,
		captureStatus: http.StatusOK,
		orderBody:     `{"id":"ORDER-1","status":"CREATED"}`,
		captureBody:   `{"id":"ORDER-1","status":"COMPLETED"}`,
	}

	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/oauth2/token":
			f.tokenCalls++
			w.WriteHeader(f.tokenStatus)
			if f.tokenStatus == http.StatusOK {
				io.WriteString(w, `{"access_token":"token-123"}`)
			} else {
				io.WriteString(w, `{"error":"invalid_client"}`)
			}
		case r.URL.Path == "/v2/checkout/orders":
			f.orderCalls++
			var orderReq types.OrderRequest
			if err := json.NewDecoder(r.Body).Decode(&orderReq); err == nil && len(orderReq.PurchaseUnits) > 0 {
				f.lastOrderValue = orderReq.PurchaseUnits[0].Amount.Value
			}
			w.WriteHeader(f.orderStatus)
			io.WriteString(w, f.orderBody)
		case strings.HasSuffix(r.URL.Path, "/capture"):
			f.captureCalls++
			w.WriteHeader(f.captureStatus)
			io.WriteString(w, f.captureBody)
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(f.srv.Close)

	return f
}

func newOrderHandler(t *testing.T, baseURL string) *OrderHandler {
	t.Helper()

	cfg := &config.Config{
		PayPalClientID: "client",
		PayPalSecret:   "secret",
		PayPalBaseURL:  baseURL,
	}
	return NewOrderHandler(cfg, zaptest.NewLogger(t).Sugar())
}

func decodeError(t *testing.T, body string) types.ErrorResponse {
	t.Helper()

	var errResp types.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	return errResp
}

func TestCreateOrderValidationRejectedBeforeNetwork(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "empty body", body: "", wantMessage: "amount is required"},
		{name: "null amount", body: `{"amount":null}`, wantMessage: "amount is required"},
		{name: "zero amount", body: `{"amount":0}`, wantMessage: "amount must be positive"},
		{name: "negative amount", body: `{"amount":-3.5}`, wantMessage: "amount must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakePayPal(t)
			h := newOrderHandler(t, fake.srv.URL)

			resp, err := h.Create(context.Background(), events.APIGatewayProxyRequest{Body: tt.body})
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, decodeError(t, resp.Body).Message)
			assert.Zero(t, fake.tokenCalls)
			assert.Zero(t, fake.orderCalls)
		})
	}
}

func TestCreateOrderMalformedJSON(t *testing.T) {
	fake := newFakePayPal(t)
	h := newOrderHandler(t, fake.srv.URL)

	resp, err := h.Create(context.Background(), events.APIGatewayProxyRequest{Body: "{not json"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp.Body).Message, "Invalid JSON")
	assert.Zero(t, fake.tokenCalls)
}

func TestCreateOrderNormalizesAmount(t *testing.T) {
	fake := newFakePayPal(t)
	h := newOrderHandler(t, fake.srv.URL)

	resp, err := h.Create(context.Background(), events.APIGatewayProxyRequest{Body: `{"amount":12.345}`})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "12.35", fake.lastOrderValue)
	assert.JSONEq(t, `{"id":"ORDER-1","status":"CREATED"}`, resp.Body)
}

func TestCreateOrderIsNotIdempotent(t *testing.T) {
	fake := newFakePayPal(t)
	h := newOrderHandler(t, fake.srv.URL)

	for i := 0; i < 2; i++ {
		resp, err := h.Create(context.Background(), events.APIGatewayProxyRequest{Body: `{"amount":20}`})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, 2, fake.orderCalls, "same amount must create two distinct orders")
	assert.Equal(t, 2, fake.tokenCalls, "a fresh token is fetched per operation")
}

func TestCreateOrderTokenFailureShortCircuits(t *testing.T) {
	fake := newFakePayPal(t)
	fake.tokenStatus = http.StatusUnauthorized
	h := newOrderHandler(t, fake.srv.URL)

	resp, err := h.Create(context.Background(), events.APIGatewayProxyRequest{Body: `{"amount":10}`})
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp.Body).Message, "PayPal token request failed: 401")
	assert.Equal(t, 1, fake.tokenCalls)
	assert.Zero(t, fake.orderCalls, "domain call must not be attempted after token failure")
}

func TestCreateOrderProviderRejection(t *testing.T) {
	fake := newFakePayPal(t)
	fake.orderStatus = http.StatusUnprocessableEntity
	fake.orderBody = `{"name":"INVALID_REQUEST"}`
	h := newOrderHandler(t, fake.srv.URL)

	resp, err := h.Create(context.Background(), events.APIGatewayProxyRequest{Body: `{"amount":10}`})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	errResp := decodeError(t, resp.Body)
	assert.Contains(t, errResp.Message, "422")
	assert.Equal(t, `{"name":"INVALID_REQUEST"}`, errResp.Details)
}

func TestCreateOrderMissingCredentials(t *testing.T) {
	fake := newFakePayPal(t)
	cfg := &config.Config{PayPalBaseURL: fake.srv.URL}
	h := NewOrderHandler(cfg, zaptest.NewLogger(t).Sugar())

	resp, err := h.Create(context.Background(), events.APIGatewayProxyRequest{Body: `{"amount":10}`})
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp.Body).Message, "PAYPAL_CLIENT_ID")
	assert.Zero(t, fake.tokenCalls)
}

func TestCaptureOrderMalformedJSON(t *testing.T) {
	fake := newFakePayPal(t)
	h := newOrderHandler(t, fake.srv.URL)

	resp, err := h.Capture(context.Background(), events.APIGatewayProxyRequest{Body: "{not json"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp.Body).Message, "Invalid JSON")
	assert.Zero(t, fake.tokenCalls)
}

func TestCaptureOrderMissingOrderID(t *testing.T) {
	fake := newFakePayPal(t)
	h := newOrderHandler(t, fake.srv.URL)

	resp, err := h.Capture(context.Background(), events.APIGatewayProxyRequest{Body: `{"something":"else"}`})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "orderId is required", decodeError(t, resp.Body).Message)
	assert.Zero(t, fake.tokenCalls, "validation must happen before token acquisition")
}

func TestCaptureOrderAcceptsBothIDFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "orderId field", body: `{"orderId":"ORDER-1"}`},
		{name: "id field", body: `{"id":"ORDER-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakePayPal(t)
			h := newOrderHandler(t, fake.srv.URL)

			resp, err := h.Capture(context.Background(), events.APIGatewayProxyRequest{Body: tt.body})
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"id":"ORDER-1","status":"COMPLETED"}`, resp.Body)
			assert.Equal(t, 1, fake.captureCalls)
		})
	}
}

func TestCaptureOrderTokenFailureShortCircuits(t *testing.T) {
	fake := newFakePayPal(t)
	fake.tokenStatus = http.StatusUnauthorized
	h := newOrderHandler(t, fake.srv.URL)

	resp, err := h.Capture(context.Background(), events.APIGatewayProxyRequest{Body: `{"orderId":"ORDER-1"}`})
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, fake.tokenCalls)
	assert.Zero(t, fake.captureCalls, "domain call must not be attempted after token failure")
}

func TestCaptureOrderProviderRejection(t *testing.T) {
	fake := newFakePayPal(t)
	fake.captureStatus = http.StatusUnprocessableEntity
	fake.captureBody = `{"name":"ORDER_ALREADY_CAPTURED"}`
	h := newOrderHandler(t, fake.srv.URL)

	resp, err := h.Capture(context.Background(), events.APIGatewayProxyRequest{Body: `{"orderId":"ORDER-1"}`})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	errResp := decodeError(t, resp.Body)
	assert.Contains(t, errResp.Message, "PayPal capture failed: 422")
	assert.Contains(t, errResp.Message, "ORDER_ALREADY_CAPTURED")
	assert.Equal(t, `{"name":"ORDER_ALREADY_CAPTURED"}`, errResp.Details)
}

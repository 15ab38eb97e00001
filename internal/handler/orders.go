/*
# Module: handler/orders.go
Lambda handlers for PayPal checkout order creation and capture.

## Linked Modules
- [paypal/client](../paypal/client.go) - PayPal REST API client
- [handler/respond](./respond.go) - Response helpers
- [errs](../errs/errs.go) - Error taxonomy

## Tags
http, api, lambda, paypal, payments

## Exports
OrderHandler, NewOrderHandler, Create, Capture

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handler/orders.go" ;
    code:description "Lambda handlers for PayPal checkout order creation and capture" ;
    code:linksTo [
        code:name "paypal/client" ;
        code:path "../paypal/client.go" ;
        code:relationship "PayPal REST API client"
    ], [
        code:name "handler/respond" ;
        code:path "./respond.go" ;
        code:relationship "Response helpers"
    ], [
        code:name "errs" ;
        code:path "../errs/errs.go" ;
        code:relationship "Error taxonomy"
    ] ;
    code:exports :OrderHandler, :NewOrderHandler, :Create, :Capture ;
    code:tags "http", "api", "lambda", "paypal", "payments" .
<!-- End LinkedDoc RDF -->
*/
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/fenotesb/helping-hands-platform/internal/config"
	"github.com/fenotesb/helping-hands-platform/internal/errs"
	"github.com/fenotesb/helping-hands-platform/internal/paypal"
)

// OrderHandler handles checkout order creation and capture. Every invocation
// builds a fresh PayPal client and fetches a fresh token; nothing is cached.
type OrderHandler struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(cfg *config.Config, logger *zap.SugaredLogger) *OrderHandler {
	return &OrderHandler{cfg: cfg, logger: logger}
}

type createOrderRequest struct {
	Amount *float64 `json:"amount"`
}

type captureOrderRequest struct {
	OrderID string `json:"orderId"`
	ID      string `json:"id"`
}

// Create handles POST /orders. The amount is validated and normalized before
// any network call; creating the same amount twice creates two distinct orders.
func (h *OrderHandler) Create(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body createOrderRequest
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return ErrorResponse(http.StatusBadRequest, "Invalid JSON body"), nil
		}
	}

	value, err := paypal.NormalizeAmount(body.Amount)
	if err != nil {
		return ErrorResponse(http.StatusBadRequest, err.Error()), nil
	}

	client, err := paypal.NewClient(h.cfg.PayPalClientID, h.cfg.PayPalSecret, h.cfg.PayPalBaseURL)
	if err != nil {
		h.logger.Errorw("paypal client configuration invalid", "error", err)
		return ErrorResponse(http.StatusInternalServerError, err.Error()), nil
	}

	accessToken, err := client.AccessToken(ctx)
	if err != nil {
		h.logger.Errorw("paypal token acquisition failed", "error", err)
		return ErrorResponse(http.StatusInternalServerError, err.Error()), nil
	}

	order, err := client.CreateOrder(ctx, accessToken, value)
	if err != nil {
		var upstreamErr *errs.UpstreamError
		if errors.As(err, &upstreamErr) {
			h.logger.Errorw("paypal rejected order creation", "status", upstreamErr.StatusCode)
			return UpstreamErrorResponse(http.StatusBadGateway, upstreamErr), nil
		}
		h.logger.Errorw("order creation failed", "error", err)
		return ErrorResponse(http.StatusInternalServerError, err.Error()), nil
	}

	h.logger.Infow("order created", "amount", value)
	return RawJSONResponse(http.StatusOK, order), nil
}

// Capture handles POST /orders/capture. The order id is accepted under either
// "orderId" or "id"; a provider rejection (already captured, not found, not
// approved) is reported as 502 with the provider's own diagnostics.
func (h *OrderHandler) Capture(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body captureOrderRequest
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return ErrorResponse(http.StatusBadRequest, "Invalid JSON body"), nil
		}
	}

	orderID := body.OrderID
	if orderID == "" {
		orderID = body.ID
	}
	if orderID == "" {
		return ErrorResponse(http.StatusBadRequest, "orderId is required"), nil
	}

	client, err := paypal.NewClient(h.cfg.PayPalClientID, h.cfg.PayPalSecret, h.cfg.PayPalBaseURL)
	if err != nil {
		h.logger.Errorw("paypal client configuration invalid", "error", err)
		return ErrorResponse(http.StatusInternalServerError, err.Error()), nil
	}

	accessToken, err := client.AccessToken(ctx)
	if err != nil {
		h.logger.Errorw("paypal token acquisition failed", "error", err)
		return ErrorResponse(http.StatusInternalServerError, err.Error()), nil
	}

	captured, err := client.CaptureOrder(ctx, accessToken, orderID)
	if err != nil {
		var upstreamErr *errs.UpstreamError
		if errors.As(err, &upstreamErr) {
			h.logger.Errorw("paypal rejected capture", "order_id", orderID, "status", upstreamErr.StatusCode)
			return UpstreamErrorResponse(http.StatusBadGateway, upstreamErr), nil
		}
		h.logger.Errorw("capture failed", "order_id", orderID, "error", err)
		return ErrorResponse(http.StatusInternalServerError, err.Error()), nil
	}

	h.logger.Infow("order captured", "order_id", orderID)
	return RawJSONResponse(http.StatusOK, captured), nil
}

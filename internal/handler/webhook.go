/*
# Module: handler/webhook.go
Lambda handler for PayPal webhook notifications.

## Linked Modules
- [storage/repository](../storage/repository.go) - Repository interfaces
- [types/paypal](../types/paypal.go) - PayPal wire data structures
- [handler/respond](./respond.go) - Response helpers

## Tags
http, api, lambda, paypal, webhook

## Exports
WebhookHandler, NewWebhookHandler, Handle

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handler/webhook.go" ;
    code:description "Lambda handler for PayPal webhook notifications" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "../storage/repository.go" ;
        code:relationship "Repository interfaces"
    ], [
        code:name "types/paypal" ;
        code:path "../types/paypal.go" ;
        code:relationship "PayPal wire data structures"
    ], [
        code:name "handler/respond" ;
        code:path "./respond.go" ;
        code:relationship "Response helpers"
    ] ;
    code:exports :WebhookHandler, :NewWebhookHandler, :Handle ;
    code:tags "http", "api", "lambda", "paypal", "webhook" .
<!-- End LinkedDoc RDF -->
*/
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/fenotesb/helping-hands-platform/internal/errs"
	"github.com/fenotesb/helping-hands-platform/internal/storage"
	"github.com/fenotesb/helping-hands-platform/internal/types"
)

// EventOrderApproved is the webhook discriminator for an approved checkout order
const EventOrderApproved = "CHECKOUT.ORDER.APPROVED"

// WebhookHandler records donations from PayPal webhook notifications. The
// channel is at-least-once, so unrecognized event types are acknowledged with
// 200 and no side effect.
//
// Known limitation: the webhook signature is not verified, so a forged
// notification can record a donation. Verification against PayPal's
// verify-webhook-signature endpoint is required before trusting these records.
type WebhookHandler struct {
	donations storage.DonationRepository
	logger    *zap.SugaredLogger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(donations storage.DonationRepository, logger *zap.SugaredLogger) *WebhookHandler {
	return &WebhookHandler{donations: donations, logger: logger}
}

// Handle handles POST /paypal/webhook
func (h *WebhookHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var event types.WebhookEvent
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &event); err != nil {
			return ErrorResponse(http.StatusBadRequest, "Invalid JSON body"), nil
		}
	}

	if event.EventType != EventOrderApproved {
		h.logger.Debugw("ignoring webhook event", "event_type", event.EventType)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: "OK"}, nil
	}

	if event.Resource.ID == "" || len(event.Resource.PurchaseUnits) == 0 {
		h.logger.Warnw("approved event missing resource fields", "resource_id", event.Resource.ID)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: "OK"}, nil
	}

	amount := event.Resource.PurchaseUnits[0].Amount
	donation := types.Donation{
		ID:        event.Resource.ID,
		Amount:    amount.Value,
		Currency:  amount.CurrencyCode,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.donations.Save(ctx, donation); err != nil {
		h.logger.Errorw("failed to record donation", "donation_id", donation.ID, "error", err)
		return ErrorResponse(errs.HTTPStatus(err), "failed to record donation"), nil
	}

	h.logger.Infow("donation recorded", "donation_id", donation.ID, "amount", donation.Amount, "currency", donation.Currency)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: "OK"}, nil
}

/*
# Module: types/paypal.go
PayPal REST API request and response data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, api-client, paypal

## Exports
TokenResponse, OrderRequest, PurchaseUnit, Amount, WebhookEvent, WebhookResource

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/paypal.go" ;
    code:description "PayPal REST API request and response data structures" ;
    code:exports :TokenResponse, :OrderRequest, :PurchaseUnit, :Amount, :WebhookEvent, :WebhookResource ;
    code:tags "data-types", "api-client", "paypal" .
<!-- End LinkedDoc RDF -->
*/
package types

// TokenResponse represents the OAuth token endpoint response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// OrderRequest represents the create-order payload sent to PayPal
type OrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

// PurchaseUnit represents a single purchase unit within an order
type PurchaseUnit struct {
	Amount Amount `json:"amount"`
}

// Amount represents a monetary value in PayPal wire format
type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// WebhookEvent represents an inbound PayPal webhook notification
type WebhookEvent struct {
	EventType string          `json:"event_type"`
	Resource  WebhookResource `json:"resource"`
}

// WebhookResource represents the order resource embedded in a webhook event
type WebhookResource struct {
	ID            string         `json:"id"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

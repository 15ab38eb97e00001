/*
# Module: paypal/client.go
PayPal REST API client for OAuth token acquisition and checkout orders.

## Linked Modules
- [types/paypal](../types/paypal.go) - PayPal wire data structures
- [errs](../errs/errs.go) - Error taxonomy

## Tags
api-client, paypal, payments, oauth

## Exports
Client, NewClient, AccessToken, CreateOrder, CaptureOrder

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "paypal/client.go" ;
    code:description "PayPal REST API client for OAuth token acquisition and checkout orders" ;
    code:linksTo [
        code:name "types/paypal" ;
        code:path "../types/paypal.go" ;
        code:relationship "PayPal wire data structures"
    ], [
        code:name "errs" ;
        code:path "../errs/errs.go" ;
        code:relationship "Error taxonomy"
    ] ;
    code:exports :Client, :NewClient, :AccessToken, :CreateOrder, :CaptureOrder ;
    code:tags "api-client", "paypal", "payments", "oauth" .
<!-- End LinkedDoc RDF -->
*/
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fenotesb/helping-hands-platform/internal/errs"
	"github.com/fenotesb/helping-hands-platform/internal/types"
)

// Client handles PayPal REST API requests. A fresh access token is fetched
// for every operation; tokens are never cached across invocations.
type Client struct {
	clientID   string
	secret     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new PayPal API client. It fails before any network
// attempt when credentials are missing.
func NewClient(clientID, secret, baseURL string) (*Client, error) {
	if clientID == "" || secret == "" {
		return nil, errs.Configuration("PAYPAL_CLIENT_ID and PAYPAL_SECRET (or PAYPAL_CLIENT_SECRET) must be set")
	}

	return &Client{
		clientID:   clientID,
		secret:     secret,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// AccessToken exchanges the client credentials for a short-lived bearer token.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req, "PayPal token request")
	if err != nil {
		return "", err
	}

	var tokenResp types.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access_token")
	}

	return tokenResp.AccessToken, nil
}

// CreateOrder creates a checkout order for the given USD value ("12.35").
// The provider's JSON response is returned unchanged.
func (c *Client) CreateOrder(ctx context.Context, accessToken, value string) (json.RawMessage, error) {
	orderReq := types.OrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []types.PurchaseUnit{
			{Amount: types.Amount{CurrencyCode: "USD", Value: value}},
		},
	}

	payload, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, "PayPal order creation")
}

// CaptureOrder finalizes an approved order. PayPal expects a POST with an
// empty JSON body. The provider's JSON response is returned unchanged.
func (c *Client) CaptureOrder(ctx context.Context, accessToken, orderID string) (json.RawMessage, error) {
	captureURL := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.baseURL, url.PathEscape(orderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, captureURL, strings.NewReader("{}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create capture request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, "PayPal capture")
}

// do executes a request and returns the response body. A non-2xx status
// becomes an UpstreamError carrying the provider's status and body verbatim.
func (c *Client) do(req *http.Request, operation string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call PayPal API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &errs.UpstreamError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}

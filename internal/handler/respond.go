/*
# Module: handler/respond.go
Shared API Gateway response helpers.

## Linked Modules
- [types/api](../types/api.go) - Response body data structures
- [errs](../errs/errs.go) - Error taxonomy

## Tags
http, api, lambda

## Exports
JSONResponse, RawJSONResponse, ErrorResponse, UpstreamErrorResponse

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handler/respond.go" ;
    code:description "Shared API Gateway response helpers" ;
    code:linksTo [
        code:name "types/api" ;
        code:path "../types/api.go" ;
        code:relationship "Response body data structures"
    ], [
        code:name "errs" ;
        code:path "../errs/errs.go" ;
        code:relationship "Error taxonomy"
    ] ;
    code:exports :JSONResponse, :RawJSONResponse, :ErrorResponse, :UpstreamErrorResponse ;
    code:tags "http", "api", "lambda" .
<!-- End LinkedDoc RDF -->
*/
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/fenotesb/helping-hands-platform/internal/errs"
	"github.com/fenotesb/helping-hands-platform/internal/types"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// JSONResponse marshals v into an API Gateway response body
func JSONResponse(statusCode int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return ErrorResponse(http.StatusInternalServerError, "failed to encode response")
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    jsonHeaders,
		Body:       string(body),
	}
}

// RawJSONResponse returns an already-encoded JSON body unchanged, used to pass
// provider responses through verbatim
func RawJSONResponse(statusCode int, body json.RawMessage) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    jsonHeaders,
		Body:       string(body),
	}
}

// ErrorResponse returns a structured error body with a message field
func ErrorResponse(statusCode int, message string) events.APIGatewayProxyResponse {
	return JSONResponse(statusCode, types.ErrorResponse{Message: message})
}

// UpstreamErrorResponse returns a structured error body for a failed provider
// call. The message embeds the provider's status code and response text, and
// details carries the raw provider body on its own for diagnosability.
func UpstreamErrorResponse(statusCode int, upstreamErr *errs.UpstreamError) events.APIGatewayProxyResponse {
	return JSONResponse(statusCode, types.ErrorResponse{
		Message: upstreamErr.Error(),
		Details: upstreamErr.Body,
	})
}

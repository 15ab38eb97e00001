/*
# Module: types/api.go
API Gateway response body data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, api

## Exports
ErrorResponse, CreatedResponse

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/api.go" ;
    code:description "API Gateway response body data structures" ;
    code:exports :ErrorResponse, :CreatedResponse ;
    code:tags "data-types", "api" .
<!-- End LinkedDoc RDF -->
*/
package types

// ErrorResponse is the structured body returned for every failed request.
// Details carries the raw upstream error text when a provider call failed.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CreatedResponse is returned after a record is created
type CreatedResponse struct {
	ID string `json:"id"`
}

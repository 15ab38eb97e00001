/*
# Module: types/donation.go
PayPal donation record data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, payments, paypal

## Exports
Donation

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/donation.go" ;
    code:description "PayPal donation record data structures" ;
    code:exports :Donation ;
    code:tags "data-types", "payments", "paypal" .
<!-- End LinkedDoc RDF -->
*/
package types

import "time"

// Donation represents a captured donation recorded from a PayPal webhook.
// Amount is kept as the provider-formatted string (e.g. "12.35") so the value
// stored matches the value charged exactly.
type Donation struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Amount    string    `json:"amount" dynamodbav:"amount"`
	Currency  string    `json:"currency" dynamodbav:"currency"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

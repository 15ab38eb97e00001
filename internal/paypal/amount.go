/*
# Module: paypal/amount.go
Donation amount validation and normalization.

## Linked Modules
- [errs](../errs/errs.go) - Error taxonomy

## Tags
payments, validation

## Exports
NormalizeAmount

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "paypal/amount.go" ;
    code:description "Donation amount validation and normalization" ;
    code:linksTo [
        code:name "errs" ;
        code:path "../errs/errs.go" ;
        code:relationship "Error taxonomy"
    ] ;
    code:exports :NormalizeAmount ;
    code:tags "payments", "validation" .
<!-- End LinkedDoc RDF -->
*/
package paypal

import (
	"strconv"

	"github.com/fenotesb/helping-hands-platform/internal/errs"
)

// NormalizeAmount validates a donation amount and formats it with exactly two
// fractional digits, as PayPal requires. Rounding is round-half-to-even
// applied to the exact binary value of the float (Go's default formatting);
// the float64 nearest to 12.345 sits just above it, so 12.345 yields "12.35".
func NormalizeAmount(amount *float64) (string, error) {
	if amount == nil {
		return "", errs.Validation("amount is required")
	}
	if *amount <= 0 {
		return "", errs.Validation("amount must be positive")
	}
	return strconv.FormatFloat(*amount, 'f', 2, 64), nil
}

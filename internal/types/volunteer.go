/*
# Module: types/volunteer.go
Volunteer record data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, volunteers

## Exports
Volunteer, CreateVolunteerRequest

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/volunteer.go" ;
    code:description "Volunteer record data structures" ;
    code:exports :Volunteer, :CreateVolunteerRequest ;
    code:tags "data-types", "volunteers" .
<!-- End LinkedDoc RDF -->
*/
package types

import "time"

// Volunteer represents a registered volunteer record
type Volunteer struct {
	ID                     string    `json:"id" dynamodbav:"id"`
	Name                   string    `json:"name" dynamodbav:"name"`
	Email                  string    `json:"email" dynamodbav:"email"`
	Phone                  string    `json:"phone,omitempty" dynamodbav:"phone"`
	City                   string    `json:"city,omitempty" dynamodbav:"city"`
	AreasOfInterest        []string  `json:"areas_of_interest" dynamodbav:"areas_of_interest"`
	Skills                 []string  `json:"skills" dynamodbav:"skills"`
	Availability           string    `json:"availability" dynamodbav:"availability"`
	PreferredContactMethod string    `json:"preferred_contact_method" dynamodbav:"preferred_contact_method"`
	IsActive               bool      `json:"is_active" dynamodbav:"is_active"`
	CreatedAt              time.Time `json:"created_at" dynamodbav:"created_at"`
}

// CreateVolunteerRequest represents the inbound payload for volunteer signup
type CreateVolunteerRequest struct {
	Name                   string   `json:"name"`
	Email                  string   `json:"email"`
	Phone                  string   `json:"phone"`
	City                   string   `json:"city"`
	AreasOfInterest        []string `json:"areas_of_interest"`
	Skills                 []string `json:"skills"`
	Availability           string   `json:"availability"`
	PreferredContactMethod string   `json:"preferred_contact_method"`
}

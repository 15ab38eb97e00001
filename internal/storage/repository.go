/*
# Module: storage/repository.go
Repository interfaces for data persistence layer.

## Linked Modules
- [types/volunteer](../types/volunteer.go) - Volunteer data structures
- [types/donation](../types/donation.go) - Donation data structures

## Tags
storage, repository, interface, persistence

## Exports
VolunteerRepository, DonationRepository

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/repository.go" ;
    code:description "Repository interfaces for data persistence layer" ;
    code:linksTo [
        code:name "types/volunteer" ;
        code:path "../types/volunteer.go" ;
        code:relationship "Volunteer data structures"
    ], [
        code:name "types/donation" ;
        code:path "../types/donation.go" ;
        code:relationship "Donation data structures"
    ] ;
    code:exports :VolunteerRepository, :DonationRepository ;
    code:tags "storage", "repository", "interface", "persistence" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"

	"github.com/fenotesb/helping-hands-platform/internal/types"
)

// VolunteerRepository handles volunteer record persistence
type VolunteerRepository interface {
	Save(ctx context.Context, volunteer types.Volunteer) error
	GetByID(ctx context.Context, id string) (*types.Volunteer, error)
	GetAll(ctx context.Context) ([]types.Volunteer, error)
}

// DonationRepository handles donation record persistence
type DonationRepository interface {
	Save(ctx context.Context, donation types.Donation) error
	GetByID(ctx context.Context, id string) (*types.Donation, error)
}

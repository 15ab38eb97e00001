/*
# Module: storage/memory.go
In-memory repository implementations for tests and local development.

## Linked Modules
- [storage/repository](./repository.go) - Repository interfaces

## Tags
storage, memory, persistence, testing

## Exports
MemoryVolunteerRepository, MemoryDonationRepository

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/memory.go" ;
    code:description "In-memory repository implementations for tests and local development" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "./repository.go" ;
        code:relationship "Repository interfaces"
    ] ;
    code:exports :MemoryVolunteerRepository, :MemoryDonationRepository ;
    code:tags "storage", "memory", "persistence", "testing" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"sync"

	"github.com/fenotesb/helping-hands-platform/internal/errs"
	"github.com/fenotesb/helping-hands-platform/internal/types"
)

// MemoryVolunteerRepository implements VolunteerRepository with a mutex-guarded map
type MemoryVolunteerRepository struct {
	mu         sync.RWMutex
	volunteers map[string]types.Volunteer
}

// NewMemoryVolunteerRepository creates an empty in-memory volunteer repository
func NewMemoryVolunteerRepository() *MemoryVolunteerRepository {
	return &MemoryVolunteerRepository{
		volunteers: make(map[string]types.Volunteer),
	}
}

func (r *MemoryVolunteerRepository) Save(ctx context.Context, volunteer types.Volunteer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.volunteers[volunteer.ID] = volunteer
	return nil
}

func (r *MemoryVolunteerRepository) GetByID(ctx context.Context, id string) (*types.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	volunteer, ok := r.volunteers[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &volunteer, nil
}

func (r *MemoryVolunteerRepository) GetAll(ctx context.Context) ([]types.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	volunteers := make([]types.Volunteer, 0, len(r.volunteers))
	for _, v := range r.volunteers {
		volunteers = append(volunteers, v)
	}
	return volunteers, nil
}

// MemoryDonationRepository implements DonationRepository with a mutex-guarded map
type MemoryDonationRepository struct {
	mu        sync.RWMutex
	donations map[string]types.Donation
}

// NewMemoryDonationRepository creates an empty in-memory donation repository
func NewMemoryDonationRepository() *MemoryDonationRepository {
	return &MemoryDonationRepository{
		donations: make(map[string]types.Donation),
	}
}

func (r *MemoryDonationRepository) Save(ctx context.Context, donation types.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.donations[donation.ID] = donation
	return nil
}

func (r *MemoryDonationRepository) GetByID(ctx context.Context, id string) (*types.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	donation, ok := r.donations[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &donation, nil
}

// Len reports the number of stored donations
func (r *MemoryDonationRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.donations)
}

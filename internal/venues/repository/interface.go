package repository

import (
	"context"

	"github.com/google/uuid"
)

// ListParams selects one page of venues, optionally restricted to an
// inclusive capacity range. Both bounds are set or neither is.
type ListParams struct {
	Limit       int
	Offset      int
	MinCapacity *int
	MaxCapacity *int
}

// CreateParams holds the fields of a venue to insert. OwnerID always comes
// from the authenticated identity, never from client input.
type CreateParams struct {
	Name          string
	City          string
	Address       string
	Capacity      int
	Indoor        bool
	PhoneNumber   string
	Email         string
	Picture       string
	BackupPicture string
	OwnerID       uuid.UUID
	Description   string
}

// VenuesRepository defines the interface for venue persistence.
// Services depend on this abstraction rather than the pgx implementation.
type VenuesRepository interface {
	// List returns one page plus the total count of the same (filtered) set.
	List(ctx context.Context, params ListParams) ([]Venue, int, error)
	Create(ctx context.Context, params CreateParams) (Venue, error)
	GetByID(ctx context.Context, id uuid.UUID) (Venue, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Venue, error)
	// DeleteOwned atomically deletes the venue only when it belongs to
	// ownerID and returns the deleted record.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (Venue, error)
}

// Ensure Repository implements VenuesRepository
var _ VenuesRepository = (*Repository)(nil)

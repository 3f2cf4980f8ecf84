package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is the owner's bio record. There is at most one per owner; it is
// created lazily by the first bio save.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	// GetByOwner returns (nil, nil) when no profile row exists yet.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	// Upsert inserts or updates keyed by owner_id and returns the
	// persisted record with server-assigned fields filled in.
	Upsert(ctx context.Context, p *Profile) (*Profile, error)
}

package experience

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Experience is one work entry. A nil EndDate means the role is current.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

var (
	ErrCompanyRequired   = errors.New("company is required")
	ErrRoleRequired      = errors.New("role is required")
	ErrStartDateRequired = errors.New("start date is required")
)

// Validate checks the required fields. End date ordering against the start
// date is deliberately not checked.
func (e *Experience) Validate() error {
	if strings.TrimSpace(e.Company) == "" {
		return ErrCompanyRequired
	}
	if strings.TrimSpace(e.Role) == "" {
		return ErrRoleRequired
	}
	if e.StartDate.IsZero() {
		return ErrStartDateRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Experience, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
}

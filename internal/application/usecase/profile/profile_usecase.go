package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ntmai/folio-api/adapters/event"
	"github.com/ntmai/folio-api/internal/domain/experience"
	"github.com/ntmai/folio-api/internal/domain/profile"
	"github.com/ntmai/folio-api/internal/domain/project"
	"github.com/ntmai/folio-api/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo    profile.Repository
	projectRepo    project.Repository
	experienceRepo experience.Repository
	publisher      event.Publisher
	logger         logger.Logger
}

func NewProfileUseCase(pRepo profile.Repository, prjRepo project.Repository, expRepo experience.Repository, pub event.Publisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:    pRepo,
		projectRepo:    prjRepo,
		experienceRepo: expRepo,
		publisher:      pub,
		logger:         log,
	}
}

type GetAggregateInput struct {
	OwnerID uuid.UUID
}

// GetAggregateOutput is the complete profile snapshot: the bio record (nil
// when never saved), projects newest-created first, experiences
// newest-start first.
type GetAggregateOutput struct {
	Profile     *profile.Profile
	Projects    []*project.Project
	Experiences []*experience.Experience
}

// ExecuteGetAggregate issues the three reads in sequence. Any failure aborts
// the whole load; callers never see a partial aggregate.
func (uc *ProfileUseCase) ExecuteGetAggregate(ctx context.Context, input GetAggregateInput) (*GetAggregateOutput, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}

	projects, err := uc.projectRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}

	experiences, err := uc.experienceRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list experiences failed: %w", err)
	}

	return &GetAggregateOutput{
		Profile:     p,
		Projects:    projects,
		Experiences: experiences,
	}, nil
}

type UpsertBioInput struct {
	OwnerID uuid.UUID
	Bio     string
}

type UpsertBioOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpsertBio(ctx context.Context, input UpsertBioInput) (*UpsertBioOutput, error) {
	persisted, err := uc.profileRepo.Upsert(ctx, &profile.Profile{
		OwnerID: input.OwnerID,
		Bio:     input.Bio,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert bio failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeBioUpserted,
			EntityID:   persisted.ID,
			OwnerID:    persisted.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish bio event", zap.String("owner_id", persisted.OwnerID.String()), zap.Error(err))
		}
	}()

	return &UpsertBioOutput{Profile: persisted}, nil
}

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ntmai/folio-api/adapters/event"
	"github.com/ntmai/folio-api/internal/domain/project"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(pRepo project.Repository, pub event.Publisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: pRepo, publisher: pub, logger: log}
}

// UpdateProjectInput carries a partial field set: nil pointers leave the
// stored value untouched.
type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	OwnerID     uuid.UUID
	Title       *string
	Link        *string
	Description *string
	Tags        *[]string
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {

	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Link != nil {
		p.Link = *input.Link
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Tags != nil {
		p.Tags = project.NormalizeTags(*input.Tags)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update project failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeProjectUpdated,
			EntityID:   p.ID,
			OwnerID:    p.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish project event", zap.String("project_id", p.ID.String()), zap.Error(err))
		}
	}()

	return &UpdateProjectOutput{Project: p}, nil
}

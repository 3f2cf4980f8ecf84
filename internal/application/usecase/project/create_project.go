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

type CreateProjectUseCase struct {
	projectRepo project.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(pRepo project.Repository, pub event.Publisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		publisher:   pub,
		logger:      log,
	}
}

type CreateProjectInput struct {
	OwnerID     uuid.UUID
	Title       string
	Link        string
	Description string
	Tags        []string
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	now := time.Now().UTC()

	newProject := &project.Project{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
		Tags:        project.NormalizeTags(input.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeProjectCreated,
			EntityID:   newProject.ID,
			OwnerID:    newProject.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish project event", zap.String("project_id", newProject.ID.String()), zap.Error(err))
		}
	}()

	return &CreateProjectOutput{Project: newProject}, nil
}

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ntmai/folio-api/adapters/event"
	"github.com/ntmai/folio-api/internal/domain/project"
	"github.com/ntmai/folio-api/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(pRepo project.Repository, pub event.Publisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo, publisher: pub, logger: log}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
	OwnerID   uuid.UUID
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.Delete(ctx, input.ProjectID, input.OwnerID); err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeProjectDeleted,
			EntityID:   input.ProjectID,
			OwnerID:    input.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish project event", zap.String("project_id", input.ProjectID.String()), zap.Error(err))
		}
	}()

	return nil
}

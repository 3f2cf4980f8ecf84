package experience

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ntmai/folio-api/adapters/event"
	"github.com/ntmai/folio-api/internal/domain/experience"
	"github.com/ntmai/folio-api/pkg/logger"
)

type DeleteExperienceUseCase struct {
	experienceRepo experience.Repository
	publisher      event.Publisher
	logger         logger.Logger
}

func NewDeleteExperienceUseCase(eRepo experience.Repository, pub event.Publisher, log logger.Logger) *DeleteExperienceUseCase {
	return &DeleteExperienceUseCase{experienceRepo: eRepo, publisher: pub, logger: log}
}

type DeleteExperienceInput struct {
	ExperienceID uuid.UUID
	OwnerID      uuid.UUID
}

func (uc *DeleteExperienceUseCase) Execute(ctx context.Context, input DeleteExperienceInput) error {
	if err := uc.experienceRepo.Delete(ctx, input.ExperienceID, input.OwnerID); err != nil {
		return fmt.Errorf("delete experience failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeExperienceDeleted,
			EntityID:   input.ExperienceID,
			OwnerID:    input.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish experience event", zap.String("experience_id", input.ExperienceID.String()), zap.Error(err))
		}
	}()

	return nil
}

package experience

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ntmai/folio-api/adapters/event"
	"github.com/ntmai/folio-api/internal/domain/experience"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type UpdateExperienceUseCase struct {
	experienceRepo experience.Repository
	publisher      event.Publisher
	logger         logger.Logger
}

func NewUpdateExperienceUseCase(eRepo experience.Repository, pub event.Publisher, log logger.Logger) *UpdateExperienceUseCase {
	return &UpdateExperienceUseCase{experienceRepo: eRepo, publisher: pub, logger: log}
}

// UpdateExperienceInput carries a partial field set: nil pointers leave the
// stored value untouched. A supplied blank EndDate clears it to "present".
type UpdateExperienceInput struct {
	ExperienceID uuid.UUID
	OwnerID      uuid.UUID
	Company      *string
	Role         *string
	StartDate    *string
	EndDate      *string
	Description  *string
}

type UpdateExperienceOutput struct {
	Experience *experience.Experience
}

func (uc *UpdateExperienceUseCase) Execute(ctx context.Context, input UpdateExperienceInput) (*UpdateExperienceOutput, error) {

	e, err := uc.experienceRepo.FindByID(ctx, input.ExperienceID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Company != nil {
		e.Company = *input.Company
	}
	if input.Role != nil {
		e.Role = *input.Role
	}
	if input.StartDate != nil {
		startDate, err := parseStartDate(*input.StartDate)
		if err != nil {
			return nil, err
		}
		e.StartDate = startDate
	}
	if input.EndDate != nil {
		endDate, err := parseEndDate(*input.EndDate)
		if err != nil {
			return nil, err
		}
		e.EndDate = endDate
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	e.UpdatedAt = time.Now().UTC()

	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}
	if err := uc.experienceRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update experience failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeExperienceUpdated,
			EntityID:   e.ID,
			OwnerID:    e.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish experience event", zap.String("experience_id", e.ID.String()), zap.Error(err))
		}
	}()

	return &UpdateExperienceOutput{Experience: e}, nil
}

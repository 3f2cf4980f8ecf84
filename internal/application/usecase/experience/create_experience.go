package experience

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ntmai/folio-api/adapters/event"
	"github.com/ntmai/folio-api/internal/domain/experience"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

// DateLayout is the wire format for start and end dates.
const DateLayout = "2006-01-02"

// parseEndDate normalizes a blank end date to absent ("present").
func parseEndDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("invalid end date %q", raw), err)
	}
	return &t, nil
}

func parseStartDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperror.NewInvalidInput("start date is required", nil)
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, apperror.NewInvalidInput(fmt.Sprintf("invalid start date %q", raw), err)
	}
	return t, nil
}

type CreateExperienceUseCase struct {
	experienceRepo experience.Repository
	publisher      event.Publisher
	logger         logger.Logger
}

func NewCreateExperienceUseCase(eRepo experience.Repository, pub event.Publisher, log logger.Logger) *CreateExperienceUseCase {
	return &CreateExperienceUseCase{
		experienceRepo: eRepo,
		publisher:      pub,
		logger:         log,
	}
}

type CreateExperienceInput struct {
	OwnerID     uuid.UUID
	Company     string
	Role        string
	StartDate   string
	EndDate     string
	Description string
}

type CreateExperienceOutput struct {
	Experience *experience.Experience
}

func (uc *CreateExperienceUseCase) Execute(ctx context.Context, input CreateExperienceInput) (*CreateExperienceOutput, error) {
	startDate, err := parseStartDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	newExperience := &experience.Experience{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Company:     input.Company,
		Role:        input.Role,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := newExperience.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.experienceRepo.Save(ctx, newExperience); err != nil {
		return nil, fmt.Errorf("save experience failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeExperienceCreated,
			EntityID:   newExperience.ID,
			OwnerID:    newExperience.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish experience event", zap.String("experience_id", newExperience.ID.String()), zap.Error(err))
		}
	}()

	return &CreateExperienceOutput{Experience: newExperience}, nil
}

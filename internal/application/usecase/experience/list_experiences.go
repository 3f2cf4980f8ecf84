package experience

import (
	"context"

	"github.com/google/uuid"

	"github.com/ntmai/folio-api/internal/domain/experience"
	"github.com/ntmai/folio-api/pkg/logger"
)

type ListExperiencesUseCase struct {
	experienceRepo experience.Repository
	logger         logger.Logger
}

func NewListExperiencesUseCase(eRepo experience.Repository, log logger.Logger) *ListExperiencesUseCase {
	return &ListExperiencesUseCase{experienceRepo: eRepo, logger: log}
}

type ListExperiencesInput struct {
	OwnerID uuid.UUID
}

type ListExperiencesOutput struct {
	Experiences []*experience.Experience
}

func (uc *ListExperiencesUseCase) Execute(ctx context.Context, input ListExperiencesInput) (*ListExperiencesOutput, error) {
	experiences, err := uc.experienceRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &ListExperiencesOutput{Experiences: experiences}, nil
}

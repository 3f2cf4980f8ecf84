package http

import (
	"time"

	expUC "github.com/ntmai/folio-api/internal/application/usecase/experience"
	profileUC "github.com/ntmai/folio-api/internal/application/usecase/profile"
	"github.com/ntmai/folio-api/internal/domain/experience"
	"github.com/ntmai/folio-api/internal/domain/profile"
	"github.com/ntmai/folio-api/internal/domain/project"
)

// Profile DTOs

type ProfileDTO struct {
	ID        string    `json:"id"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CompleteProfileDTO struct {
	Profile     *ProfileDTO     `json:"profile"`
	Projects    []ProjectDTO    `json:"projects"`
	Experiences []ExperienceDTO `json:"experiences"`
}

type UpsertBioRequest struct {
	Bio string `json:"bio"`
}

func ToProfileDTO(p *profile.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		ID:        p.ID.String(),
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToCompleteProfileDTO(out *profileUC.GetAggregateOutput) CompleteProfileDTO {
	dto := CompleteProfileDTO{
		Profile:     ToProfileDTO(out.Profile),
		Projects:    make([]ProjectDTO, len(out.Projects)),
		Experiences: make([]ExperienceDTO, len(out.Experiences)),
	}
	for i, p := range out.Projects {
		dto.Projects[i] = ToProjectDTO(p)
	}
	for i, e := range out.Experiences {
		dto.Experiences[i] = ToExperienceDTO(e)
	}
	return dto
}

// Project DTOs

type ProjectDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Link        string   `json:"link"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
}

// UpdateProjectRequest is a partial update: absent fields stay untouched.
type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Link        *string   `json:"link"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProjectDTO{
		ID:          p.ID.String(),
		Title:       p.Title,
		Link:        p.Link,
		Description: p.Description,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Experience DTOs

type ExperienceDTO struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateExperienceRequest struct {
	Company     string `json:"company" binding:"required"`
	Role        string `json:"role" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// UpdateExperienceRequest is a partial update: absent fields stay
// untouched; a supplied empty end_date clears it to "present".
type UpdateExperienceRequest struct {
	Company     *string `json:"company"`
	Role        *string `json:"role"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	dto := ExperienceDTO{
		ID:          e.ID.String(),
		Company:     e.Company,
		Role:        e.Role,
		StartDate:   e.StartDate.Format(expUC.DateLayout),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.EndDate != nil {
		formatted := e.EndDate.Format(expUC.DateLayout)
		dto.EndDate = &formatted
	}
	return dto
}

package editor

import (
	"context"
	"strings"

	"github.com/ntmai/folio-api/internal/client/api"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type ExperienceStore interface {
	CreateExperience(ctx context.Context, form api.ExperienceForm) (*api.Experience, error)
	UpdateExperience(ctx context.Context, id string, patch api.ExperiencePatch) (*api.Experience, error)
	DeleteExperience(ctx context.Context, id string) error
}

type ExperienceEditor struct {
	store  ExperienceStore
	reload ReloadFunc
	logger logger.Logger

	mode     Mode
	targetID string
	form     api.ExperienceForm
}

func NewExperienceEditor(store ExperienceStore, reload ReloadFunc, log logger.Logger) *ExperienceEditor {
	return &ExperienceEditor{
		store:  store,
		reload: reload,
		logger: log,
	}
}

func (e *ExperienceEditor) Mode() Mode {
	return e.mode
}

func (e *ExperienceEditor) Form() api.ExperienceForm {
	return e.form
}

func (e *ExperienceEditor) SetForm(form api.ExperienceForm) {
	if e.mode == ModeIdle {
		return
	}
	e.form = form
}

func (e *ExperienceEditor) Open() {
	e.form = api.ExperienceForm{}
	e.mode = ModeCreate
	e.targetID = ""
}

func (e *ExperienceEditor) OpenEdit(exp api.Experience) {
	endDate := ""
	if exp.EndDate != nil {
		endDate = *exp.EndDate
	}
	e.form = api.ExperienceForm{
		Company:     exp.Company,
		Role:        exp.Role,
		StartDate:   exp.StartDate,
		EndDate:     endDate,
		Description: exp.Description,
	}
	e.mode = ModeEdit
	e.targetID = exp.ID
}

func (e *ExperienceEditor) Cancel() {
	e.form = api.ExperienceForm{}
	e.mode = ModeIdle
	e.targetID = ""
}

func (e *ExperienceEditor) Submit(ctx context.Context) error {
	if e.mode == ModeIdle {
		return nil
	}

	if err := e.validate(); err != nil {
		return err
	}

	var err error
	switch e.mode {
	case ModeCreate:
		_, err = e.store.CreateExperience(ctx, e.form)
	case ModeEdit:
		form := e.form
		patch := api.ExperiencePatch{
			Company:     &form.Company,
			Role:        &form.Role,
			StartDate:   &form.StartDate,
			EndDate:     &form.EndDate,
			Description: &form.Description,
		}
		_, err = e.store.UpdateExperience(ctx, e.targetID, patch)
	}
	if err != nil {
		e.logger.Error("Failed to save experience", err)
		return err
	}

	if err := e.reload(ctx); err != nil {
		return err
	}

	e.Cancel()
	return nil
}

func (e *ExperienceEditor) Delete(ctx context.Context, id string) error {
	if err := e.store.DeleteExperience(ctx, id); err != nil {
		e.logger.Error("Failed to delete experience", err)
		return err
	}
	return e.reload(ctx)
}

func (e *ExperienceEditor) validate() error {
	if strings.TrimSpace(e.form.Company) == "" {
		return apperror.NewInvalidInput("company is required", nil)
	}
	if strings.TrimSpace(e.form.Role) == "" {
		return apperror.NewInvalidInput("role is required", nil)
	}
	if strings.TrimSpace(e.form.StartDate) == "" {
		return apperror.NewInvalidInput("start date is required", nil)
	}
	return nil
}

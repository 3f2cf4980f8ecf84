// Package editor holds the transient add/edit form state machines for
// projects and experiences. Each editor owns its buffer exclusively and is
// independent of the page-level edit session.
package editor

import (
	"context"
	"strings"

	"github.com/ntmai/folio-api/internal/client/api"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeCreate
	ModeEdit
)

// ReloadFunc is the parent's aggregate refresh, invoked after every
// successful mutation.
type ReloadFunc func(ctx context.Context) error

type ProjectStore interface {
	CreateProject(ctx context.Context, form api.ProjectForm) (*api.Project, error)
	UpdateProject(ctx context.Context, id string, patch api.ProjectPatch) (*api.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type ProjectEditor struct {
	store  ProjectStore
	reload ReloadFunc
	logger logger.Logger

	mode     Mode
	targetID string
	form     api.ProjectForm
}

func NewProjectEditor(store ProjectStore, reload ReloadFunc, log logger.Logger) *ProjectEditor {
	return &ProjectEditor{
		store:  store,
		reload: reload,
		logger: log,
	}
}

func (e *ProjectEditor) Mode() Mode {
	return e.mode
}

func (e *ProjectEditor) Form() api.ProjectForm {
	return e.form
}

func (e *ProjectEditor) SetForm(form api.ProjectForm) {
	if e.mode == ModeIdle {
		return
	}
	tags := e.form.Tags
	e.form = form
	if form.Tags == nil {
		e.form.Tags = tags
	}
}

// Open starts a create form with empty defaults.
func (e *ProjectEditor) Open() {
	e.form = api.ProjectForm{Tags: []string{}}
	e.mode = ModeCreate
	e.targetID = ""
}

// OpenEdit pre-populates the buffer from an existing project; the tag list
// is copied by value so buffer edits never leak into the aggregate.
func (e *ProjectEditor) OpenEdit(p api.Project) {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	e.form = api.ProjectForm{
		Title:       p.Title,
		Link:        p.Link,
		Description: p.Description,
		Tags:        tags,
	}
	e.mode = ModeEdit
	e.targetID = p.ID
}

// Cancel discards the buffer unconditionally, no store interaction.
func (e *ProjectEditor) Cancel() {
	e.form = api.ProjectForm{}
	e.mode = ModeIdle
	e.targetID = ""
}

// AddTag trims the candidate and appends it, preserving insertion order.
// Blank or already-present tags are a no-op.
func (e *ProjectEditor) AddTag(candidate string) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return
	}
	for _, t := range e.form.Tags {
		if t == candidate {
			return
		}
	}
	e.form.Tags = append(e.form.Tags, candidate)
}

// RemoveTag drops the first exact match; absence is a no-op.
func (e *ProjectEditor) RemoveTag(tag string) {
	for i, t := range e.form.Tags {
		if t == tag {
			e.form.Tags = append(e.form.Tags[:i], e.form.Tags[i+1:]...)
			return
		}
	}
}

// Submit validates the buffer, performs the create-or-update chosen by
// mode, reloads the parent aggregate, and resets to Idle. On any failure
// the form stays open with the buffer intact.
func (e *ProjectEditor) Submit(ctx context.Context) error {
	if e.mode == ModeIdle {
		return nil
	}

	if err := e.validate(); err != nil {
		return err
	}

	var err error
	switch e.mode {
	case ModeCreate:
		_, err = e.store.CreateProject(ctx, e.form)
	case ModeEdit:
		form := e.form
		patch := api.ProjectPatch{
			Title:       &form.Title,
			Link:        &form.Link,
			Description: &form.Description,
			Tags:        &form.Tags,
		}
		_, err = e.store.UpdateProject(ctx, e.targetID, patch)
	}
	if err != nil {
		e.logger.Error("Failed to save project", err)
		return err
	}

	if err := e.reload(ctx); err != nil {
		return err
	}

	e.Cancel()
	return nil
}

// Delete removes an item directly and reloads; it does not touch the form
// buffer, which may be open for a different item.
func (e *ProjectEditor) Delete(ctx context.Context, id string) error {
	if err := e.store.DeleteProject(ctx, id); err != nil {
		e.logger.Error("Failed to delete project", err)
		return err
	}
	return e.reload(ctx)
}

func (e *ProjectEditor) validate() error {
	if strings.TrimSpace(e.form.Title) == "" {
		return apperror.NewInvalidInput("project title is required", nil)
	}
	if strings.TrimSpace(e.form.Description) == "" {
		return apperror.NewInvalidInput("project description is required", nil)
	}
	return nil
}

package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntmai/folio-api/internal/client/api"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type mockProjectStore struct {
	CreateProjectFunc func(ctx context.Context, form api.ProjectForm) (*api.Project, error)
	UpdateProjectFunc func(ctx context.Context, id string, patch api.ProjectPatch) (*api.Project, error)
	DeleteProjectFunc func(ctx context.Context, id string) error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockProjectStore) CreateProject(ctx context.Context, form api.ProjectForm) (*api.Project, error) {
	m.createCalls++
	return m.CreateProjectFunc(ctx, form)
}

func (m *mockProjectStore) UpdateProject(ctx context.Context, id string, patch api.ProjectPatch) (*api.Project, error) {
	m.updateCalls++
	return m.UpdateProjectFunc(ctx, id, patch)
}

func (m *mockProjectStore) DeleteProject(ctx context.Context, id string) error {
	m.deleteCalls++
	return m.DeleteProjectFunc(ctx, id)
}

func countingReload(calls *int) ReloadFunc {
	return func(ctx context.Context) error {
		*calls++
		return nil
	}
}

func TestProjectEditor_AddTag(t *testing.T) {
	e := NewProjectEditor(&mockProjectStore{}, countingReload(new(int)), logger.NewNop())
	e.Open()

	e.AddTag("  go  ")
	e.AddTag("go")
	e.AddTag("")
	e.AddTag("   ")
	e.AddTag("grpc")

	assert.Equal(t, []string{"go", "grpc"}, e.Form().Tags)
}

func TestProjectEditor_RemoveTag(t *testing.T) {
	e := NewProjectEditor(&mockProjectStore{}, countingReload(new(int)), logger.NewNop())
	e.Open()
	e.AddTag("go")
	e.AddTag("grpc")

	e.RemoveTag("go")
	e.RemoveTag("missing")

	assert.Equal(t, []string{"grpc"}, e.Form().Tags)
}

func TestProjectEditor_OpenEditCopiesTags(t *testing.T) {
	original := api.Project{
		ID:          "proj-1",
		Title:       "Folio",
		Description: "a portfolio",
		Tags:        []string{"go"},
	}
	e := NewProjectEditor(&mockProjectStore{}, countingReload(new(int)), logger.NewNop())

	e.OpenEdit(original)
	e.AddTag("grpc")
	e.RemoveTag("go")

	assert.Equal(t, []string{"go"}, original.Tags, "buffer edits must not leak into the aggregate")
	assert.Equal(t, []string{"grpc"}, e.Form().Tags)
}

func TestProjectEditor_SubmitValidatesBeforeStoreCall(t *testing.T) {
	store := &mockProjectStore{}
	reloads := 0
	e := NewProjectEditor(store, countingReload(&reloads), logger.NewNop())

	e.Open()
	e.SetForm(api.ProjectForm{Title: "   ", Description: "desc"})
	err := e.Submit(context.Background())

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, 0, store.createCalls)
	assert.Equal(t, 0, reloads)
	assert.Equal(t, ModeCreate, e.Mode(), "form stays open after a validation failure")
	assert.Equal(t, "desc", e.Form().Description, "buffer intact after a validation failure")
}

func TestProjectEditor_SubmitCreateThenReset(t *testing.T) {
	var gotForm api.ProjectForm
	store := &mockProjectStore{
		CreateProjectFunc: func(ctx context.Context, form api.ProjectForm) (*api.Project, error) {
			gotForm = form
			return &api.Project{ID: "proj-1"}, nil
		},
	}
	reloads := 0
	e := NewProjectEditor(store, countingReload(&reloads), logger.NewNop())

	e.Open()
	e.SetForm(api.ProjectForm{Title: "Folio", Description: "a portfolio"})
	e.AddTag("go")
	require.NoError(t, e.Submit(context.Background()))

	assert.Equal(t, "Folio", gotForm.Title)
	assert.Equal(t, []string{"go"}, gotForm.Tags)
	assert.Equal(t, 1, reloads)
	assert.Equal(t, ModeIdle, e.Mode())
}

func TestProjectEditor_SubmitEditSendsPatchForTarget(t *testing.T) {
	var gotID string
	var gotPatch api.ProjectPatch
	store := &mockProjectStore{
		UpdateProjectFunc: func(ctx context.Context, id string, patch api.ProjectPatch) (*api.Project, error) {
			gotID = id
			gotPatch = patch
			return &api.Project{ID: id}, nil
		},
	}
	reloads := 0
	e := NewProjectEditor(store, countingReload(&reloads), logger.NewNop())

	e.OpenEdit(api.Project{ID: "proj-7", Title: "Old", Description: "old desc", Tags: []string{"go"}})
	form := e.Form()
	form.Title = "New"
	e.SetForm(form)
	require.NoError(t, e.Submit(context.Background()))

	assert.Equal(t, "proj-7", gotID)
	require.NotNil(t, gotPatch.Title)
	assert.Equal(t, "New", *gotPatch.Title)
	require.NotNil(t, gotPatch.Tags)
	assert.Equal(t, []string{"go"}, *gotPatch.Tags)
	assert.Equal(t, 1, reloads)
	assert.Equal(t, ModeIdle, e.Mode())
}

func TestProjectEditor_SubmitStoreFailureKeepsBuffer(t *testing.T) {
	storeErr := errors.New("store refused")
	store := &mockProjectStore{
		CreateProjectFunc: func(ctx context.Context, form api.ProjectForm) (*api.Project, error) {
			return nil, storeErr
		},
	}
	reloads := 0
	e := NewProjectEditor(store, countingReload(&reloads), logger.NewNop())

	e.Open()
	e.SetForm(api.ProjectForm{Title: "Folio", Description: "a portfolio"})
	err := e.Submit(context.Background())

	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 0, reloads)
	assert.Equal(t, ModeCreate, e.Mode())
	assert.Equal(t, "Folio", e.Form().Title)
}

func TestProjectEditor_SubmitIdleIsNoOp(t *testing.T) {
	store := &mockProjectStore{}
	reloads := 0
	e := NewProjectEditor(store, countingReload(&reloads), logger.NewNop())

	require.NoError(t, e.Submit(context.Background()))

	assert.Equal(t, 0, store.createCalls)
	assert.Equal(t, 0, store.updateCalls)
	assert.Equal(t, 0, reloads)
}

func TestProjectEditor_CancelDiscardsBuffer(t *testing.T) {
	store := &mockProjectStore{}
	e := NewProjectEditor(store, countingReload(new(int)), logger.NewNop())

	e.OpenEdit(api.Project{ID: "proj-1", Title: "Folio", Description: "desc"})
	e.Cancel()

	assert.Equal(t, ModeIdle, e.Mode())
	assert.Equal(t, api.ProjectForm{}, e.Form())
	assert.Equal(t, 0, store.createCalls)
	assert.Equal(t, 0, store.updateCalls)
}

func TestProjectEditor_DeleteReloads(t *testing.T) {
	store := &mockProjectStore{
		DeleteProjectFunc: func(ctx context.Context, id string) error {
			assert.Equal(t, "proj-9", id)
			return nil
		},
	}
	reloads := 0
	e := NewProjectEditor(store, countingReload(&reloads), logger.NewNop())

	require.NoError(t, e.Delete(context.Background(), "proj-9"))

	assert.Equal(t, 1, store.deleteCalls)
	assert.Equal(t, 1, reloads)
}

func TestProjectEditor_DeleteFailureSkipsReload(t *testing.T) {
	deleteErr := errors.New("gone wrong")
	store := &mockProjectStore{
		DeleteProjectFunc: func(ctx context.Context, id string) error {
			return deleteErr
		},
	}
	reloads := 0
	e := NewProjectEditor(store, countingReload(&reloads), logger.NewNop())

	err := e.Delete(context.Background(), "proj-9")

	assert.ErrorIs(t, err, deleteErr)
	assert.Equal(t, 0, reloads)
}

package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntmai/folio-api/adapters/event"
	"github.com/ntmai/folio-api/internal/domain/project"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type mockProjectRepo struct {
	SaveFunc        func(ctx context.Context, p *project.Project) error
	UpdateFunc      func(ctx context.Context, p *project.Project) error
	DeleteFunc      func(ctx context.Context, id, ownerID uuid.UUID) error
	FindByIDFunc    func(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error)

	saveCalls int
}

func (m *mockProjectRepo) Save(ctx context.Context, p *project.Project) error {
	m.saveCalls++
	return m.SaveFunc(ctx, p)
}
func (m *mockProjectRepo) Update(ctx context.Context, p *project.Project) error {
	return m.UpdateFunc(ctx, p)
}
func (m *mockProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return m.DeleteFunc(ctx, id, ownerID)
}
func (m *mockProjectRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return m.FindByIDFunc(ctx, id, ownerID)
}
func (m *mockProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return m.ListByOwnerFunc(ctx, ownerID)
}

type capturingPublisher struct {
	events chan event.ProfileEventPayload
}

func newCapturingPublisher() *capturingPublisher {
	return &capturingPublisher{events: make(chan event.ProfileEventPayload, 8)}
}

func (p *capturingPublisher) PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error {
	p.events <- payload
	return nil
}

func (p *capturingPublisher) await(t *testing.T) event.ProfileEventPayload {
	t.Helper()
	select {
	case e := <-p.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
		return event.ProfileEventPayload{}
	}
}

func TestCreateProject_Success(t *testing.T) {
	ownerID := uuid.New()
	var saved *project.Project
	repo := &mockProjectRepo{
		SaveFunc: func(ctx context.Context, p *project.Project) error {
			saved = p
			return nil
		},
	}
	pub := newCapturingPublisher()
	uc := NewCreateProjectUseCase(repo, pub, logger.NewNop())

	out, err := uc.Execute(context.Background(), CreateProjectInput{
		OwnerID:     ownerID,
		Title:       "Folio",
		Description: "a portfolio",
		Tags:        []string{" go ", "go", "", "grpc"},
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, ownerID, saved.OwnerID)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, []string{"go", "grpc"}, saved.Tags, "tags trimmed and deduplicated")
	assert.Equal(t, saved, out.Project)

	published := pub.await(t)
	assert.Equal(t, event.ProfileEventTypeProjectCreated, published.EventType)
	assert.Equal(t, saved.ID, published.EntityID)
}

func TestCreateProject_ValidationFailureSkipsStore(t *testing.T) {
	repo := &mockProjectRepo{
		SaveFunc: func(ctx context.Context, p *project.Project) error { return nil },
	}
	uc := NewCreateProjectUseCase(repo, newCapturingPublisher(), logger.NewNop())

	out, err := uc.Execute(context.Background(), CreateProjectInput{
		OwnerID: uuid.New(),
		Title:   "",
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Nil(t, out)
	assert.Equal(t, 0, repo.saveCalls)
}

func TestUpdateProject_PartialOverlay(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()
	stored := &project.Project{
		ID:          projectID,
		OwnerID:     ownerID,
		Title:       "Old title",
		Link:        "https://old.example.com",
		Description: "old desc",
		Tags:        []string{"go"},
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
	var updated *project.Project
	repo := &mockProjectRepo{
		FindByIDFunc: func(ctx context.Context, id, owner uuid.UUID) (*project.Project, error) {
			assert.Equal(t, projectID, id)
			assert.Equal(t, ownerID, owner)
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, p *project.Project) error {
			updated = p
			return nil
		},
	}
	uc := NewUpdateProjectUseCase(repo, newCapturingPublisher(), logger.NewNop())

	newTitle := "New title"
	out, err := uc.Execute(context.Background(), UpdateProjectInput{
		ProjectID: projectID,
		OwnerID:   ownerID,
		Title:     &newTitle,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "https://old.example.com", updated.Link, "unset fields stay untouched")
	assert.Equal(t, "old desc", updated.Description)
	assert.Equal(t, []string{"go"}, updated.Tags)
	assert.Equal(t, updated, out.Project)
}

func TestUpdateProject_TagsReplacedWholesale(t *testing.T) {
	ownerID := uuid.New()
	stored := &project.Project{
		ID: uuid.New(), OwnerID: ownerID,
		Title: "Folio", Description: "desc", Tags: []string{"go", "grpc"},
	}
	repo := &mockProjectRepo{
		FindByIDFunc: func(ctx context.Context, id, owner uuid.UUID) (*project.Project, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, p *project.Project) error { return nil },
	}
	uc := NewUpdateProjectUseCase(repo, newCapturingPublisher(), logger.NewNop())

	newTags := []string{" kafka ", "kafka"}
	out, err := uc.Execute(context.Background(), UpdateProjectInput{
		ProjectID: stored.ID,
		OwnerID:   ownerID,
		Tags:      &newTags,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"kafka"}, out.Project.Tags)
}

func TestUpdateProject_NotFoundPropagates(t *testing.T) {
	repo := &mockProjectRepo{
		FindByIDFunc: func(ctx context.Context, id, owner uuid.UUID) (*project.Project, error) {
			return nil, apperror.NewNotFound("project", id.String())
		},
	}
	uc := NewUpdateProjectUseCase(repo, newCapturingPublisher(), logger.NewNop())

	out, err := uc.Execute(context.Background(), UpdateProjectInput{
		ProjectID: uuid.New(),
		OwnerID:   uuid.New(),
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, out)
}

func TestDeleteProject_Success(t *testing.T) {
	projectID := uuid.New()
	ownerID := uuid.New()
	repo := &mockProjectRepo{
		DeleteFunc: func(ctx context.Context, id, owner uuid.UUID) error {
			assert.Equal(t, projectID, id)
			assert.Equal(t, ownerID, owner)
			return nil
		},
	}
	pub := newCapturingPublisher()
	uc := NewDeleteProjectUseCase(repo, pub, logger.NewNop())

	require.NoError(t, uc.Execute(context.Background(), DeleteProjectInput{ProjectID: projectID, OwnerID: ownerID}))

	published := pub.await(t)
	assert.Equal(t, event.ProfileEventTypeProjectDeleted, published.EventType)
	assert.Equal(t, projectID, published.EntityID)
}

func TestDeleteProject_MissingRowFails(t *testing.T) {
	repo := &mockProjectRepo{
		DeleteFunc: func(ctx context.Context, id, owner uuid.UUID) error {
			return apperror.NewNotFound("project", id.String())
		},
	}
	pub := newCapturingPublisher()
	uc := NewDeleteProjectUseCase(repo, pub, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteProjectInput{ProjectID: uuid.New(), OwnerID: uuid.New()})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Empty(t, pub.events)
}

func TestListProjects_PassesThrough(t *testing.T) {
	ownerID := uuid.New()
	listErr := errors.New("list failed")
	repo := &mockProjectRepo{
		ListByOwnerFunc: func(ctx context.Context, owner uuid.UUID) ([]*project.Project, error) {
			return nil, listErr
		},
	}
	uc := NewListProjectsUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), ListProjectsInput{OwnerID: ownerID})

	assert.ErrorIs(t, err, listErr)
	assert.Nil(t, out)
}

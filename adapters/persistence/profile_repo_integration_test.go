package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ntmai/folio-api/internal/domain/experience"
	"github.com/ntmai/folio-api/internal/domain/profile"
	"github.com/ntmai/folio-api/internal/domain/project"
	"github.com/ntmai/folio-api/internal/domain/user"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger

	profileRepo    profile.Repository
	projectRepo    project.Repository
	experienceRepo experience.Repository
	userRepo       user.Repository

	testOwner *user.User
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.testLogger = logger.NewNop()

	s.profileRepo = NewPostgresProfileRepo(s.dbPool, s.testLogger)
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
	s.experienceRepo = NewPostgresExperienceRepo(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool)

	s.testOwner = &user.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Save(ctx, s.testOwner); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) Test_UserRepo_DuplicateEmailConflicts() {
	ctx := context.Background()

	dup := &user.User{
		ID:           uuid.New(),
		Email:        s.testOwner.Email,
		PasswordHash: "otherhash",
		CreatedAt:    time.Now().UTC(),
	}
	err := s.userRepo.Save(ctx, dup)

	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *RepoIntegrationTestSuite) Test_ProfileRepo_GetByOwner_NoRowIsNotAnError() {
	ctx := context.Background()

	other := &user.User{ID: uuid.New(), Email: "empty@example.com", PasswordHash: "x", CreatedAt: time.Now().UTC()}
	s.NoError(s.userRepo.Save(ctx, other))

	p, err := s.profileRepo.GetByOwner(ctx, other.ID)

	s.NoError(err)
	s.Nil(p)
}

func (s *RepoIntegrationTestSuite) Test_ProfileRepo_UpsertTwiceKeepsOneRow() {
	ctx := context.Background()

	first, err := s.profileRepo.Upsert(ctx, &profile.Profile{OwnerID: s.testOwner.ID, Bio: "first"})
	s.NoError(err)
	s.NotNil(first)

	second, err := s.profileRepo.Upsert(ctx, &profile.Profile{OwnerID: s.testOwner.ID, Bio: "second"})
	s.NoError(err)
	s.Equal(first.ID, second.ID, "upsert keyed by owner reuses the row")
	s.Equal("second", second.Bio)

	loaded, err := s.profileRepo.GetByOwner(ctx, s.testOwner.ID)
	s.NoError(err)
	s.Equal("second", loaded.Bio)
}

func (s *RepoIntegrationTestSuite) Test_ProjectRepo_SaveAndListWithTags() {
	ctx := context.Background()

	newProject := &project.Project{
		ID:          uuid.New(),
		OwnerID:     s.testOwner.ID,
		Title:       "Folio",
		Link:        "https://example.com",
		Description: "a portfolio",
		Tags:        []string{"go", "postgres"},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	s.NoError(s.projectRepo.Save(ctx, newProject))

	found, err := s.projectRepo.FindByID(ctx, newProject.ID, s.testOwner.ID)
	s.NoError(err)
	s.Equal("Folio", found.Title)
	s.Equal([]string{"go", "postgres"}, found.Tags)

	listed, err := s.projectRepo.ListByOwner(ctx, s.testOwner.ID)
	s.NoError(err)
	s.NotEmpty(listed)
}

func (s *RepoIntegrationTestSuite) Test_ProjectRepo_UpdateMissingRowIsNotFound() {
	ctx := context.Background()

	ghost := &project.Project{
		ID:          uuid.New(),
		OwnerID:     s.testOwner.ID,
		Title:       "Ghost",
		Description: "never saved",
		Tags:        []string{},
		UpdatedAt:   time.Now().UTC(),
	}
	err := s.projectRepo.Update(ctx, ghost)

	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_ProjectRepo_DeleteScopedToOwner() {
	ctx := context.Background()

	p := &project.Project{
		ID:          uuid.New(),
		OwnerID:     s.testOwner.ID,
		Title:       "To delete",
		Description: "desc",
		Tags:        []string{},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	s.NoError(s.projectRepo.Save(ctx, p))

	err := s.projectRepo.Delete(ctx, p.ID, uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound, "another owner's id must not reach the row")

	s.NoError(s.projectRepo.Delete(ctx, p.ID, s.testOwner.ID))

	_, err = s.projectRepo.FindByID(ctx, p.ID, s.testOwner.ID)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_ExperienceRepo_NullEndDateRoundTrip() {
	ctx := context.Background()

	current := &experience.Experience{
		ID:        uuid.New(),
		OwnerID:   s.testOwner.ID,
		Company:   "Acme",
		Role:      "Engineer",
		StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   nil,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.experienceRepo.Save(ctx, current))

	found, err := s.experienceRepo.FindByID(ctx, current.ID, s.testOwner.ID)
	s.NoError(err)
	s.Nil(found.EndDate, "open-ended role stays open-ended")
}

func (s *RepoIntegrationTestSuite) Test_ExperienceRepo_ListOrderedByStartDateDesc() {
	ctx := context.Background()

	owner := &user.User{ID: uuid.New(), Email: "ordering@example.com", PasswordHash: "x", CreatedAt: time.Now().UTC()}
	s.NoError(s.userRepo.Save(ctx, owner))

	older := &experience.Experience{
		ID: uuid.New(), OwnerID: owner.ID, Company: "Acme", Role: "Junior",
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	newer := &experience.Experience{
		ID: uuid.New(), OwnerID: owner.ID, Company: "Acme", Role: "Senior",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.experienceRepo.Save(ctx, older))
	s.NoError(s.experienceRepo.Save(ctx, newer))

	listed, err := s.experienceRepo.ListByOwner(ctx, owner.ID)
	s.NoError(err)
	s.Len(listed, 2)
	s.Equal(newer.ID, listed[0].ID)
	s.Equal(older.ID, listed[1].ID)
}

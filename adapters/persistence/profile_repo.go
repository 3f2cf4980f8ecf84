package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ntmai/folio-api/internal/domain/profile"
	"github.com/ntmai/folio-api/pkg/apperror"
	"github.com/ntmai/folio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT id, owner_id, bio, created_at, updated_at
		FROM profiles
		WHERE owner_id = $1
	`
	p := &profile.Profile{}

	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Bio,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		// No row is a valid empty result, not an error.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	query := `
		INSERT INTO profiles (id, owner_id, bio, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			updated_at = NOW()
		RETURNING id, owner_id, bio, created_at, updated_at
	`
	persisted := &profile.Profile{}
	err := r.db.QueryRow(ctx, query, uuid.New(), p.OwnerID, p.Bio).Scan(
		&persisted.ID,
		&persisted.OwnerID,
		&persisted.Bio,
		&persisted.CreatedAt,
		&persisted.UpdatedAt,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to upsert profile", err)
	}
	return persisted, nil
}

package auth

import (
	"context"
	"time"

	"github.com/ntmai/folio-api/adapters/persistence"
	"github.com/ntmai/folio-api/pkg/logger"
)

type LogoutUseCase struct {
	tokenStore persistence.RevokedTokenStore
	logger     logger.Logger
}

func NewLogoutUseCase(store persistence.RevokedTokenStore, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{
		tokenStore: store,
		logger:     log,
	}
}

type LogoutInput struct {
	TokenID   string
	ExpiresAt time.Time
}

// Execute denylists the token until its natural expiry. Subsequent requests
// carrying the same token are rejected by the auth middleware.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	ttl := time.Until(input.ExpiresAt)
	return uc.tokenStore.Revoke(ctx, input.TokenID, ttl)
}

package services

import (
	"context"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// Issue signs a new access/refresh pair for an active user and stores the refresh token,
	// replacing any previous one.
	Issue(ctx context.Context, userID string) (*domain.TokenPair, error)

	// VerifyAccess checks signature, issuer and expiry of an access token.
	VerifyAccess(ctx context.Context, accessToken string) (*domain.AccessClaims, error)

	// Refresh validates a refresh token against the stored one and rotates both tokens.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)

	// Revoke clears the stored refresh token so the current session cannot be refreshed.
	Revoke(ctx context.Context, userID string) error
}

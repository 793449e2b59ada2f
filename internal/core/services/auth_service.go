package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/platform/config"
	"github.com/SscSPs/slt_feedback_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenService implements the TokenSvcFacade for handling JWT access and refresh tokens.
// Access tokens are stateless; the digest of the one live refresh token is kept on the user row.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, options ...Option) portssvc.TokenSvcFacade {
	svc := &tokenService{cfg: cfg, userRepo: userRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) Issue(ctx context.Context, userID string) (*domain.TokenPair, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to load user for token issue: %w", err)
	}

	now := s.Now()
	accessExpiry := now.Add(s.cfg.JWTExpiryDuration)
	refreshExpiry := now.Add(s.cfg.RefreshTokenExpiryDuration)

	accessToken, err := utils.SignJWT(domain.AccessClaims{
		Email:     user.Email,
		TokenType: domain.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
		},
	}, s.cfg.JWTSecret)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, apperrors.NewInternalError("Failed to generate tokens", err)
	}

	refreshToken, err := utils.SignJWT(domain.RefreshClaims{
		TokenType: domain.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.UserID,
			Issuer:    s.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
		},
	}, s.cfg.RefreshTokenSecret)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign refresh token", slog.String("user_id", user.UserID))
		return nil, apperrors.NewInternalError("Failed to generate tokens", err)
	}

	digest := utils.HashRefreshToken(refreshToken)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, &digest, now); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiry,
	}, nil
}

func (s *tokenService) VerifyAccess(ctx context.Context, accessToken string) (*domain.AccessClaims, error) {
	claims := &domain.AccessClaims{}
	if err := utils.ParseAndValidateJWT(accessToken, s.cfg.JWTSecret, s.cfg.JWTIssuer, claims); err != nil {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, utils.DescribeJWTError(err), fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err))
	}
	if claims.Subject == "" || claims.TokenType != domain.TokenTypeAccess {
		return nil, apperrors.NewUnauthorizedError("Invalid token claims")
	}
	return claims, nil
}

func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized Token")
	}

	claims := &domain.RefreshClaims{}
	if err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret, s.cfg.JWTIssuer, claims); err != nil {
		s.LogInfo(ctx, "Rejected refresh token", slog.String("reason", err.Error()))
		return nil, apperrors.NewUnauthorizedError("Unauthorized Token")
	}
	if claims.TokenType != domain.TokenTypeRefresh {
		s.LogInfo(ctx, "Rejected refresh token", slog.String("reason", "wrong token type"))
		return nil, apperrors.NewUnauthorizedError("Unauthorized Token")
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unauthorized Token")
		}
		return nil, fmt.Errorf("failed to load user for refresh: %w", err)
	}

	if user.RefreshTokenHash == nil || !utils.CompareRefreshTokenHash(refreshToken, *user.RefreshTokenHash) {
		s.LogInfo(ctx, "Refresh token does not match stored token", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("Unauthorized Token")
	}

	return s.Issue(ctx, user.UserID)
}

func (s *tokenService) Revoke(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil, s.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found")
		}
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

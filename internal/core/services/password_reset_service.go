package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/utils"
)

const (
	resetCodeDigits  = 6
	resetMailSubject = "Password Reset Code - SLT"
)

type passwordResetService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	mailer     portssvc.Mailer
	codeTTL    time.Duration
	bcryptCost int
}

func NewPasswordResetService(userRepo portsrepo.UserRepositoryFacade, mailer portssvc.Mailer, codeTTL time.Duration, bcryptCost int, options ...Option) portssvc.PasswordResetSvc {
	svc := &passwordResetService{
		userRepo:   userRepo,
		mailer:     mailer,
		codeTTL:    codeTTL,
		bcryptCost: bcryptCost,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.PasswordResetSvc = (*passwordResetService)(nil)

// ResetCodeMessage builds the email carrying a reset code.
func ResetCodeMessage(to, code string, ttl time.Duration) domain.MailMessage {
	return domain.MailMessage{
		To:      to,
		Subject: resetMailSubject,
		Body:    fmt.Sprintf("Your password reset code is %s. It will expire in %d minutes.", code, int(ttl.Minutes())),
	}
}

// SendResetCode stores the code before mailing it; a failed send leaves the stored code in place.
func (s *passwordResetService) SendResetCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperrors.NewValidationError("Email is required")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found")
		}
		return fmt.Errorf("failed to find user for reset: %w", err)
	}

	code, err := utils.GenerateNumericCode(resetCodeDigits)
	if err != nil {
		return apperrors.NewInternalError("Failed to generate reset code", err)
	}

	if err := s.userRepo.SetResetCode(ctx, user.UserID, code, s.Now().Add(s.codeTTL)); err != nil {
		s.LogError(ctx, err, "Failed to store reset code", slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if err := s.mailer.Send(ctx, ResetCodeMessage(user.Email, code, s.codeTTL)); err != nil {
		s.LogError(ctx, err, "Failed to send reset code email", slog.String("user_id", user.UserID))
		return apperrors.NewInternalError("Failed to send email", err)
	}

	s.LogInfo(ctx, "Reset code sent", slog.String("user_id", user.UserID))
	return nil
}

func (s *passwordResetService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	email := normalizeEmail(req.Email)
	code := strings.TrimSpace(req.Code)
	if email == "" || code == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("Email, code, and new password are required")
	}

	invalid := apperrors.NewValidationError("Invalid or expired reset code")

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return invalid
		}
		return fmt.Errorf("failed to find user for reset: %w", err)
	}

	if !user.ResetCodeValidAt(code, s.Now()) {
		return invalid
	}

	hash, err := utils.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError("Failed to reset password", err)
	}

	if err := s.userRepo.ResetPassword(ctx, user.UserID, hash, s.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return invalid
		}
		s.LogError(ctx, err, "Failed to reset password", slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to reset password: %w", err)
	}

	s.LogInfo(ctx, "Password reset", slog.String("user_id", user.UserID))
	return nil
}

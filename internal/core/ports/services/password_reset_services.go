package services

import (
	"context"

	"github.com/SscSPs/slt_feedback_app/internal/dto"
)

// PasswordResetSvc drives the emailed reset-code flow.
type PasswordResetSvc interface {
	// SendResetCode stores a fresh code on the user and emails it.
	SendResetCode(ctx context.Context, email string) error

	// ResetPassword checks the code and sets the new password.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

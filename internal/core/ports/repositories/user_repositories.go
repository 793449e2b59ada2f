package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
)

// UserReader defines read operations for user data. Soft-deleted users are never returned.
type UserReader interface {
	// FindUserByID retrieves an active user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves an active user by email, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a page of active non-admin users, newest first.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// CountUsers counts active non-admin users.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate if the email is taken by an active user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates name, password hash and roles of an active user.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserCredentialManager defines writes to the token and reset-code fields of a user.
type UserCredentialManager interface {
	// UpdateRefreshToken overwrites the stored refresh token digest. A nil hash clears it.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash *string, updatedAt time.Time) error

	// SetResetCode stores a password reset code and its expiry.
	SetResetCode(ctx context.Context, userID string, code string, expiresAt time.Time) error

	// ResetPassword sets a new password hash and clears the reset code fields.
	ResetPassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserCredentialManager
	UserLifecycleManager
}

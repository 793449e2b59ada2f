package services

import (
	"context"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/utils/pagination"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves an active user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a page of active non-admin users along with their total count.
	ListUsers(ctx context.Context, page pagination.Page) ([]domain.User, int64, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with the default role.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateProfile applies a self-service update. At least one field must change.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateUser applies an administrative update. Empty fields are ignored.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// EnsureAdmin makes sure an active user with the given email exists and holds the Admin role.
	EnsureAdmin(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser marks a user as deleted (soft delete).
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/utils"
	"github.com/SscSPs/slt_feedback_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	bcryptCost int
}

// NewUserService creates a user service. bcryptCost below bcrypt.MinCost falls back to the default cost.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, bcryptCost int, options ...Option) portssvc.UserSvcFacade {
	svc := &userService{userRepo: userRepo, bcryptCost: bcryptCost}
	svc.apply(options)
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	return s.createUser(ctx, req, []domain.Role{domain.RoleUser})
}

func (s *userService) createUser(ctx context.Context, req dto.RegisterUserRequest, roles []domain.Role) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := normalizeEmail(req.Email)
	if fullName == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.NewValidationError("All fields are required")
	}

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.NewConflictError("User already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user")
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalError("User creation failed", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// A concurrent registration can win the race past the lookup above.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("User already exists")
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to find user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Password mismatch on login", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("Invalid password")
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if uuid.Validate(userID) != nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page pagination.Page) ([]domain.User, int64, error) {
	users, err := s.userRepo.FindUsers(ctx, page.Limit, page.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	total, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count users")
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	return users, total, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	fullName, password := valueOrEmpty(req.FullName), valueOrEmpty(req.Password)
	if strings.TrimSpace(fullName) == "" && password == "" {
		return nil, apperrors.NewValidationError("Please provide fullname or password to update")
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed, err := s.applyUpdate(user, fullName, password)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, apperrors.NewValidationError("No changes detected")
	}

	if err := s.saveUpdate(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed, err := s.applyUpdate(user, valueOrEmpty(req.FullName), valueOrEmpty(req.Password))
	if err != nil {
		return nil, err
	}
	if !changed {
		return user, nil
	}

	if err := s.saveUpdate(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// applyUpdate mutates user with the non-empty fields and reports whether anything changed.
// A supplied password always counts as a change.
func (s *userService) applyUpdate(user *domain.User, fullName, password string) (bool, error) {
	changed := false
	if name := strings.TrimSpace(fullName); name != "" && name != user.FullName {
		user.FullName = name
		changed = true
	}
	if password != "" {
		hash, err := utils.HashPassword(password, s.bcryptCost)
		if err != nil {
			return false, apperrors.NewInternalError("Failed to update user", err)
		}
		user.PasswordHash = hash
		changed = true
	}
	return changed, nil
}

func (s *userService) saveUpdate(ctx context.Context, user *domain.User) error {
	user.LastUpdatedAt = s.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found")
		}
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if uuid.Validate(userID) != nil {
		return apperrors.NewNotFoundError("User not found or already deleted")
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, s.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found or already deleted")
		}
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.LogInfo(ctx, "User soft-deleted", slog.String("user_id", userID))
	return nil
}

func (s *userService) EnsureAdmin(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(req.Email))
	switch {
	case err == nil:
		if existing.IsAdmin() {
			return existing, nil
		}
		existing.Roles = append(existing.Roles, domain.RoleAdmin)
		if err := s.saveUpdate(ctx, existing); err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Granted admin role to existing user", slog.String("user_id", existing.UserID))
		return existing, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return s.createUser(ctx, req, []domain.Role{domain.RoleUser, domain.RoleAdmin})
	default:
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}
}

func valueOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

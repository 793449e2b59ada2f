package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	"github.com/SscSPs/slt_feedback_app/internal/models"
	"github.com/SscSPs/slt_feedback_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DBTX) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const (
	selectUserFields = `
		user_id, fullname, email, password_hash, roles,
		refresh_token_hash, reset_code, reset_code_expires_at,
		created_at, updated_at, deleted_at
	`

	// nonAdminFilter restricts to active users without the Admin role.
	nonAdminFilter = `deleted_at IS NULL AND NOT ('Admin' = ANY(roles))`

	insertUserQuery = `
		INSERT INTO users (user_id, fullname, email, password_hash, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	findUserByIDQuery = `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	findUserByEmailQuery = `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL
	`

	findUsersQuery = `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE ` + nonAdminFilter + `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	countUsersQuery = `SELECT COUNT(*) FROM users WHERE ` + nonAdminFilter

	updateUserQuery = `
		UPDATE users
		SET fullname = $1, password_hash = $2, roles = $3, updated_at = $4
		WHERE user_id = $5 AND deleted_at IS NULL
	`

	updateRefreshTokenQuery = `
		UPDATE users
		SET refresh_token_hash = $1, updated_at = $2
		WHERE user_id = $3 AND deleted_at IS NULL
	`

	setResetCodeQuery = `
		UPDATE users
		SET reset_code = $1, reset_code_expires_at = $2
		WHERE user_id = $3 AND deleted_at IS NULL
	`

	resetPasswordQuery = `
		UPDATE users
		SET password_hash = $1, reset_code = NULL, reset_code_expires_at = NULL, updated_at = $2
		WHERE user_id = $3 AND deleted_at IS NULL
	`

	markUserDeletedQuery = `
		UPDATE users
		SET deleted_at = $1, updated_at = $1, refresh_token_hash = NULL
		WHERE user_id = $2 AND deleted_at IS NULL
	`
)

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.FullName,
		&m.Email,
		&m.PasswordHash,
		&m.Roles,
		&m.RefreshTokenHash,
		&m.ResetCode,
		&m.ResetCodeExpiresAt,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.DB.Exec(ctx, insertUserQuery,
		m.UserID,
		m.FullName,
		m.Email,
		m.PasswordHash,
		m.Roles,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return r.wrapWriteError("failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	m, err := scanUser(r.DB.QueryRow(ctx, findUserByIDQuery, userID))
	if err != nil {
		return nil, r.wrapReadError(fmt.Sprintf("failed to find user by ID %s", userID), err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m, err := scanUser(r.DB.QueryRow(ctx, findUserByEmailQuery, email))
	if err != nil {
		return nil, r.wrapReadError("failed to find user by email", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	rows, err := r.DB.Query(ctx, findUsersQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		modelUsers = append(modelUsers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "failed to count users", countUsersQuery)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	cmdTag, err := r.DB.Exec(ctx, updateUserQuery,
		m.FullName,
		m.PasswordHash,
		m.Roles,
		m.LastUpdatedAt,
		m.UserID,
	)
	if err != nil {
		return r.wrapWriteError("failed to execute update user query", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash *string, updatedAt time.Time) error {
	cmdTag, err := r.DB.Exec(ctx, updateRefreshTokenQuery, refreshTokenHash, updatedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) SetResetCode(ctx context.Context, userID string, code string, expiresAt time.Time) error {
	cmdTag, err := r.DB.Exec(ctx, setResetCodeQuery, code, expiresAt, userID)
	if err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ResetPassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	cmdTag, err := r.DB.Exec(ctx, resetPasswordQuery, passwordHash, updatedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	cmdTag, err := r.DB.Exec(ctx, markUserDeletedQuery, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

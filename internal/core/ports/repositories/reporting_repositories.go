package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only queries behind the admin dashboard.
type ReportingRepository interface {
	// CountActiveNonAdminUsers counts users that are neither deleted nor admins.
	CountActiveNonAdminUsers(ctx context.Context) (int64, error)

	// CountSoftDeletedUsers counts every soft-deleted user regardless of role.
	CountSoftDeletedUsers(ctx context.Context) (int64, error)

	// AverageStars returns the unrounded mean of all feedback stars, zero when there is none.
	AverageStars(ctx context.Context) (decimal.Decimal, error)

	// FindRecentUsers returns the newest active non-admin users.
	FindRecentUsers(ctx context.Context, limit int) ([]domain.RecentUser, error)

	// FindUserCreationTimes returns created_at of every active user created at or after since.
	FindUserCreationTimes(ctx context.Context, since time.Time) ([]time.Time, error)
}

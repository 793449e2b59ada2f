package services

import (
	"context"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
)

// ReportingService defines the admin dashboard aggregates.
type ReportingService interface {
	// Counts returns active non-admin users, the average rating and soft-deleted users.
	Counts(ctx context.Context) (*domain.DashboardCounts, error)

	// RecentUsers returns the five newest active non-admin users.
	RecentUsers(ctx context.Context) ([]domain.RecentUser, error)

	// Last7DaysUsers returns daily user-creation counts for the last seven local days, oldest first.
	Last7DaysUsers(ctx context.Context) ([]domain.DailyCount, error)

	// Last4WeeksUsers returns ISO-week user-creation counts for the last 28 days, oldest first.
	Last4WeeksUsers(ctx context.Context) ([]domain.WeeklyCount, error)
}

package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db DBTX) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

const (
	countSoftDeletedUsersQuery = `SELECT COUNT(*) FROM users WHERE deleted_at IS NOT NULL`

	// AVG over an empty set is NULL; text keeps full numeric precision for decimal parsing.
	averageStarsQuery = `SELECT COALESCE(AVG(stars), 0)::text FROM feedbacks`

	recentUsersQuery = `
		SELECT user_id, fullname, email, created_at
		FROM users
		WHERE ` + nonAdminFilter + `
		ORDER BY created_at DESC
		LIMIT $1
	`

	userCreationTimesQuery = `
		SELECT created_at
		FROM users
		WHERE deleted_at IS NULL AND created_at >= $1
		ORDER BY created_at
	`
)

func (r *reportingRepository) CountActiveNonAdminUsers(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "error counting active users", countUsersQuery)
}

func (r *reportingRepository) CountSoftDeletedUsers(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "error counting deleted users", countSoftDeletedUsersQuery)
}

func (r *reportingRepository) AverageStars(ctx context.Context) (decimal.Decimal, error) {
	var raw string
	if err := r.DB.QueryRow(ctx, averageStarsQuery).Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("error querying average stars: %w", err)
	}
	avg, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing average stars %q: %w", raw, err)
	}
	return avg, nil
}

func (r *reportingRepository) FindRecentUsers(ctx context.Context, limit int) ([]domain.RecentUser, error) {
	rows, err := r.DB.Query(ctx, recentUsersQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent users: %w", err)
	}
	defer rows.Close()

	result := []domain.RecentUser{}
	for rows.Next() {
		var u domain.RecentUser
		if err := rows.Scan(&u.UserID, &u.FullName, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning recent user row: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent user rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) FindUserCreationTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	rows, err := r.DB.Query(ctx, userCreationTimesQuery, since)
	if err != nil {
		return nil, fmt.Errorf("error querying user creation times: %w", err)
	}
	defer rows.Close()

	result := []time.Time{}
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("error scanning user creation time: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user creation times: %w", err)
	}
	return result, nil
}

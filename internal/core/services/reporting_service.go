package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
)

const (
	recentUsersLimit = 5
	dailyWindowDays  = 7
	weeklyWindowDays = 28
	dateLayout       = "2006-01-02"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...Option) portssvc.ReportingService {
	svc := &reportingService{reportingRepo: repo}
	svc.apply(options)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) Counts(ctx context.Context) (*domain.DashboardCounts, error) {
	total, err := s.reportingRepo.CountActiveNonAdminUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count active users")
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	avg, err := s.reportingRepo.AverageStars(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute average rating")
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}
	deleted, err := s.reportingRepo.CountSoftDeletedUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count deleted users")
		return nil, fmt.Errorf("failed to count deleted users: %w", err)
	}

	return &domain.DashboardCounts{
		TotalUsers:       total,
		AverageRating:    avg.Round(1).InexactFloat64(),
		SoftDeletedUsers: deleted,
	}, nil
}

func (s *reportingService) RecentUsers(ctx context.Context) ([]domain.RecentUser, error) {
	users, err := s.reportingRepo.FindRecentUsers(ctx, recentUsersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent users: %w", err)
	}
	return users, nil
}

// Last7DaysUsers buckets by server-local calendar date; days without signups are reported as zero.
func (s *reportingService) Last7DaysUsers(ctx context.Context) ([]domain.DailyCount, error) {
	now := s.Now()
	since := startOfDay(now).AddDate(0, 0, -(dailyWindowDays - 1))

	times, err := s.reportingRepo.FindUserCreationTimes(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user creation times: %w", err)
	}

	counts := make(map[string]int64, dailyWindowDays)
	for _, t := range times {
		counts[t.In(now.Location()).Format(dateLayout)]++
	}

	result := make([]domain.DailyCount, 0, dailyWindowDays)
	for i := 0; i < dailyWindowDays; i++ {
		date := since.AddDate(0, 0, i).Format(dateLayout)
		result = append(result, domain.DailyCount{Date: date, Count: counts[date]})
	}
	return result, nil
}

// Last4WeeksUsers buckets by ISO week over the trailing 28 local days, oldest week first.
// The window usually touches five ISO weeks; every touched week is reported.
func (s *reportingService) Last4WeeksUsers(ctx context.Context) ([]domain.WeeklyCount, error) {
	now := s.Now()
	since := startOfDay(now).AddDate(0, 0, -(weeklyWindowDays - 1))

	times, err := s.reportingRepo.FindUserCreationTimes(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user creation times: %w", err)
	}

	type isoWeek struct{ year, week int }
	counts := make(map[isoWeek]int64)
	for _, t := range times {
		y, w := t.In(now.Location()).ISOWeek()
		counts[isoWeek{y, w}]++
	}

	result := []domain.WeeklyCount{}
	seen := make(map[isoWeek]bool)
	for i := 0; i < weeklyWindowDays; i++ {
		y, w := since.AddDate(0, 0, i).ISOWeek()
		key := isoWeek{y, w}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, domain.WeeklyCount{Year: y, Week: w, Count: counts[key]})
	}
	return result, nil
}

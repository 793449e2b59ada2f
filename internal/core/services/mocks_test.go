package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash *string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetCode(ctx context.Context, userID string, code string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, code, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) ResetPassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

// --- MockFeedbackRepository ---
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) SaveFeedback(ctx context.Context, feedback domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) ExistsFeedbackBetween(ctx context.Context, userID string, from, to time.Time) (bool, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) ListFeedbacksWithAuthor(ctx context.Context, limit, offset int) ([]domain.FeedbackWithAuthor, error) {
	args := m.Called(ctx, limit, offset)
	var items []domain.FeedbackWithAuthor
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.FeedbackWithAuthor)
	}
	return items, args.Error(1)
}

func (m *MockFeedbackRepository) CountFeedbacks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) CountActiveNonAdminUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountSoftDeletedUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) AverageStars(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) FindRecentUsers(ctx context.Context, limit int) ([]domain.RecentUser, error) {
	args := m.Called(ctx, limit)
	var users []domain.RecentUser
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.RecentUser)
	}
	return users, args.Error(1)
}

func (m *MockReportingRepository) FindUserCreationTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	args := m.Called(ctx, since)
	var times []time.Time
	if args.Get(0) != nil {
		times = args.Get(0).([]time.Time)
	}
	return times, args.Error(1)
}

// --- MockMailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

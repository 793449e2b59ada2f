package middleware

import (
	"context"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/SscSPs/slt_feedback_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(ctx context.Context, userID string) (*domain.TokenPair, error) {
	args := m.Called(ctx, userID)
	var pair *domain.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*domain.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *mockTokenService) VerifyAccess(ctx context.Context, accessToken string) (*domain.AccessClaims, error) {
	args := m.Called(ctx, accessToken)
	var claims *domain.AccessClaims
	if args.Get(0) != nil {
		claims = args.Get(0).(*domain.AccessClaims)
	}
	return claims, args.Error(1)
}

func (m *mockTokenService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	var pair *domain.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*domain.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *mockTokenService) Revoke(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *mockUserReader) ListUsers(ctx context.Context, page pagination.Page) ([]domain.User, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type mockFeedbackReader struct {
	mock.Mock
}

func (m *mockFeedbackReader) HasFeedbackOnDay(ctx context.Context, userID string, t time.Time) (bool, error) {
	args := m.Called(ctx, userID, t)
	return args.Bool(0), args.Error(1)
}

func (m *mockFeedbackReader) ListFeedbacks(ctx context.Context, page pagination.Page) ([]domain.FeedbackWithAuthor, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.FeedbackWithAuthor), args.Get(1).(int64), args.Error(2)
}

package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (s *RoutesTestSuite) TestGetUserCounts() {
	s.reportingSvc.On("Counts", mock.Anything).
		Return(&domain.DashboardCounts{TotalUsers: 3, AverageRating: 3.7, SoftDeletedUsers: 1}, nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodGet, "/api/v1/admin/getUserCounts", nil)))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Dashboard counts fetched", body.Message)
	s.JSONEq(`{"totalUsers":3,"averageRating":3.7,"softDeletedUsers":1}`, string(body.Data))
}

func (s *RoutesTestSuite) TestGetUserCounts_Failure() {
	s.reportingSvc.On("Counts", mock.Anything).Return(nil, errors.New("pg: connection reset")).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodGet, "/api/v1/admin/getUserCounts", nil)))

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Internal Server Error", body.Message)
}

func (s *RoutesTestSuite) TestGetRecentUsers() {
	s.reportingSvc.On("RecentUsers", mock.Anything).Return([]domain.RecentUser{
		{UserID: "user-1", FullName: "Jane Doe", Email: "jane@example.com", CreatedAt: s.now},
	}, nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodGet, "/api/v1/admin/getRecentUsers", nil)))

	s.Equal(http.StatusOK, w.Code)
	var users []domain.RecentUser
	s.Require().NoError(json.Unmarshal(body.Data, &users))
	s.Len(users, 1)
}

func (s *RoutesTestSuite) TestGetLast7DaysUsers() {
	s.reportingSvc.On("Last7DaysUsers", mock.Anything).Return([]domain.DailyCount{
		{Date: "2025-05-13", Count: 0},
		{Date: "2025-05-14", Count: 2},
	}, nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodGet, "/api/v1/admin/getLast7DaysUsers", nil)))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Last 7 days user stats", body.Message)
	s.JSONEq(`[{"date":"2025-05-13","count":0},{"date":"2025-05-14","count":2}]`, string(body.Data))
}

func (s *RoutesTestSuite) TestGetLast4WeeksUsers() {
	s.reportingSvc.On("Last4WeeksUsers", mock.Anything).Return([]domain.WeeklyCount{
		{Year: 2025, Week: 20, Count: 4},
	}, nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodGet, "/api/v1/admin/getLast4WeeksUsers", nil)))

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[{"year":2025,"week":20,"count":4}]`, string(body.Data))
}

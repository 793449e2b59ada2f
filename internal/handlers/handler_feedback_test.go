package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
)

func (s *RoutesTestSuite) TestSubmitFeedback() {
	req := dto.CreateFeedbackRequest{Feedback: "Great service", Stars: 5}
	s.feedbackSvc.On("HasFeedbackOnDay", mock.Anything, "user-1", s.now).Return(false, nil).Once()
	s.feedbackSvc.On("SubmitFeedback", mock.Anything, "user-1", req).Return(&domain.Feedback{
		FeedbackID: "fb-1", UserID: "user-1", Body: "Great service", Stars: 5, CreatedAt: s.now,
	}, nil).Once()

	w, body := s.serve(s.authAs(s.user, request(http.MethodPost, "/api/v1/users/feedback", req)))

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("Feedback submitted successfully", body.Message)
	var fb dto.FeedbackResponse
	s.Require().NoError(json.Unmarshal(body.Data, &fb))
	s.Equal("fb-1", fb.FeedbackID)
	s.Equal("Great service", fb.Feedback)
	s.Equal(5, fb.Stars)
}

func (s *RoutesTestSuite) TestSubmitFeedback_OncePerDay() {
	s.feedbackSvc.On("HasFeedbackOnDay", mock.Anything, "user-1", s.now).Return(true, nil).Once()

	w, body := s.serve(s.authAs(s.user, request(http.MethodPost, "/api/v1/users/feedback",
		dto.CreateFeedbackRequest{Feedback: "again", Stars: 4})))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("You have already submitted feedback today.", body.Message)
}

func (s *RoutesTestSuite) TestSubmitFeedback_StarsOutOfRange() {
	s.feedbackSvc.On("HasFeedbackOnDay", mock.Anything, "user-1", s.now).Return(false, nil).Once()

	w, body := s.serve(s.authAs(s.user, request(http.MethodPost, "/api/v1/users/feedback", `{"feedback":"ok","stars":6}`)))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request", body.Message)
	s.Equal([]string{"stars must be at most 5"}, body.Errors)
}

func (s *RoutesTestSuite) TestSubmitFeedback_RequiresLogin() {
	w, _ := s.serve(request(http.MethodPost, "/api/v1/users/feedback", dto.CreateFeedbackRequest{Feedback: "x", Stars: 3}))

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RoutesTestSuite) TestListFeedbacks() {
	items := []domain.FeedbackWithAuthor{{
		Feedback: domain.Feedback{FeedbackID: "fb-1", UserID: "user-1", Body: "Nice", Stars: 4, CreatedAt: s.now.Add(-time.Hour)},
		Author:   domain.FeedbackAuthor{UserID: "user-1", FullName: "Jane Doe", Email: "jane@example.com"},
	}}
	s.feedbackSvc.On("ListFeedbacks", mock.Anything, pagination.Page{Page: 1, Limit: 10}).Return(items, int64(1), nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodGet, "/api/v1/admin/getAllFeedbacks", nil)))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("All feedbacks fetched", body.Message)
	var resp dto.ListFeedbacksResponse
	s.Require().NoError(json.Unmarshal(body.Data, &resp))
	s.Require().Len(resp.Feedbacks, 1)
	s.Equal("Jane Doe", resp.Feedbacks[0].User.FullName)
	s.Equal(dto.PaginationMeta{Total: 1, Page: 1, Limit: 10, TotalPages: 1}, resp.Pagination)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type feedbackService struct {
	BaseService
	feedbackRepo portsrepo.FeedbackRepositoryFacade
}

func NewFeedbackService(feedbackRepo portsrepo.FeedbackRepositoryFacade, options ...Option) portssvc.FeedbackSvcFacade {
	svc := &feedbackService{feedbackRepo: feedbackRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.FeedbackSvcFacade = (*feedbackService)(nil)

func (s *feedbackService) SubmitFeedback(ctx context.Context, userID string, req dto.CreateFeedbackRequest) (*domain.Feedback, error) {
	body := strings.TrimSpace(req.Feedback)
	if body == "" || req.Stars == 0 {
		return nil, apperrors.NewValidationError("Feedback and star rating are required")
	}
	if req.Stars < domain.MinFeedbackStars || req.Stars > domain.MaxFeedbackStars {
		return nil, apperrors.NewValidationError("Invalid request",
			fmt.Sprintf("stars must be between %d and %d", domain.MinFeedbackStars, domain.MaxFeedbackStars))
	}

	feedback := domain.Feedback{
		FeedbackID: uuid.NewString(),
		UserID:     userID,
		Body:       body,
		Stars:      req.Stars,
		CreatedAt:  s.Now(),
	}
	if err := s.feedbackRepo.SaveFeedback(ctx, feedback); err != nil {
		s.LogError(ctx, err, "Failed to save feedback", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return &feedback, nil
}

func (s *feedbackService) HasFeedbackOnDay(ctx context.Context, userID string, t time.Time) (bool, error) {
	from := startOfDay(t)
	to := from.AddDate(0, 0, 1)
	exists, err := s.feedbackRepo.ExistsFeedbackBetween(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to check daily feedback", slog.String("user_id", userID))
		return false, fmt.Errorf("failed to check daily feedback: %w", err)
	}
	return exists, nil
}

func (s *feedbackService) ListFeedbacks(ctx context.Context, page pagination.Page) ([]domain.FeedbackWithAuthor, int64, error) {
	items, err := s.feedbackRepo.ListFeedbacksWithAuthor(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list feedbacks: %w", err)
	}
	total, err := s.feedbackRepo.CountFeedbacks(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count feedbacks: %w", err)
	}
	return items, total, nil
}

package services

import (
	"context"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/utils/pagination"
)

type FeedbackWriterSvc interface {
	// SubmitFeedback stores feedback for userID.
	SubmitFeedback(ctx context.Context, userID string, req dto.CreateFeedbackRequest) (*domain.Feedback, error)
}

type FeedbackReaderSvc interface {
	// HasFeedbackOnDay reports whether userID already submitted feedback on the local calendar day containing t.
	HasFeedbackOnDay(ctx context.Context, userID string, t time.Time) (bool, error)

	// ListFeedbacks returns a page of feedback with submitters, newest first, and the total count.
	ListFeedbacks(ctx context.Context, page pagination.Page) ([]domain.FeedbackWithAuthor, int64, error)
}

type FeedbackSvcFacade interface {
	FeedbackReaderSvc
	FeedbackWriterSvc
}

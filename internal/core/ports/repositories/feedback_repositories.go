package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
)

// FeedbackWriter persists feedback. Feedback is never updated or deleted.
type FeedbackWriter interface {
	SaveFeedback(ctx context.Context, feedback domain.Feedback) error
}

// FeedbackReader defines read operations for feedback.
type FeedbackReader interface {
	// ExistsFeedbackBetween reports whether the user submitted feedback in [from, to).
	ExistsFeedbackBetween(ctx context.Context, userID string, from, to time.Time) (bool, error)

	// ListFeedbacksWithAuthor returns a page of feedback joined with its submitter, newest first.
	ListFeedbacksWithAuthor(ctx context.Context, limit int, offset int) ([]domain.FeedbackWithAuthor, error)

	// CountFeedbacks counts all feedback entries.
	CountFeedbacks(ctx context.Context) (int64, error)
}

type FeedbackRepositoryFacade interface {
	FeedbackReader
	FeedbackWriter
}

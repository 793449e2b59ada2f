package mapping

import (
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/SscSPs/slt_feedback_app/internal/models"
)

// ToModelFeedback converts a domain Feedback to a model Feedback
func ToModelFeedback(d domain.Feedback) models.Feedback {
	return models.Feedback{
		FeedbackID: d.FeedbackID,
		UserID:     d.UserID,
		Body:       d.Body,
		Stars:      d.Stars,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainFeedback converts a model Feedback to a domain Feedback
func ToDomainFeedback(m models.Feedback) domain.Feedback {
	return domain.Feedback{
		FeedbackID: m.FeedbackID,
		UserID:     m.UserID,
		Body:       m.Body,
		Stars:      m.Stars,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainFeedbackWithAuthorSlice converts joined feedback rows to domain values.
func ToDomainFeedbackWithAuthorSlice(ms []models.FeedbackWithAuthor) []domain.FeedbackWithAuthor {
	ds := make([]domain.FeedbackWithAuthor, len(ms))
	for i, m := range ms {
		ds[i] = domain.FeedbackWithAuthor{
			Feedback: ToDomainFeedback(m.Feedback),
			Author: domain.FeedbackAuthor{
				UserID:   m.UserID,
				FullName: m.AuthorFullName,
				Email:    m.AuthorEmail,
			},
		}
	}
	return ds
}

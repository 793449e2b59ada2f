package dto

import (
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
)

// CreateFeedbackRequest is the body of POST /users/feedback.
// Missing fields are reported by the service; out-of-range stars fail binding.
type CreateFeedbackRequest struct {
	Feedback string `json:"feedback" example:"Great service"`
	Stars    int    `json:"stars" binding:"omitempty,min=1,max=5" example:"5"`
}

type FeedbackResponse struct {
	FeedbackID string    `json:"feedbackID"`
	UserID     string    `json:"userID"`
	Feedback   string    `json:"feedback"`
	Stars      int       `json:"stars"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FeedbackAuthorResponse is the submitter shown next to each feedback entry in admin listings.
type FeedbackAuthorResponse struct {
	UserID   string `json:"userID"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

type FeedbackWithUserResponse struct {
	FeedbackResponse
	User FeedbackAuthorResponse `json:"user"`
}

type ListFeedbacksResponse struct {
	Feedbacks  []FeedbackWithUserResponse `json:"feedbacks"`
	Pagination PaginationMeta             `json:"pagination"`
}

func ToFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID: f.FeedbackID,
		UserID:     f.UserID,
		Feedback:   f.Body,
		Stars:      f.Stars,
		CreatedAt:  f.CreatedAt,
	}
}

// ToListFeedbacksResponse converts joined feedback rows into the admin listing payload.
func ToListFeedbacksResponse(items []domain.FeedbackWithAuthor, meta PaginationMeta) ListFeedbacksResponse {
	out := make([]FeedbackWithUserResponse, len(items))
	for i := range items {
		out[i] = FeedbackWithUserResponse{
			FeedbackResponse: ToFeedbackResponse(&items[i].Feedback),
			User: FeedbackAuthorResponse{
				UserID:   items[i].Author.UserID,
				FullName: items[i].Author.FullName,
				Email:    items[i].Author.Email,
			},
		}
	}
	return ListFeedbacksResponse{Feedbacks: out, Pagination: meta}
}

package domain

import "time"

const (
	MinFeedbackStars = 1
	MaxFeedbackStars = 5
)

// Feedback is a star-rated comment submitted by a user.
type Feedback struct {
	FeedbackID string    `json:"feedbackID"`
	UserID     string    `json:"userID"`
	Body       string    `json:"feedback"`
	Stars      int       `json:"stars"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FeedbackAuthor is the subset of the submitting user shown alongside feedback.
type FeedbackAuthor struct {
	UserID   string `json:"userID"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

// FeedbackWithAuthor joins a feedback entry with its submitter.
type FeedbackWithAuthor struct {
	Feedback
	Author FeedbackAuthor `json:"user"`
}

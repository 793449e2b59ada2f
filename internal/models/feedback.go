package models

import "time"

// Feedback is the row shape of the feedbacks table.
type Feedback struct {
	FeedbackID string    `db:"feedback_id"`
	UserID     string    `db:"user_id"`
	Body       string    `db:"body"`
	Stars      int       `db:"stars"`
	CreatedAt  time.Time `db:"created_at"`
}

// FeedbackWithAuthor is a feedbacks row joined with the submitting user's name and email.
type FeedbackWithAuthor struct {
	Feedback
	AuthorFullName string `db:"fullname"`
	AuthorEmail    string `db:"email"`
}

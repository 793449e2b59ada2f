package services

import (
	"context"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
)

// Mailer delivers outbound email. Implementations may send inline or hand off to a queue.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

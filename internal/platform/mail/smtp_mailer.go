package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/platform/config"
	gomail "github.com/wneessen/go-mail"
)

// SMTPMailer delivers mail synchronously over SMTP with mandatory STARTTLS.
type SMTPMailer struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

var _ portssvc.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.MailConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

func (m *SMTPMailer) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(m.cfg.SMTPPort),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	}
	if m.cfg.SMTPUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.SMTPUsername),
			gomail.WithPassword(m.cfg.SMTPPassword),
		)
	}
	return opts
}

// Send dials the relay for every message; reset codes are rare enough not to pool connections.
func (m *SMTPMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	gm, err := BuildMessage(m.cfg.From, msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.SMTPHost, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, gm); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", m.cfg.SMTPHost, err)
	}
	m.logger.Debug("Mail sent", slog.String("subject", msg.Subject))
	return nil
}

// BuildMessage converts msg into a plain-text go-mail message from the given sender.
func BuildMessage(from string, msg domain.MailMessage) (*gomail.Msg, error) {
	gm := gomail.NewMsg()
	if err := gm.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", from, err)
	}
	if err := gm.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	gm.Subject(msg.Subject)
	gm.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return gm, nil
}

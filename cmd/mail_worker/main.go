package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/platform/config"
	"github.com/SscSPs/slt_feedback_app/internal/platform/mail"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// mail_worker drains the password-reset mail queue and delivers each message over SMTP.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("component", "mail_worker"))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	smtp := mail.NewSMTPMailer(cfg.Mail, logger)
	backoff := initialBackoff

	for ctx.Err() == nil {
		err := consumeOnce(ctx, cfg, smtp, logger)
		if err == nil {
			backoff = initialBackoff
			continue
		}
		logger.Error("Mail consumer stopped, reconnecting",
			slog.String("error", err.Error()),
			slog.Duration("backoff", backoff))

		select {
		case <-ctx.Done():
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
	logger.Info("Mail worker shut down")
}

// consumeOnce holds one broker connection until it drops or ctx ends.
func consumeOnce(ctx context.Context, cfg *config.Config, smtp *mail.SMTPMailer, logger *slog.Logger) error {
	conn, ch, err := mail.DialAMQP(cfg.Mail.AMQPURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Info("Consuming mail queue", slog.String("queue", cfg.Mail.Queue))
	err = mail.NewConsumer(ch, cfg.Mail.Queue, smtp, logger).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

package services

import (
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.Mailer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:          NewUserService(repos.UserRepo, cfg.BcryptCost),
		Token:         NewTokenService(cfg, repos.UserRepo),
		Feedback:      NewFeedbackService(repos.FeedbackRepo),
		Reporting:     NewReportingService(repos.ReportingRepo),
		PasswordReset: NewPasswordResetService(repos.UserRepo, mailer, cfg.ResetCodeTTL, cfg.BcryptCost),
	}
}

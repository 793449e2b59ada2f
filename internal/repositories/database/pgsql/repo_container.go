package pgsql

import (
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto one connection pool.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(db),
		FeedbackRepo:  newPgxFeedbackRepository(db),
		ReportingRepo: newReportingRepository(db),
	}
}

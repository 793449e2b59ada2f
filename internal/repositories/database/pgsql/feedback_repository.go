package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portsrepo "github.com/SscSPs/slt_feedback_app/internal/core/ports/repositories"
	"github.com/SscSPs/slt_feedback_app/internal/models"
	"github.com/SscSPs/slt_feedback_app/internal/utils/mapping"
)

type PgxFeedbackRepository struct {
	BaseRepository
}

func newPgxFeedbackRepository(db DBTX) portsrepo.FeedbackRepositoryFacade {
	return &PgxFeedbackRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.FeedbackRepositoryFacade = (*PgxFeedbackRepository)(nil)

const (
	insertFeedbackQuery = `
		INSERT INTO feedbacks (feedback_id, user_id, body, stars, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	existsFeedbackBetweenQuery = `
		SELECT EXISTS (
			SELECT 1 FROM feedbacks
			WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		)
	`

	listFeedbacksWithAuthorQuery = `
		SELECT f.feedback_id, f.user_id, f.body, f.stars, f.created_at, u.fullname, u.email
		FROM feedbacks f
		JOIN users u ON u.user_id = f.user_id
		ORDER BY f.created_at DESC
		LIMIT $1 OFFSET $2
	`

	countFeedbacksQuery = `SELECT COUNT(*) FROM feedbacks`
)

func (r *PgxFeedbackRepository) SaveFeedback(ctx context.Context, feedback domain.Feedback) error {
	m := mapping.ToModelFeedback(feedback)
	_, err := r.DB.Exec(ctx, insertFeedbackQuery, m.FeedbackID, m.UserID, m.Body, m.Stars, m.CreatedAt)
	if err != nil {
		return r.wrapWriteError("failed to save feedback", err)
	}
	return nil
}

func (r *PgxFeedbackRepository) ExistsFeedbackBetween(ctx context.Context, userID string, from, to time.Time) (bool, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, existsFeedbackBetweenQuery, userID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check feedback for user %s: %w", userID, err)
	}
	return exists, nil
}

func (r *PgxFeedbackRepository) ListFeedbacksWithAuthor(ctx context.Context, limit int, offset int) ([]domain.FeedbackWithAuthor, error) {
	rows, err := r.DB.Query(ctx, listFeedbacksWithAuthorQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedbacks: %w", err)
	}
	defer rows.Close()

	items := []models.FeedbackWithAuthor{}
	for rows.Next() {
		var m models.FeedbackWithAuthor
		if err := rows.Scan(
			&m.FeedbackID,
			&m.UserID,
			&m.Body,
			&m.Stars,
			&m.CreatedAt,
			&m.AuthorFullName,
			&m.AuthorEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return mapping.ToDomainFeedbackWithAuthorSlice(items), nil
}

func (r *PgxFeedbackRepository) CountFeedbacks(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "failed to count feedbacks", countFeedbacksQuery)
}

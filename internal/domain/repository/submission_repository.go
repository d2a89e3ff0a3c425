package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// SubmissionRepository is append-only: there is no update or delete.
type SubmissionRepository interface {
	AppendSubmission(ctx context.Context, sub *model.Submission) error
	ListSubmissionsByUserID(ctx context.Context, userID string) ([]model.Submission, error)
}

type pgSubmissionRepository struct {
	db *sql.DB
}

func NewPgSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &pgSubmissionRepository{db: db}
}

func (r *pgSubmissionRepository) AppendSubmission(ctx context.Context, s *model.Submission) error {
	query := `INSERT INTO submissions (id, user_id, problem_id, problem_title, language_name, status_id, status_desc)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		s.ID, s.UserID, s.ProblemID, s.ProblemTitle, s.LanguageName, s.Status.ID, s.Status.Description,
	).Scan(&s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == common.PgCodeForeignKeyViolation {
			return fmt.Errorf("user %s does not exist: %w", s.UserID, common.ErrNotFound)
		}
		return fmt.Errorf("pgSubmissionRepository.AppendSubmission: %w", err)
	}
	return nil
}

// ListSubmissionsByUserID returns the user's submissions newest first.
func (r *pgSubmissionRepository) ListSubmissionsByUserID(ctx context.Context, userID string) ([]model.Submission, error) {
	query := `SELECT id, user_id, problem_id, problem_title, language_name, status_id, status_desc, created_at
	          FROM submissions WHERE user_id = $1
	          ORDER BY created_at DESC, seq DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionsByUserID query: %w", err)
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProblemID, &s.ProblemTitle, &s.LanguageName,
			&s.Status.ID, &s.Status.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionsByUserID scan: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionsByUserID rows.Err: %w", err)
	}
	return submissions, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"
)

// ProblemRepository persists whole problem documents. UpdateProblem overwrites every
// column of the stored row; concurrent writers to the same problem are last-write-wins.
type ProblemRepository interface {
	CreateProblem(ctx context.Context, problem *model.Problem) error
	UpdateProblem(ctx context.Context, problem *model.Problem) error
	FindProblemByID(ctx context.Context, id string) (*model.Problem, error)
	ListProblems(ctx context.Context, limit, offset int) ([]model.Problem, int, error)
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

const problemColumns = `id, title, slug, statement, input_format, output_format,
       sample_count, sample_input, sample_output,
       test_count, test_input, test_output,
       created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner, p *model.Problem) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Statement, &p.Input, &p.Output,
		&p.SampleTestCases.Count, &p.SampleTestCases.Input, &p.SampleTestCases.Output,
		&p.TestCases.Count, &p.TestCases.Input, &p.TestCases.Output,
		&p.CreatedByID, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *pgProblemRepository) CreateProblem(ctx context.Context, p *model.Problem) error {
	query := `INSERT INTO problems (id, title, slug, statement, input_format, output_format,
	              sample_count, sample_input, sample_output, test_count, test_input, test_output, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Statement, p.Input, p.Output,
		p.SampleTestCases.Count, p.SampleTestCases.Input, p.SampleTestCases.Output,
		p.TestCases.Count, p.TestCases.Input, p.TestCases.Output,
		p.CreatedByID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.CreateProblem: %w", err)
	}
	return nil
}

func (r *pgProblemRepository) UpdateProblem(ctx context.Context, p *model.Problem) error {
	query := `UPDATE problems SET
                title = $1, slug = $2, statement = $3, input_format = $4, output_format = $5,
                sample_count = $6, sample_input = $7, sample_output = $8,
                test_count = $9, test_input = $10, test_output = $11,
                updated_at = CURRENT_TIMESTAMP
              WHERE id = $12
              RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		p.Title, p.Slug, p.Statement, p.Input, p.Output,
		p.SampleTestCases.Count, p.SampleTestCases.Input, p.SampleTestCases.Output,
		p.TestCases.Count, p.TestCases.Input, p.TestCases.Output,
		p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return fmt.Errorf("pgProblemRepository.UpdateProblem: %w", err)
	}
	return nil
}

func (r *pgProblemRepository) FindProblemByID(ctx context.Context, id string) (*model.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems WHERE id = $1`

	problem := &model.Problem{}
	if err := scanProblem(r.db.QueryRowContext(ctx, query, id), problem); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProblemRepository.FindProblemByID: %w", err)
	}
	return problem, nil
}

// ListProblems returns one page in insertion order together with the total row count.
func (r *pgProblemRepository) ListProblems(ctx context.Context, limit, offset int) ([]model.Problem, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM problems`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgProblemRepository.ListProblems count: %w", err)
	}

	query := `SELECT ` + problemColumns + ` FROM problems ORDER BY seq ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("pgProblemRepository.ListProblems query: %w", err)
	}
	defer rows.Close()

	problems := []model.Problem{}
	for rows.Next() {
		var p model.Problem
		if err := scanProblem(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("pgProblemRepository.ListProblems scan: %w", err)
		}
		problems = append(problems, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("pgProblemRepository.ListProblems rows.Err: %w", err)
	}

	return problems, total, nil
}

package service

import (
	"context"
	"errors"

	"github.com/chandraguptgosavi/codemore-backend/internal/app/judge"
	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"
)

var errUnexpectedCall = errors.New("unexpected call")

type mockProblemRepo struct {
	CreateProblemFunc   func(ctx context.Context, p *model.Problem) error
	UpdateProblemFunc   func(ctx context.Context, p *model.Problem) error
	FindProblemByIDFunc func(ctx context.Context, id string) (*model.Problem, error)
	ListProblemsFunc    func(ctx context.Context, limit, offset int) ([]model.Problem, int, error)
}

func (m *mockProblemRepo) CreateProblem(ctx context.Context, p *model.Problem) error {
	if m.CreateProblemFunc == nil {
		return errUnexpectedCall
	}
	return m.CreateProblemFunc(ctx, p)
}

func (m *mockProblemRepo) UpdateProblem(ctx context.Context, p *model.Problem) error {
	if m.UpdateProblemFunc == nil {
		return errUnexpectedCall
	}
	return m.UpdateProblemFunc(ctx, p)
}

func (m *mockProblemRepo) FindProblemByID(ctx context.Context, id string) (*model.Problem, error) {
	if m.FindProblemByIDFunc == nil {
		return nil, common.ErrNotFound
	}
	return m.FindProblemByIDFunc(ctx, id)
}

func (m *mockProblemRepo) ListProblems(ctx context.Context, limit, offset int) ([]model.Problem, int, error) {
	if m.ListProblemsFunc == nil {
		return nil, 0, errUnexpectedCall
	}
	return m.ListProblemsFunc(ctx, limit, offset)
}

type mockUserRepo struct {
	CreateFunc           func(ctx context.Context, u *model.User) error
	FindByEmailFunc      func(ctx context.Context, email string) (*model.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*model.User, error)
	FindByIDFunc         func(ctx context.Context, id string) (*model.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) error {
	if m.CreateFunc == nil {
		return errUnexpectedCall
	}
	return m.CreateFunc(ctx, u)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.FindByEmailFunc == nil {
		return nil, common.ErrNotFound
	}
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.FindByUsernameFunc == nil {
		return nil, common.ErrNotFound
	}
	return m.FindByUsernameFunc(ctx, username)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.FindByIDFunc == nil {
		return nil, common.ErrNotFound
	}
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc == nil {
		return false, nil
	}
	return m.ExistsByUsernameFunc(ctx, username)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc == nil {
		return false, nil
	}
	return m.ExistsByEmailFunc(ctx, email)
}

type mockSubmissionRepo struct {
	appended []model.Submission

	AppendSubmissionFunc        func(ctx context.Context, s *model.Submission) error
	ListSubmissionsByUserIDFunc func(ctx context.Context, userID string) ([]model.Submission, error)
}

func (m *mockSubmissionRepo) AppendSubmission(ctx context.Context, s *model.Submission) error {
	if m.AppendSubmissionFunc != nil {
		if err := m.AppendSubmissionFunc(ctx, s); err != nil {
			return err
		}
	}
	m.appended = append(m.appended, *s)
	return nil
}

func (m *mockSubmissionRepo) ListSubmissionsByUserID(ctx context.Context, userID string) ([]model.Submission, error) {
	if m.ListSubmissionsByUserIDFunc == nil {
		return []model.Submission{}, nil
	}
	return m.ListSubmissionsByUserIDFunc(ctx, userID)
}

type mockRunner struct {
	calls []judge.Request

	RunFunc func(ctx context.Context, req judge.Request) (*model.Verdict, error)
}

func (m *mockRunner) Run(ctx context.Context, req judge.Request) (*model.Verdict, error) {
	m.calls = append(m.calls, req)
	if m.RunFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.RunFunc(ctx, req)
}

type stubTokens struct{}

func (stubTokens) GenerateToken(userID string) (string, error) {
	return "token-" + userID, nil
}

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/repository"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/testcase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 1000
)

type ProblemService struct {
	problemRepo     repository.ProblemRepository
	defaultPageSize int
}

func NewProblemService(problemRepo repository.ProblemRepository, defaultPageSize int) *ProblemService {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	return &ProblemService{
		problemRepo:     problemRepo,
		defaultPageSize: defaultPageSize,
	}
}

type CreateProblemRequest struct {
	Title           string             `json:"title" validate:"required"`
	Statement       string             `json:"statement" validate:"required"`
	Input           string             `json:"input" validate:"required"`
	Output          string             `json:"output" validate:"required"`
	SampleTestCases *model.TestCaseSet `json:"sampleTestCases" validate:"required"`
	TestCases       *model.TestCaseSet `json:"testCases" validate:"required"`
}

// UpdateProblemRequest carries only the fields to change. SampleTestCases replaces the
// stored samples; TestCases is appended to the stored hidden cases.
type UpdateProblemRequest struct {
	Title           *string            `json:"title,omitempty"`
	Statement       *string            `json:"statement,omitempty"`
	Input           *string            `json:"input,omitempty"`
	Output          *string            `json:"output,omitempty"`
	SampleTestCases *model.TestCaseSet `json:"sampleTestCases,omitempty"`
	TestCases       *testcase.Batch    `json:"testCases,omitempty"`
}

func (r UpdateProblemRequest) isEmpty() bool {
	return r.Title == nil && r.Statement == nil && r.Input == nil && r.Output == nil &&
		r.SampleTestCases == nil && r.TestCases == nil
}

type ProblemList struct {
	TotalProblems int             `json:"totalProblems"`
	Problems      []model.Problem `json:"problems"`
}

func (s *ProblemService) CreateProblem(ctx context.Context, userID string, req CreateProblemRequest) (*model.Problem, error) {
	if err := common.ValidateInput(req); err != nil {
		return nil, err
	}

	sample := testcase.Encode(*req.SampleTestCases)
	if err := testcase.Validate(sample); err != nil {
		return nil, fmt.Errorf("sampleTestCases: %w", err)
	}
	hidden := testcase.Encode(*req.TestCases)
	if err := testcase.Validate(hidden); err != nil {
		return nil, fmt.Errorf("testCases: %w", err)
	}

	problem := &model.Problem{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Slug:            slug.Make(req.Title),
		Statement:       req.Statement,
		Input:           req.Input,
		Output:          req.Output,
		SampleTestCases: sample,
		TestCases:       hidden,
	}
	if userID != "" {
		problem.CreatedByID = &userID
	}

	if err := s.problemRepo.CreateProblem(ctx, problem); err != nil {
		log.WithField("title", req.Title).Errorf("failed to create problem: %v", err)
		return nil, fmt.Errorf("failed to create problem: %w", err)
	}
	return problem, nil
}

func (s *ProblemService) GetProblem(ctx context.Context, id string) (*model.Problem, error) {
	problem, err := s.problemRepo.FindProblemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("problem %s: %w", id, err)
	}
	return problem, nil
}

// ListProblems returns a 1-indexed page. Non-positive arguments fall back to the defaults
// and pageSize is capped at MaxPageSize. A page past the end is empty.
func (s *ProblemService) ListProblems(ctx context.Context, page, pageSize int) (*ProblemList, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)

	offset := math.MaxInt
	if page-1 <= math.MaxInt/pageSize {
		offset = (page - 1) * pageSize
	}

	problems, total, err := s.problemRepo.ListProblems(ctx, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return &ProblemList{TotalProblems: total, Problems: problems}, nil
}

func (s *ProblemService) UpdateProblem(ctx context.Context, id string, req UpdateProblemRequest) (*model.Problem, error) {
	if req.isEmpty() {
		return nil, common.ErrEmptyUpdate
	}

	problem, err := s.problemRepo.FindProblemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("problem %s: %w", id, err)
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", req.Title}, {"statement", req.Statement}, {"input", req.Input}, {"output", req.Output},
	} {
		if f.value != nil && *f.value == "" {
			return nil, fmt.Errorf("%s must not be empty: %w", f.name, common.ErrMissingFields)
		}
	}

	var sample model.TestCaseSet
	if req.SampleTestCases != nil {
		sample = testcase.Encode(*req.SampleTestCases)
		if err := testcase.Validate(sample); err != nil {
			return nil, fmt.Errorf("sampleTestCases: %w", err)
		}
	}
	if req.TestCases != nil {
		if err := testcase.ValidateBatch(testcase.EncodeBatch(*req.TestCases)); err != nil {
			return nil, fmt.Errorf("testCases: %w", err)
		}
	}

	if req.Title != nil {
		problem.Title = *req.Title
		problem.Slug = slug.Make(*req.Title)
	}
	if req.Statement != nil {
		problem.Statement = *req.Statement
	}
	if req.Input != nil {
		problem.Input = *req.Input
	}
	if req.Output != nil {
		problem.Output = *req.Output
	}
	if req.SampleTestCases != nil {
		problem.SampleTestCases = sample
	}
	if req.TestCases != nil {
		merged := testcase.Merge(problem.TestCases, req.TestCases)
		if err := testcase.Validate(merged); err != nil {
			return nil, fmt.Errorf("testCases after merge: %w", err)
		}
		problem.TestCases = merged
	}

	if err := s.problemRepo.UpdateProblem(ctx, problem); err != nil {
		return nil, fmt.Errorf("failed to update problem %s: %w", id, err)
	}
	return problem, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/chandraguptgosavi/codemore-backend/internal/app/judge"
	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/repository"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/testcase"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CodeRunner executes code on the judge.
type CodeRunner interface {
	Run(ctx context.Context, req judge.Request) (*model.Verdict, error)
}

type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	problemRepo    repository.ProblemRepository
	userRepo       repository.UserRepository
	runner         CodeRunner
}

func NewSubmissionService(
	subRepo repository.SubmissionRepository,
	probRepo repository.ProblemRepository,
	userRepo repository.UserRepository,
	runner CodeRunner,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: subRepo,
		problemRepo:    probRepo,
		userRepo:       userRepo,
		runner:         runner,
	}
}

type RunCodeRequest struct {
	SrcCode   string `json:"srcCode" validate:"required"`
	LangID    int    `json:"langID" validate:"required"`
	UserInput string `json:"userInput" validate:"required"`
}

type SubmitRequest struct {
	SrcCode      string          `json:"srcCode" validate:"required"`
	ProblemTitle string          `json:"problemTitle" validate:"required"`
	Language     *model.Language `json:"language" validate:"required"`
}

// RunCode runs code against custom input. Nothing is recorded.
func (s *SubmissionService) RunCode(ctx context.Context, req RunCodeRequest) (*model.Verdict, error) {
	if err := common.ValidateInput(req); err != nil {
		return nil, err
	}
	return s.runner.Run(ctx, judge.Request{
		SourceCode: req.SrcCode,
		LanguageID: req.LangID,
		Stdin:      req.UserInput,
	})
}

// Submit grades code against the problem's hidden test cases and records the verdict.
// The judge is not contacted for an unknown problem, and nothing is recorded when the
// judge call fails.
func (s *SubmissionService) Submit(ctx context.Context, userID, problemID string, req SubmitRequest) (*model.Verdict, error) {
	if err := common.ValidateInput(req); err != nil {
		return nil, err
	}

	problem, err := s.problemRepo.FindProblemByID(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("problem %s: %w", problemID, err)
	}

	expected := problem.TestCases.Output
	verdict, err := s.runner.Run(ctx, judge.Request{
		SourceCode:     req.SrcCode,
		LanguageID:     req.Language.ID,
		Stdin:          testcase.Stdin(problem.TestCases),
		ExpectedOutput: &expected,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.Record(ctx, userID, problem.ID, req.ProblemTitle, req.Language.Name, verdict); err != nil {
		return nil, err
	}
	return verdict, nil
}

// Record appends a submission carrying verdict to the user's history.
func (s *SubmissionService) Record(ctx context.Context, userID, problemID, problemTitle, languageName string, verdict *model.Verdict) (*model.Submission, error) {
	if verdict == nil || verdict.Status.ID == 0 || verdict.Status.Description == "" {
		return nil, fmt.Errorf("malformed verdict: %w", common.ErrInternalServer)
	}

	submission := &model.Submission{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProblemID:    problemID,
		ProblemTitle: problemTitle,
		LanguageName: languageName,
		Status:       verdict.Status,
	}
	if err := s.submissionRepo.AppendSubmission(ctx, submission); err != nil {
		log.WithFields(log.Fields{"user": userID, "problem": problemID}).Errorf("failed to record submission: %v", err)
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}
	return submission, nil
}

// ListUserSubmissions returns the named user's submissions, newest first.
func (s *SubmissionService) ListUserSubmissions(ctx context.Context, username string) ([]model.Submission, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", username, err)
	}
	submissions, err := s.submissionRepo.ListSubmissionsByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

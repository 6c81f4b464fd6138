package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruit-backend/internal/contract"
	"recruit-backend/internal/evaluation"
	"recruit-backend/internal/jobpostings"
)

// PostingLookup is what the service needs from job postings.
type PostingLookup interface {
	Get(ctx context.Context, id string) (jobpostings.JobPosting, error)
	Public(ctx context.Context, id string) (contract.PublicJobPosting, error)
}

// Service contains business logic for applications.
type Service struct {
	Repo     Repo
	Postings PostingLookup
	Now      func() time.Time
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.Repo.List(ctx)
}

// ListByPosting lists the applications of one posting, newest first.
func (s *Service) ListByPosting(ctx context.Context, postingID string) ([]Application, error) {
	if err := s.requirePosting(ctx, postingID); err != nil {
		return nil, err
	}
	return s.Repo.ListByPosting(ctx, postingID)
}

// Submit validates a public application against the posting's questions and
// stores it with status SUBMITTED.
func (s *Service) Submit(ctx context.Context, postingID string, req contract.SubmitApplicationRequest) (Application, error) {
	posting, err := s.Postings.Get(ctx, postingID)
	if err != nil {
		if errors.Is(err, jobpostings.ErrNotFound) {
			return Application{}, ErrPostingNotFound
		}
		return Application{}, err
	}
	if posting.Status == jobpostings.StatusClosed {
		return Application{}, ErrPostingClosed
	}
	public, err := s.Postings.Public(ctx, postingID)
	if err != nil {
		if errors.Is(err, jobpostings.ErrNotFound) {
			return Application{}, ErrPostingNotFound
		}
		return Application{}, err
	}
	if err := contract.ValidateSubmission(public, req); err != nil {
		return Application{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	now := s.now()
	app := Application{
		ID:           uuid.NewString(),
		JobPostingID: posting.ID,
		Applicant: contract.Applicant{
			Name:  strings.TrimSpace(req.Applicant.Name),
			Email: strings.TrimSpace(req.Applicant.Email),
			Phone: strings.TrimSpace(req.Applicant.Phone),
		},
		Status:             StatusSubmitted,
		ResumeAnswers:      withQuestionText(req.ResumeAnswers, resumeQuestionText(posting)),
		CoverLetterAnswers: withQuestionText(req.CoverLetterAnswers, coverQuestionText(posting)),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (s *Service) Get(ctx context.Context, id string) (Application, error) {
	return s.Repo.Get(ctx, id)
}

// UpdateEvaluation records the reviewer's comment and status decision.
func (s *Service) UpdateEvaluation(ctx context.Context, id string, update contract.EvaluationUpdate) (Application, error) {
	status := evaluation.NormalizeStatus(update.Status)
	if !evaluation.IsKnownStatus(status) {
		return Application{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, update.Status)
	}
	app, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Application{}, err
	}
	now := s.now()
	app.Status = status
	app.EvaluationComment = strings.TrimSpace(update.Comment)
	app.EvaluatedAt = &now
	app.UpdatedAt = now
	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// EvaluationResult returns the evaluator output of one application.
func (s *Service) EvaluationResult(ctx context.Context, id string) (*contract.EvaluationResult, error) {
	app, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.EvaluationResult == nil {
		return nil, ErrNotFound
	}
	return app.EvaluationResult, nil
}

// EvaluationResults lists evaluator output for every application of a
// posting. Applications without a result are included with a nil result.
func (s *Service) EvaluationResults(ctx context.Context, postingID string) ([]contract.EvaluationResultEntry, error) {
	apps, err := s.ListByPosting(ctx, postingID)
	if err != nil {
		return nil, err
	}
	out := make([]contract.EvaluationResultEntry, 0, len(apps))
	for _, app := range apps {
		out = append(out, contract.EvaluationResultEntry{
			ApplicationID:    app.ID,
			EvaluationResult: app.EvaluationResult,
		})
	}
	return out, nil
}

// StoreEvaluationResult stores the evaluator output. The reported total is
// copied to the application, and an application still waiting for review
// moves to EVALUATED.
func (s *Service) StoreEvaluationResult(ctx context.Context, id string, result contract.EvaluationResult) (Application, error) {
	app, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Application{}, err
	}
	app.EvaluationResult = &result
	if total := result.Total(); total != nil {
		v := *total
		app.TotalScore = &v
	}
	if !evaluation.IsResolvedStatus(app.Status) {
		app.Status = StatusEvaluated
	}
	app.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (s *Service) requirePosting(ctx context.Context, postingID string) error {
	if s.Postings == nil {
		return nil
	}
	if _, err := s.Postings.Get(ctx, postingID); err != nil {
		if errors.Is(err, jobpostings.ErrNotFound) {
			return ErrPostingNotFound
		}
		return err
	}
	return nil
}

func resumeQuestionText(p jobpostings.JobPosting) map[string]string {
	out := make(map[string]string, len(p.ResumeQuestions))
	for _, q := range p.ResumeQuestions {
		out[q.ID] = q.Question
	}
	return out
}

func coverQuestionText(p jobpostings.JobPosting) map[string]string {
	out := make(map[string]string, len(p.CoverLetterQuestions))
	for _, q := range p.CoverLetterQuestions {
		out[q.ID] = q.Question
	}
	return out
}

// withQuestionText drops blank answers and fills in the question text.
func withQuestionText(answers []contract.AnswerRecord, questions map[string]string) []contract.AnswerRecord {
	out := make([]contract.AnswerRecord, 0, len(answers))
	for _, a := range answers {
		if strings.TrimSpace(a.Answer) == "" {
			continue
		}
		if text, ok := questions[a.QuestionID]; ok {
			a.Question = text
		}
		out = append(out, a)
	}
	return out
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

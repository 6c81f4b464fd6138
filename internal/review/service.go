package review

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/contract"
	"recruit-backend/internal/evaluation"
	"recruit-backend/internal/shared/telemetry"
)

// decisionStatuses are the statuses a reviewer may set.
var decisionStatuses = map[string]bool{
	"PASSED":    true,
	"FAILED":    true,
	"ACCEPTED":  true,
	"REJECTED":  true,
	"REVIEWING": true,
}

// Service derives reviewer views from a Source.
type Service struct {
	Source   Source
	Rules    evaluation.ScoreRules
	Location *time.Location
	Now      func() time.Time
}

// NewService constructs a Service with the default score rules.
func NewService(src Source) *Service {
	return &Service{Source: src, Rules: evaluation.DefaultScoreRules, Location: time.UTC}
}

// ApplicationReview fetches one application and derives its reviewer view.
func (s *Service) ApplicationReview(ctx context.Context, id string) (ApplicationView, error) {
	bundle, err := backend.FetchReviewBundle(ctx, s.Source, id)
	if err != nil {
		return ApplicationView{}, err
	}
	return BuildApplicationView(bundle, s.Rules), nil
}

// Annotate derives the answer view for ad-hoc text and checked contents.
func (s *Service) Annotate(text string, items []evaluation.CheckedContent) AnswerView {
	return BuildAnswerView("", text, &evaluation.Result{CheckedContents: items}, "")
}

// SubmitDecision forwards a reviewer decision. Only the reviewer decision
// statuses are accepted.
func (s *Service) SubmitDecision(ctx context.Context, id, comment, status string) (contract.Application, error) {
	st := evaluation.NormalizeStatus(status)
	if !decisionStatuses[st] {
		return contract.Application{}, fmt.Errorf("%w: status %q is not a reviewer decision", ErrInvalidInput, status)
	}
	app, err := s.Source.UpdateEvaluation(ctx, id, contract.EvaluationUpdate{
		Comment: strings.TrimSpace(comment),
		Status:  st,
	})
	if err != nil {
		return contract.Application{}, err
	}
	telemetry.Info("review.decision", map[string]any{
		"application_id": id,
		"status":         st,
	})
	return app, nil
}

// BoardEntry is one application on the reviewer board.
type BoardEntry struct {
	ApplicationID string                `json:"application_id"`
	Applicant     contract.Applicant    `json:"applicant"`
	Status        string                `json:"status"`
	Score         evaluation.Score      `json:"score"`
	Category      evaluation.Category   `json:"category"`
	Bucket        evaluation.DateBucket `json:"bucket"`
	SubmittedAt   time.Time             `json:"submitted_at"`
}

// Board lists the applications of one tab, with counts for every tab.
type Board struct {
	JobPostingID string                      `json:"job_posting_id"`
	Title        string                      `json:"title"`
	Tab          evaluation.Category         `json:"tab"`
	Counts       map[evaluation.Category]int `json:"counts"`
	Entries      []BoardEntry                `json:"entries"`
}

// Board categorizes the applications of a posting and returns the entries of
// tab, newest first.
func (s *Service) Board(ctx context.Context, postingID string, tab evaluation.Category) (Board, error) {
	var (
		posting contract.JobPosting
		apps    []contract.Application
		results []contract.EvaluationResultEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posting, err = s.Source.GetJobPosting(gctx, postingID)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = s.Source.ListApplicationsByPosting(gctx, postingID)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = s.Source.ListEvaluationResults(gctx, postingID)
		if errors.Is(err, backend.ErrNotFound) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return Board{}, err
	}

	totals := make(map[string]*float64, len(results))
	for _, r := range results {
		totals[r.ApplicationID] = r.EvaluationResult.Total()
	}

	now := s.now()
	board := Board{
		JobPostingID: postingID,
		Title:        posting.Title,
		Tab:          tab,
		Counts:       make(map[evaluation.Category]int, len(evaluation.Categories)),
		Entries:      []BoardEntry{},
	}
	for _, c := range evaluation.Categories {
		board.Counts[c] = 0
	}
	for _, app := range apps {
		score := s.Rules.Derive(totals[app.ID], app.TotalScore, posting.TotalScore, posting.PassingScore)
		category := evaluation.Categorize(app.Status, score)
		board.Counts[category]++
		if category != tab {
			continue
		}
		board.Entries = append(board.Entries, BoardEntry{
			ApplicationID: app.ID,
			Applicant:     app.Applicant,
			Status:        app.Status,
			Score:         score,
			Category:      category,
			Bucket:        evaluation.BucketByDate(app.CreatedAt, now, s.Location),
			SubmittedAt:   app.CreatedAt,
		})
	}
	sort.SliceStable(board.Entries, func(i, j int) bool {
		return board.Entries[i].SubmittedAt.After(board.Entries[j].SubmittedAt)
	})
	return board, nil
}

// PublicPosting returns the posting shown on the public application form.
func (s *Service) PublicPosting(ctx context.Context, id string) (contract.PublicJobPosting, error) {
	return s.Source.GetPublicJobPosting(ctx, id)
}

// Apply validates a public application before forwarding it.
func (s *Service) Apply(ctx context.Context, postingID string, req contract.SubmitApplicationRequest) (contract.Application, error) {
	posting, err := s.Source.GetPublicJobPosting(ctx, postingID)
	if err != nil {
		return contract.Application{}, err
	}
	if err := contract.ValidateSubmission(posting, req); err != nil {
		return contract.Application{}, err
	}
	return s.Source.SubmitApplication(ctx, postingID, req)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

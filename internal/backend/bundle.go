package backend

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"recruit-backend/internal/contract"
)

// ReviewBundle is everything the reviewer screen needs for one application.
type ReviewBundle struct {
	Details    contract.ApplicationDetails
	JobPosting *contract.JobPosting
	Evaluation *contract.EvaluationResult
}

// ReviewFetcher is the subset of the API a review bundle is assembled from.
type ReviewFetcher interface {
	GetApplicationDetails(ctx context.Context, id string) (contract.ApplicationDetails, error)
	GetJobPosting(ctx context.Context, id string) (contract.JobPosting, error)
	GetEvaluationResult(ctx context.Context, id string) (*contract.EvaluationResult, error)
}

// GetReviewBundle loads the review bundle of one application.
func (c *Client) GetReviewBundle(ctx context.Context, applicationID string) (ReviewBundle, error) {
	return FetchReviewBundle(ctx, c, applicationID)
}

// FetchReviewBundle loads the application details, then the job posting and
// the evaluation result concurrently. A missing posting or evaluation result
// is not an error; the corresponding field stays nil.
func FetchReviewBundle(ctx context.Context, f ReviewFetcher, applicationID string) (ReviewBundle, error) {
	details, err := f.GetApplicationDetails(ctx, applicationID)
	if err != nil {
		return ReviewBundle{}, err
	}
	bundle := ReviewBundle{Details: details, Evaluation: details.EvaluationResult}

	g, gctx := errgroup.WithContext(ctx)
	if postingID := details.Application.JobPostingID; postingID != "" {
		g.Go(func() error {
			posting, err := f.GetJobPosting(gctx, postingID)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			bundle.JobPosting = &posting
			return nil
		})
	}
	if bundle.Evaluation == nil {
		g.Go(func() error {
			result, err := f.GetEvaluationResult(gctx, applicationID)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			bundle.Evaluation = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ReviewBundle{}, err
	}
	return bundle, nil
}

// Package review builds the reviewer-facing view of applications and their AI
// evaluations on top of the recruiting API.
package review

import (
	"context"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/contract"
)

// Source is what the review service needs from the recruiting API. Not-found
// answers must match backend.ErrNotFound.
type Source interface {
	backend.ReviewFetcher
	ListApplicationsByPosting(ctx context.Context, postingID string) ([]contract.Application, error)
	ListEvaluationResults(ctx context.Context, postingID string) ([]contract.EvaluationResultEntry, error)
	UpdateEvaluation(ctx context.Context, id string, req contract.EvaluationUpdate) (contract.Application, error)
	GetPublicJobPosting(ctx context.Context, id string) (contract.PublicJobPosting, error)
	SubmitApplication(ctx context.Context, postingID string, req contract.SubmitApplicationRequest) (contract.Application, error)
}

var _ Source = (*backend.Client)(nil)

package bootstrap

import (
	"context"
	"errors"
	"net/http"

	"recruit-backend/internal/applications"
	"recruit-backend/internal/backend"
	"recruit-backend/internal/companies"
	"recruit-backend/internal/contract"
	"recruit-backend/internal/jobpostings"
	"recruit-backend/internal/review"
)

// localSource serves the review service from the in-process recruiting
// services, translating their errors into backend errors so the review layer
// handles both modes identically.
type localSource struct {
	postings     *jobpostings.Service
	applications *applications.Service
}

var _ review.Source = localSource{}

func (s localSource) GetApplicationDetails(ctx context.Context, id string) (contract.ApplicationDetails, error) {
	app, err := s.applications.Get(ctx, id)
	if err != nil {
		return contract.ApplicationDetails{}, asBackendError(backend.OpGetApplicationDetails, err)
	}
	return applications.ToDetails(app), nil
}

func (s localSource) GetJobPosting(ctx context.Context, id string) (contract.JobPosting, error) {
	posting, err := s.postings.Get(ctx, id)
	if err != nil {
		return contract.JobPosting{}, asBackendError(backend.OpGetJobPosting, err)
	}
	return jobpostings.ToContract(posting), nil
}

func (s localSource) GetEvaluationResult(ctx context.Context, id string) (*contract.EvaluationResult, error) {
	result, err := s.applications.EvaluationResult(ctx, id)
	if err != nil {
		return nil, asBackendError(backend.OpGetEvaluationResult, err)
	}
	return result, nil
}

func (s localSource) ListApplicationsByPosting(ctx context.Context, postingID string) ([]contract.Application, error) {
	apps, err := s.applications.ListByPosting(ctx, postingID)
	if err != nil {
		return nil, asBackendError(backend.OpListApplicationsByPosting, err)
	}
	out := make([]contract.Application, 0, len(apps))
	for _, app := range apps {
		out = append(out, applications.ToContract(app))
	}
	return out, nil
}

func (s localSource) ListEvaluationResults(ctx context.Context, postingID string) ([]contract.EvaluationResultEntry, error) {
	entries, err := s.applications.EvaluationResults(ctx, postingID)
	if err != nil {
		return nil, asBackendError(backend.OpListEvaluationResults, err)
	}
	return entries, nil
}

func (s localSource) UpdateEvaluation(ctx context.Context, id string, req contract.EvaluationUpdate) (contract.Application, error) {
	app, err := s.applications.UpdateEvaluation(ctx, id, req)
	if err != nil {
		return contract.Application{}, asBackendError(backend.OpUpdateEvaluation, err)
	}
	return applications.ToContract(app), nil
}

func (s localSource) GetPublicJobPosting(ctx context.Context, id string) (contract.PublicJobPosting, error) {
	posting, err := s.postings.Public(ctx, id)
	if err != nil {
		return contract.PublicJobPosting{}, asBackendError(backend.OpGetPublicJobPosting, err)
	}
	return posting, nil
}

func (s localSource) SubmitApplication(ctx context.Context, postingID string, req contract.SubmitApplicationRequest) (contract.Application, error) {
	app, err := s.applications.Submit(ctx, postingID, req)
	if err != nil {
		return contract.Application{}, asBackendError(backend.OpSubmitApplication, err)
	}
	return applications.ToContract(app), nil
}

func asBackendError(op string, err error) error {
	var missing contract.MissingFieldsError
	switch {
	case errors.Is(err, applications.ErrNotFound),
		errors.Is(err, applications.ErrPostingNotFound),
		errors.Is(err, jobpostings.ErrNotFound),
		errors.Is(err, companies.ErrNotFound):
		return &backend.Error{Op: op, Status: http.StatusNotFound, Kind: backend.KindNotFound, Err: err}
	case errors.As(err, &missing),
		errors.Is(err, applications.ErrInvalidInput),
		errors.Is(err, jobpostings.ErrInvalidInput):
		return &backend.Error{Op: op, Status: http.StatusBadRequest, Kind: backend.KindValidation, Err: err}
	case errors.Is(err, applications.ErrPostingClosed):
		return &backend.Error{Op: op, Status: http.StatusConflict, Kind: backend.KindStatus, Err: err}
	default:
		return &backend.Error{Op: op, Status: http.StatusInternalServerError, Kind: backend.KindStatus, Err: err}
	}
}

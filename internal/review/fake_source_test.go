package review

import (
	"context"
	"sync"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/contract"
)

type fakeSource struct {
	mu          sync.Mutex
	details     map[string]contract.ApplicationDetails
	postings    map[string]contract.JobPosting
	public      map[string]contract.PublicJobPosting
	results     map[string]*contract.EvaluationResult
	byPosting   map[string][]contract.Application
	updates     []contract.EvaluationUpdate
	submissions []contract.SubmitApplicationRequest
	failDetails error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		details:   map[string]contract.ApplicationDetails{},
		postings:  map[string]contract.JobPosting{},
		public:    map[string]contract.PublicJobPosting{},
		results:   map[string]*contract.EvaluationResult{},
		byPosting: map[string][]contract.Application{},
	}
}

func notFound(op string) error {
	return &backend.Error{Op: op, Status: 404, Kind: backend.KindNotFound}
}

func (f *fakeSource) GetApplicationDetails(ctx context.Context, id string) (contract.ApplicationDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDetails != nil {
		return contract.ApplicationDetails{}, f.failDetails
	}
	d, ok := f.details[id]
	if !ok {
		return contract.ApplicationDetails{}, notFound(backend.OpGetApplicationDetails)
	}
	return d, nil
}

func (f *fakeSource) GetJobPosting(ctx context.Context, id string) (contract.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.postings[id]
	if !ok {
		return contract.JobPosting{}, notFound(backend.OpGetJobPosting)
	}
	return p, nil
}

func (f *fakeSource) GetEvaluationResult(ctx context.Context, id string) (*contract.EvaluationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.results[id]
	if !ok {
		return nil, notFound(backend.OpGetEvaluationResult)
	}
	return r, nil
}

func (f *fakeSource) ListApplicationsByPosting(ctx context.Context, postingID string) ([]contract.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byPosting[postingID], nil
}

func (f *fakeSource) ListEvaluationResults(ctx context.Context, postingID string) ([]contract.EvaluationResultEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []contract.EvaluationResultEntry
	for _, app := range f.byPosting[postingID] {
		out = append(out, contract.EvaluationResultEntry{ApplicationID: app.ID, EvaluationResult: f.results[app.ID]})
	}
	return out, nil
}

func (f *fakeSource) UpdateEvaluation(ctx context.Context, id string, req contract.EvaluationUpdate) (contract.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	return contract.Application{ID: id, Status: req.Status, EvaluationComment: req.Comment}, nil
}

func (f *fakeSource) GetPublicJobPosting(ctx context.Context, id string) (contract.PublicJobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.public[id]
	if !ok {
		return contract.PublicJobPosting{}, notFound(backend.OpGetPublicJobPosting)
	}
	return p, nil
}

func (f *fakeSource) SubmitApplication(ctx context.Context, postingID string, req contract.SubmitApplicationRequest) (contract.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, req)
	return contract.Application{ID: "new-app", JobPostingID: postingID, Applicant: req.Applicant, Status: "SUBMITTED"}, nil
}

var _ Source = (*fakeSource)(nil)

func float(v float64) *float64 { return &v }
func integer(v int) *int       { return &v }

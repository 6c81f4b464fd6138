package jobpostings

import "context"

// Repo defines persistence operations for job postings.
type Repo interface {
	Create(ctx context.Context, posting JobPosting) error
	Update(ctx context.Context, posting JobPosting) error
	Get(ctx context.Context, id string) (JobPosting, error)
	List(ctx context.Context) ([]JobPosting, error)
}

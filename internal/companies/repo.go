package companies

import "context"

// Repo defines persistence operations for companies.
type Repo interface {
	Create(ctx context.Context, company Company) error
	Get(ctx context.Context, id string) (Company, error)
	List(ctx context.Context) ([]Company, error)
}

package applications

import "context"

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	Update(ctx context.Context, app Application) error
	Get(ctx context.Context, id string) (Application, error)
	List(ctx context.Context) ([]Application, error)
	ListByPosting(ctx context.Context, postingID string) ([]Application, error)
}

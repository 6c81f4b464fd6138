package jobpostings

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]JobPosting
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]JobPosting)}
}

func (r *MemoryRepo) Create(ctx context.Context, posting JobPosting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[posting.ID] = posting
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, posting JobPosting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[posting.ID]; !ok {
		return ErrNotFound
	}
	r.data[posting.ID] = posting
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return JobPosting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	posting, ok := r.data[id]
	if !ok {
		return JobPosting{}, ErrNotFound
	}
	return posting, nil
}

// List returns postings newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]JobPosting, 0, len(r.data))
	for _, posting := range r.data {
		out = append(out, posting)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)

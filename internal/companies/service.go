package companies

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruit-backend/internal/contract"
)

// Service contains business logic for companies.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// Create registers a company. Name is required.
func (s *Service) Create(ctx context.Context, req contract.CreateCompanyRequest) (Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Company{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	company := Company{
		ID:             uuid.NewString(),
		Name:           name,
		BusinessNumber: strings.TrimSpace(req.BusinessNumber),
		Industry:       strings.TrimSpace(req.Industry),
		Description:    strings.TrimSpace(req.Description),
		Website:        strings.TrimSpace(req.Website),
		CreatedAt:      s.now(),
	}
	if err := s.Repo.Create(ctx, company); err != nil {
		return Company{}, err
	}
	return company, nil
}

func (s *Service) Get(ctx context.Context, id string) (Company, error) {
	return s.Repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.Repo.List(ctx)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

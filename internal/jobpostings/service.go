package jobpostings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruit-backend/internal/companies"
	"recruit-backend/internal/contract"
)

// CompanyLookup resolves the owning company of a posting.
type CompanyLookup interface {
	Get(ctx context.Context, id string) (companies.Company, error)
}

// Service contains business logic for job postings.
type Service struct {
	Repo      Repo
	Companies CompanyLookup
	Now       func() time.Time
}

// Create validates and stores a new posting. Missing question ids are
// generated; status defaults to OPEN.
func (s *Service) Create(ctx context.Context, req contract.JobPostingRequest) (JobPosting, error) {
	if err := s.validate(ctx, req); err != nil {
		return JobPosting{}, err
	}
	now := s.now()
	posting := fromRequest(req)
	posting.ID = uuid.NewString()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	if err := s.Repo.Create(ctx, posting); err != nil {
		return JobPosting{}, err
	}
	return posting, nil
}

// Update replaces the editable fields of an existing posting.
func (s *Service) Update(ctx context.Context, id string, req contract.JobPostingRequest) (JobPosting, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return JobPosting{}, err
	}
	if err := s.validate(ctx, req); err != nil {
		return JobPosting{}, err
	}
	posting := fromRequest(req)
	posting.ID = existing.ID
	posting.CreatedAt = existing.CreatedAt
	posting.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, posting); err != nil {
		return JobPosting{}, err
	}
	return posting, nil
}

func (s *Service) Get(ctx context.Context, id string) (JobPosting, error) {
	return s.Repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]JobPosting, error) {
	return s.Repo.List(ctx)
}

// Public returns the form view of a posting. Drafts are reported as not found.
func (s *Service) Public(ctx context.Context, id string) (contract.PublicJobPosting, error) {
	posting, err := s.Repo.Get(ctx, id)
	if err != nil {
		return contract.PublicJobPosting{}, err
	}
	if !posting.Public() {
		return contract.PublicJobPosting{}, ErrNotFound
	}
	out := contract.PublicJobPosting{
		ID:                   posting.ID,
		Title:                posting.Title,
		Description:          posting.Description,
		ResumeQuestions:      posting.ResumeQuestions,
		CoverLetterQuestions: posting.CoverLetterQuestions,
		StartDate:            posting.StartDate,
		EndDate:              posting.EndDate,
	}
	if s.Companies != nil {
		if company, err := s.Companies.Get(ctx, posting.CompanyID); err == nil {
			out.CompanyName = company.Name
		}
	}
	return out, nil
}

func (s *Service) validate(ctx context.Context, req contract.JobPostingRequest) error {
	var problems []string
	if strings.TrimSpace(req.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(req.CompanyID) == "" {
		problems = append(problems, "companyId is required")
	}
	switch req.Status {
	case "", StatusDraft, StatusOpen, StatusClosed:
	default:
		problems = append(problems, "status must be DRAFT, OPEN or CLOSED")
	}
	if req.TotalScore != nil && *req.TotalScore <= 0 {
		problems = append(problems, "totalScore must be positive")
	}
	if req.PassingScore != nil && *req.PassingScore < 0 {
		problems = append(problems, "passingScore must not be negative")
	}
	if req.TotalScore != nil && req.PassingScore != nil && *req.PassingScore > *req.TotalScore {
		problems = append(problems, "passingScore must not exceed totalScore")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		problems = append(problems, "endDate must not precede startDate")
	}
	for i, q := range req.ResumeQuestions {
		if strings.TrimSpace(q.Question) == "" {
			problems = append(problems, fmt.Sprintf("resumeQuestions[%d].question is required", i))
		}
	}
	for i, q := range req.CoverLetterQuestions {
		if strings.TrimSpace(q.Question) == "" {
			problems = append(problems, fmt.Sprintf("coverLetterQuestions[%d].question is required", i))
		}
		if q.MaxLength < 0 {
			problems = append(problems, fmt.Sprintf("coverLetterQuestions[%d].maxLength must not be negative", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	if s.Companies != nil {
		if _, err := s.Companies.Get(ctx, strings.TrimSpace(req.CompanyID)); err != nil {
			if errors.Is(err, companies.ErrNotFound) {
				return fmt.Errorf("%w: company %s does not exist", ErrInvalidInput, req.CompanyID)
			}
			return err
		}
	}
	return nil
}

func fromRequest(req contract.JobPostingRequest) JobPosting {
	status := req.Status
	if status == "" {
		status = StatusOpen
	}
	resumeQuestions := make([]contract.ResumeQuestion, 0, len(req.ResumeQuestions))
	for _, q := range req.ResumeQuestions {
		q.Question = strings.TrimSpace(q.Question)
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		resumeQuestions = append(resumeQuestions, q)
	}
	coverQuestions := make([]contract.CoverLetterQuestion, 0, len(req.CoverLetterQuestions))
	for _, q := range req.CoverLetterQuestions {
		q.Question = strings.TrimSpace(q.Question)
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		coverQuestions = append(coverQuestions, q)
	}
	return JobPosting{
		CompanyID:            strings.TrimSpace(req.CompanyID),
		Title:                strings.TrimSpace(req.Title),
		Description:          strings.TrimSpace(req.Description),
		Status:               status,
		TotalScore:           req.TotalScore,
		PassingScore:         req.PassingScore,
		ResumeQuestions:      resumeQuestions,
		CoverLetterQuestions: coverQuestions,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

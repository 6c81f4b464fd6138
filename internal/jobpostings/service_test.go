package jobpostings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"recruit-backend/internal/companies"
	"recruit-backend/internal/contract"
)

func intPtr(v int) *int { return &v }

func newTestService(t *testing.T) (*Service, companies.Company) {
	t.Helper()
	companyRepo := companies.NewMemoryRepo()
	company := companies.Company{ID: "c-1", Name: "오픈랩", CreatedAt: time.Now().UTC()}
	if err := companyRepo.Create(context.Background(), company); err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return &Service{Repo: NewMemoryRepo(), Companies: companyRepo}, company
}

func TestCreateAssignsIDsAndDefaults(t *testing.T) {
	svc, company := newTestService(t)

	posting, err := svc.Create(context.Background(), contract.JobPostingRequest{
		CompanyID:            company.ID,
		Title:                " 백엔드 개발자 ",
		TotalScore:           intPtr(100),
		PassingScore:         intPtr(60),
		CoverLetterQuestions: []contract.CoverLetterQuestion{{Question: "지원 동기", MaxLength: 500, Required: true}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if posting.ID == "" || posting.Title != "백엔드 개발자" || posting.Status != StatusOpen {
		t.Fatalf("unexpected posting: %+v", posting)
	}
	if posting.CoverLetterQuestions[0].ID == "" {
		t.Fatalf("expected generated question id")
	}
}

func TestCreateRejectsInvalidScores(t *testing.T) {
	svc, company := newTestService(t)

	_, err := svc.Create(context.Background(), contract.JobPostingRequest{
		CompanyID:    company.ID,
		Title:        "t",
		TotalScore:   intPtr(50),
		PassingScore: intPtr(60),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "passingScore") {
		t.Fatalf("expected passingScore problem, got %v", err)
	}
}

func TestCreateRejectsUnknownCompany(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), contract.JobPostingRequest{CompanyID: "nope", Title: "t"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	svc, company := newTestService(t)
	created, err := svc.Create(context.Background(), contract.JobPostingRequest{CompanyID: company.ID, Title: "v1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, contract.JobPostingRequest{CompanyID: company.ID, Title: "v2", Status: StatusClosed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "v2" || updated.Status != StatusClosed || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), "missing", contract.JobPostingRequest{CompanyID: company.ID, Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPublicHidesDraftsAndScoring(t *testing.T) {
	svc, company := newTestService(t)
	draft, _ := svc.Create(context.Background(), contract.JobPostingRequest{CompanyID: company.ID, Title: "draft", Status: StatusDraft})
	open, _ := svc.Create(context.Background(), contract.JobPostingRequest{CompanyID: company.ID, Title: "open", TotalScore: intPtr(50)})

	if _, err := svc.Public(context.Background(), draft.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected draft to be hidden, got %v", err)
	}
	public, err := svc.Public(context.Background(), open.ID)
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if public.CompanyName != "오픈랩" || public.Title != "open" {
		t.Fatalf("unexpected public posting: %+v", public)
	}
}

package companies

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	company := Company{ID: "c-1", Name: "오픈랩", Industry: "IT", CreatedAt: time.Now().UTC()}

	mock.ExpectExec("INSERT INTO companies").
		WithArgs(company.ID, company.Name, nil, "IT", nil, nil, company.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), company); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM companies WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "business_number", "industry", "description", "website", "created_at"}).
		AddRow("c-1", "A", nil, "IT", nil, nil, now).
		AddRow("c-2", "B", "123-45-67890", nil, "desc", "https://b.example", now)
	mock.ExpectQuery("SELECT (.+) FROM companies ORDER BY").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(got))
	}
	if got[0].Industry != "IT" || got[0].BusinessNumber != "" {
		t.Fatalf("unexpected first company: %+v", got[0])
	}
	if got[1].Website != "https://b.example" {
		t.Fatalf("unexpected website: %q", got[1].Website)
	}
}

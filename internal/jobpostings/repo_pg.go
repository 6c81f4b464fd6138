package jobpostings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"recruit-backend/internal/contract"
)

// PGRepo implements Repo using Postgres. Question lists live in jsonb columns.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, p JobPosting) error {
	resumeQuestions, coverQuestions, err := encodeQuestions(p)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO job_postings (
    id,
    company_id,
    title,
    description,
    status,
    total_score,
    passing_score,
    resume_questions,
    cover_letter_questions,
    start_date,
    end_date,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.DB.ExecContext(ctx, query,
		p.ID,
		p.CompanyID,
		p.Title,
		nullString(p.Description),
		p.Status,
		nullInt(p.TotalScore),
		nullInt(p.PassingScore),
		resumeQuestions,
		coverQuestions,
		p.StartDate,
		p.EndDate,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, p JobPosting) error {
	resumeQuestions, coverQuestions, err := encodeQuestions(p)
	if err != nil {
		return err
	}
	const query = `
UPDATE job_postings
SET company_id = $2,
    title = $3,
    description = $4,
    status = $5,
    total_score = $6,
    passing_score = $7,
    resume_questions = $8,
    cover_letter_questions = $9,
    start_date = $10,
    end_date = $11,
    updated_at = $12
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.CompanyID,
		p.Title,
		nullString(p.Description),
		p.Status,
		nullInt(p.TotalScore),
		nullInt(p.PassingScore),
		resumeQuestions,
		coverQuestions,
		p.StartDate,
		p.EndDate,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

const selectColumns = `id, company_id, title, description, status, total_score, passing_score,
    resume_questions, cover_letter_questions, start_date, end_date, created_at, updated_at`

func (r *PGRepo) Get(ctx context.Context, id string) (JobPosting, error) {
	query := `SELECT ` + selectColumns + ` FROM job_postings WHERE id = $1`
	posting, err := scanPosting(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return JobPosting{}, ErrNotFound
	}
	return posting, err
}

func (r *PGRepo) List(ctx context.Context) ([]JobPosting, error) {
	query := `SELECT ` + selectColumns + ` FROM job_postings ORDER BY created_at DESC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []JobPosting{}
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, posting)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPosting(row scanner) (JobPosting, error) {
	var p JobPosting
	var description sql.NullString
	var totalScore, passingScore sql.NullInt64
	var resumeQuestions, coverQuestions []byte
	var startDate, endDate sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.Title,
		&description,
		&p.Status,
		&totalScore,
		&passingScore,
		&resumeQuestions,
		&coverQuestions,
		&startDate,
		&endDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return JobPosting{}, err
	}
	p.Description = description.String
	if totalScore.Valid {
		v := int(totalScore.Int64)
		p.TotalScore = &v
	}
	if passingScore.Valid {
		v := int(passingScore.Int64)
		p.PassingScore = &v
	}
	if len(resumeQuestions) > 0 {
		if err := json.Unmarshal(resumeQuestions, &p.ResumeQuestions); err != nil {
			return JobPosting{}, fmt.Errorf("decode resume_questions: %w", err)
		}
	}
	if len(coverQuestions) > 0 {
		if err := json.Unmarshal(coverQuestions, &p.CoverLetterQuestions); err != nil {
			return JobPosting{}, fmt.Errorf("decode cover_letter_questions: %w", err)
		}
	}
	if startDate.Valid {
		p.StartDate = &startDate.Time
	}
	if endDate.Valid {
		p.EndDate = &endDate.Time
	}
	return p, nil
}

func encodeQuestions(p JobPosting) ([]byte, []byte, error) {
	resumeQuestions := p.ResumeQuestions
	if resumeQuestions == nil {
		resumeQuestions = []contract.ResumeQuestion{}
	}
	coverQuestions := p.CoverLetterQuestions
	if coverQuestions == nil {
		coverQuestions = []contract.CoverLetterQuestion{}
	}
	rq, err := json.Marshal(resumeQuestions)
	if err != nil {
		return nil, nil, fmt.Errorf("encode resume_questions: %w", err)
	}
	cq, err := json.Marshal(coverQuestions)
	if err != nil {
		return nil, nil, fmt.Errorf("encode cover_letter_questions: %w", err)
	}
	return rq, cq, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

var _ Repo = (*PGRepo)(nil)

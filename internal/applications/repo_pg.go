package applications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"recruit-backend/internal/contract"
)

// PGRepo implements Repo using Postgres. Answers and the evaluator output are
// stored as jsonb.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	resumeAnswers, coverAnswers, result, err := encodeDocuments(app)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO applications (
    id,
    job_posting_id,
    applicant_name,
    applicant_email,
    applicant_phone,
    status,
    total_score,
    evaluation_comment,
    evaluated_at,
    resume_answers,
    cover_letter_answers,
    evaluation_result,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.DB.ExecContext(ctx, query,
		app.ID,
		app.JobPostingID,
		app.Applicant.Name,
		app.Applicant.Email,
		nullString(app.Applicant.Phone),
		app.Status,
		nullFloat(app.TotalScore),
		nullString(app.EvaluationComment),
		app.EvaluatedAt,
		resumeAnswers,
		coverAnswers,
		nullJSON(result),
		app.CreatedAt,
		app.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, app Application) error {
	_, _, result, err := encodeDocuments(app)
	if err != nil {
		return err
	}
	const query = `
UPDATE applications
SET status = $2,
    total_score = $3,
    evaluation_comment = $4,
    evaluated_at = $5,
    evaluation_result = $6,
    updated_at = $7
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.Status,
		nullFloat(app.TotalScore),
		nullString(app.EvaluationComment),
		app.EvaluatedAt,
		nullJSON(result),
		app.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

const selectColumns = `id, job_posting_id, applicant_name, applicant_email, applicant_phone, status,
    total_score, evaluation_comment, evaluated_at, resume_answers, cover_letter_answers,
    evaluation_result, created_at, updated_at`

func (r *PGRepo) Get(ctx context.Context, id string) (Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Application{}, ErrNotFound
	}
	return app, err
}

func (r *PGRepo) List(ctx context.Context) ([]Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications ORDER BY created_at DESC, id ASC`
	return r.query(ctx, query)
}

func (r *PGRepo) ListByPosting(ctx context.Context, postingID string) ([]Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications WHERE job_posting_id = $1 ORDER BY created_at DESC, id ASC`
	return r.query(ctx, query, postingID)
}

func (r *PGRepo) query(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(row scanner) (Application, error) {
	var app Application
	var phone, comment sql.NullString
	var totalScore sql.NullFloat64
	var evaluatedAt sql.NullTime
	var resumeAnswers, coverAnswers, result []byte
	if err := row.Scan(
		&app.ID,
		&app.JobPostingID,
		&app.Applicant.Name,
		&app.Applicant.Email,
		&phone,
		&app.Status,
		&totalScore,
		&comment,
		&evaluatedAt,
		&resumeAnswers,
		&coverAnswers,
		&result,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return Application{}, err
	}
	app.Applicant.Phone = phone.String
	app.EvaluationComment = comment.String
	if totalScore.Valid {
		v := totalScore.Float64
		app.TotalScore = &v
	}
	if evaluatedAt.Valid {
		app.EvaluatedAt = &evaluatedAt.Time
	}
	if len(resumeAnswers) > 0 {
		if err := json.Unmarshal(resumeAnswers, &app.ResumeAnswers); err != nil {
			return Application{}, fmt.Errorf("decode resume_answers: %w", err)
		}
	}
	if len(coverAnswers) > 0 {
		if err := json.Unmarshal(coverAnswers, &app.CoverLetterAnswers); err != nil {
			return Application{}, fmt.Errorf("decode cover_letter_answers: %w", err)
		}
	}
	if len(result) > 0 {
		var decoded contract.EvaluationResult
		if err := json.Unmarshal(result, &decoded); err != nil {
			return Application{}, fmt.Errorf("decode evaluation_result: %w", err)
		}
		app.EvaluationResult = &decoded
	}
	return app, nil
}

// encodeDocuments marshals the jsonb columns. A missing evaluation result is
// stored as SQL NULL.
func encodeDocuments(app Application) (resume, cover, result []byte, err error) {
	resumeAnswers := app.ResumeAnswers
	if resumeAnswers == nil {
		resumeAnswers = []contract.AnswerRecord{}
	}
	coverAnswers := app.CoverLetterAnswers
	if coverAnswers == nil {
		coverAnswers = []contract.AnswerRecord{}
	}
	if resume, err = json.Marshal(resumeAnswers); err != nil {
		return nil, nil, nil, fmt.Errorf("encode resume_answers: %w", err)
	}
	if cover, err = json.Marshal(coverAnswers); err != nil {
		return nil, nil, nil, fmt.Errorf("encode cover_letter_answers: %w", err)
	}
	if app.EvaluationResult != nil {
		if result, err = json.Marshal(app.EvaluationResult); err != nil {
			return nil, nil, nil, fmt.Errorf("encode evaluation_result: %w", err)
		}
	}
	return resume, cover, result, nil
}

func nullJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

var _ Repo = (*PGRepo)(nil)

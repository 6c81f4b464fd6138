package companies

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, company Company) error {
	const query = `
INSERT INTO companies (id, name, business_number, industry, description, website, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		company.ID,
		company.Name,
		nullString(company.BusinessNumber),
		nullString(company.Industry),
		nullString(company.Description),
		nullString(company.Website),
		company.CreatedAt,
	)
	return err
}

const selectColumns = `id, name, business_number, industry, description, website, created_at`

func (r *PGRepo) Get(ctx context.Context, id string) (Company, error) {
	query := `SELECT ` + selectColumns + ` FROM companies WHERE id = $1`
	company, err := scanCompany(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Company{}, ErrNotFound
	}
	return company, err
}

func (r *PGRepo) List(ctx context.Context) ([]Company, error) {
	query := `SELECT ` + selectColumns + ` FROM companies ORDER BY created_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, company)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompany(row scanner) (Company, error) {
	var company Company
	var businessNumber, industry, description, website sql.NullString
	if err := row.Scan(
		&company.ID,
		&company.Name,
		&businessNumber,
		&industry,
		&description,
		&website,
		&company.CreatedAt,
	); err != nil {
		return Company{}, err
	}
	company.BusinessNumber = businessNumber.String
	company.Industry = industry.String
	company.Description = description.String
	company.Website = website.String
	return company, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ Repo = (*PGRepo)(nil)

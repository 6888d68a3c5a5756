package companies

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/shared"
)

const entity = "company"

// Repository provides PostgreSQL backed persistence for companies.
// Every constraint violation is translated to a domain error kind at this
// boundary; callers never see raw driver errors for expected conflicts.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, code string) (Company, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, code, name, description string) (Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository over the given pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("companies: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Code, &s.Name); err != nil {
			return nil, fmt.Errorf("companies: list scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repository) Get(ctx context.Context, code string) (Company, error) {
	var c Company
	err := r.pool.QueryRow(ctx,
		`SELECT code, name, COALESCE(description, '') FROM companies WHERE code = $1`,
		code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if db.IsNoRows(err) {
			return Company{}, shared.NotFound(entity, code)
		}
		return Company{}, fmt.Errorf("companies: get %s: %w", code, err)
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, company Company) (Company, error) {
	var c Company
	err := r.pool.QueryRow(ctx,
		`INSERT INTO companies (code, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING code, name, COALESCE(description, '')`,
		company.Code, company.Name, company.Description,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if v := db.Classify(err); v != nil && v.Kind == db.UniqueViolation {
			return Company{}, shared.DuplicateKey(entity, company.Code)
		}
		return Company{}, fmt.Errorf("companies: create %s: %w", company.Code, err)
	}
	return c, nil
}

func (r *repository) Update(ctx context.Context, code, name, description string) (Company, error) {
	var c Company
	err := r.pool.QueryRow(ctx,
		`UPDATE companies SET name = $1, description = $2
		 WHERE code = $3
		 RETURNING code, name, COALESCE(description, '')`,
		name, description, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if db.IsNoRows(err) {
			return Company{}, shared.NotFound(entity, code)
		}
		return Company{}, fmt.Errorf("companies: update %s: %w", code, err)
	}
	return c, nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	var deleted string
	err := r.pool.QueryRow(ctx,
		`DELETE FROM companies WHERE code = $1 RETURNING code`,
		code,
	).Scan(&deleted)
	if err != nil {
		if db.IsNoRows(err) {
			return shared.NotFound(entity, code)
		}
		// Invoices still reference this company: the delete is blocked
		// rather than cascading, so no invoice is ever left dangling.
		if v := db.Classify(err); v != nil && v.Kind == db.ForeignKeyViolation {
			return shared.ReferentialConflict(entity, code)
		}
		return fmt.Errorf("companies: delete %s: %w", code, err)
	}
	return nil
}

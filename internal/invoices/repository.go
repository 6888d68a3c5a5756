package invoices

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime/biztime/internal/companies"
	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/shared"
)

const entity = "invoice"

// Repository provides PostgreSQL backed persistence for invoices,
// including the enrichment join against the companies repository.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (Detail, error)
	Create(ctx context.Context, compCode string, amt float64) (Invoice, error)
	Update(ctx context.Context, id int64, amt float64) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool      *pgxpool.Pool
	companies companies.Repository
}

// NewRepository constructs a Repository over the given pool. The company
// repository resolves the owning company during Get.
func NewRepository(pool *pgxpool.Pool, companies companies.Repository) Repository {
	return &repository{pool: pool, companies: companies}
}

// List returns invoices ordered by ascending id. The ordering is part of
// the contract: repeated calls observe the same sequence.
func (r *repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("invoices: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.CompCode); err != nil {
			return nil, fmt.Errorf("invoices: list scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Detail, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, comp_code, amt, paid, add_date, paid_date
		 FROM invoices WHERE id = $1`,
		id,
	)
	inv, err := scanInvoice(row)
	if err != nil {
		if db.IsNoRows(err) {
			return Detail{}, shared.NotFound(entity, idString(id))
		}
		return Detail{}, fmt.Errorf("invoices: get %d: %w", id, err)
	}

	detail := Detail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}

	// Referential integrity makes a missing company structurally
	// impossible; if the row is gone anyway the invoice is still
	// returned, with the company left absent.
	company, err := r.companies.Get(ctx, inv.CompCode)
	switch {
	case err == nil:
		detail.Company = &company
	case shared.IsNotFound(err):
	default:
		return Detail{}, fmt.Errorf("invoices: get %d company: %w", id, err)
	}

	return detail, nil
}

func (r *repository) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO invoices (comp_code, amt)
		 VALUES ($1, $2)
		 RETURNING id, comp_code, amt, paid, add_date, paid_date`,
		compCode, amt,
	)
	inv, err := scanInvoice(row)
	if err != nil {
		// The central translation contract: a foreign-key violation on
		// comp_code means the referenced company does not exist, and the
		// caller must see that as company-not-found, never as a raw
		// storage failure.
		if v := db.Classify(err); v != nil && v.Kind == db.ForeignKeyViolation {
			return Invoice{}, shared.NotFound("company", compCode)
		}
		return Invoice{}, fmt.Errorf("invoices: create for %s: %w", compCode, err)
	}
	return inv, nil
}

func (r *repository) Update(ctx context.Context, id int64, amt float64) (Invoice, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE invoices SET amt = $1
		 WHERE id = $2
		 RETURNING id, comp_code, amt, paid, add_date, paid_date`,
		amt, id,
	)
	inv, err := scanInvoice(row)
	if err != nil {
		if db.IsNoRows(err) {
			return Invoice{}, shared.NotFound(entity, idString(id))
		}
		return Invoice{}, fmt.Errorf("invoices: update %d: %w", id, err)
	}
	return inv, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.pool.QueryRow(ctx,
		`DELETE FROM invoices WHERE id = $1 RETURNING id`,
		id,
	).Scan(&deleted)
	if err != nil {
		if db.IsNoRows(err) {
			return shared.NotFound(entity, idString(id))
		}
		return fmt.Errorf("invoices: delete %d: %w", id, err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	var amt pgtype.Numeric
	var addDate, paidDate pgtype.Date

	if err := row.Scan(&inv.ID, &inv.CompCode, &amt, &inv.Paid, &addDate, &paidDate); err != nil {
		return Invoice{}, err
	}
	if amt.Valid {
		f, err := amt.Float64Value()
		if err != nil {
			return Invoice{}, fmt.Errorf("invoices: amt: %w", err)
		}
		inv.Amt = f.Float64
	}
	if addDate.Valid {
		inv.AddDate = addDate.Time
	}
	if paidDate.Valid {
		t := paidDate.Time
		inv.PaidDate = &t
	}
	return inv, nil
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

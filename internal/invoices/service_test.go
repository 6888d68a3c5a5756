package invoices

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/companies"
	"github.com/biztime/biztime/internal/shared"
)

// memoryRepo implements Repository in memory with the same error-kind
// contract as the Postgres implementation, including the foreign-key
// translation on create.
type memoryRepo struct {
	companies map[string]companies.Company
	invoices  map[int64]Invoice
	nextID    int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		companies: make(map[string]companies.Company),
		invoices:  make(map[int64]Invoice),
	}
}

func (r *memoryRepo) addCompany(c companies.Company) {
	r.companies[c.Code] = c
}

func (r *memoryRepo) List(ctx context.Context) ([]Summary, error) {
	var out []Summary
	for _, inv := range r.invoices {
		out = append(out, Summary{ID: inv.ID, CompCode: inv.CompCode})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Detail, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return Detail{}, shared.NotFound("invoice", idString(id))
	}
	detail := Detail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
	if c, ok := r.companies[inv.CompCode]; ok {
		detail.Company = &c
	}
	return detail, nil
}

func (r *memoryRepo) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	if _, ok := r.companies[compCode]; !ok {
		return Invoice{}, shared.NotFound("company", compCode)
	}
	r.nextID++
	inv := Invoice{
		ID:       r.nextID,
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	r.invoices[inv.ID] = inv
	return inv, nil
}

func (r *memoryRepo) Update(ctx context.Context, id int64, amt float64) (Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return Invoice{}, shared.NotFound("invoice", idString(id))
	}
	inv.Amt = amt
	r.invoices[id] = inv
	return inv, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.invoices[id]; !ok {
		return shared.NotFound("invoice", idString(id))
	}
	delete(r.invoices, id)
	return nil
}

func TestServiceCreateAssignsDefaults(t *testing.T) {
	repo := newMemoryRepo()
	repo.addCompany(companies.Company{Code: "apple", Name: "Apple"})
	svc := NewService(repo)
	ctx := context.Background()

	inv, err := svc.Create(ctx, "apple", 100)
	require.NoError(t, err)
	require.Equal(t, int64(1), inv.ID)
	require.Equal(t, "apple", inv.CompCode)
	require.Equal(t, float64(100), inv.Amt)
	require.False(t, inv.Paid)
	require.Nil(t, inv.PaidDate)
	require.False(t, inv.AddDate.IsZero())
}

func TestServiceCreateMissingCompanyIsNotFound(t *testing.T) {
	repo := newMemoryRepo()
	repo.addCompany(companies.Company{Code: "apple", Name: "Apple"})
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "ibm", 50)
	var nf *shared.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "company", nf.Entity)
	require.Equal(t, "ibm", nf.ID)
}

func TestServiceGetEmbedsOwningCompany(t *testing.T) {
	repo := newMemoryRepo()
	repo.addCompany(companies.Company{Code: "apple", Name: "Apple", Description: "iphones"})
	svc := NewService(repo)
	ctx := context.Background()

	inv, err := svc.Create(ctx, "apple", 100)
	require.NoError(t, err)

	detail, err := svc.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Company)
	require.Equal(t, "apple", detail.Company.Code)
	require.Equal(t, inv.Amt, detail.Amt)
}

func TestServiceGetDanglingCompanyLeavesFieldAbsent(t *testing.T) {
	repo := newMemoryRepo()
	repo.invoices[5] = Invoice{ID: 5, CompCode: "vanished", Amt: 10}
	svc := NewService(repo)

	detail, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	require.Nil(t, detail.Company)
}

func TestServiceListSortedByID(t *testing.T) {
	repo := newMemoryRepo()
	// Insertion order deliberately scrambled.
	repo.invoices[3] = Invoice{ID: 3, CompCode: "apple"}
	repo.invoices[1] = Invoice{ID: 1, CompCode: "ibm"}
	repo.invoices[2] = Invoice{ID: 2, CompCode: "apple"}
	svc := NewService(repo)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Summary{
		{ID: 1, CompCode: "ibm"},
		{ID: 2, CompCode: "apple"},
		{ID: 3, CompCode: "apple"},
	}, list)
}

func TestServiceUpdateOnlyAmt(t *testing.T) {
	repo := newMemoryRepo()
	repo.addCompany(companies.Company{Code: "apple", Name: "Apple"})
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "apple", 100)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, 250)
	require.NoError(t, err)
	require.Equal(t, float64(250), updated.Amt)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CompCode, updated.CompCode)
	require.Equal(t, created.AddDate, updated.AddDate)
}

func TestServiceNonPositiveIDIsNotFound(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	// Generated keys start at 1, so 0 and negatives are necessarily
	// absent and must surface as not-found, never as a server error.
	_, err := svc.Get(ctx, 0)
	requireInvoiceNotFound(t, err, "0")

	_, err = svc.Update(ctx, -3, 10)
	requireInvoiceNotFound(t, err, "-3")

	err = svc.Delete(ctx, 0)
	requireInvoiceNotFound(t, err, "0")
}

func TestServiceMissingInvoiceFailsNotFound(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Get(ctx, 42)
	requireInvoiceNotFound(t, err, "42")

	_, err = svc.Update(ctx, 42, 10)
	requireInvoiceNotFound(t, err, "42")

	err = svc.Delete(ctx, 42)
	requireInvoiceNotFound(t, err, "42")
}

func TestServiceDeleteInvoice(t *testing.T) {
	repo := newMemoryRepo()
	repo.addCompany(companies.Company{Code: "apple", Name: "Apple"})
	svc := NewService(repo)
	ctx := context.Background()

	inv, err := svc.Create(ctx, "apple", 100)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, inv.ID))

	_, err = svc.Get(ctx, inv.ID)
	requireInvoiceNotFound(t, err, idString(inv.ID))
}

func requireInvoiceNotFound(t *testing.T, err error, id string) {
	t.Helper()
	var nf *shared.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "invoice", nf.Entity)
	require.Equal(t, id, nf.ID)
}

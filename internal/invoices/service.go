package invoices

import (
	"context"

	"github.com/biztime/biztime/internal/shared"
)

// Service wraps the repository. Non-positive ids are syntactically valid
// but can never match a generated key, so they short-circuit to the same
// not-found outcome the store would report, without a round-trip.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	if id <= 0 {
		return Detail{}, shared.NotFound(entity, idString(id))
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	// No existence pre-check: the foreign key decides whether the
	// company exists, and the repository translates the violation.
	return s.repo.Create(ctx, compCode, amt)
}

func (s *Service) Update(ctx context.Context, id int64, amt float64) (Invoice, error) {
	if id <= 0 {
		return Invoice{}, shared.NotFound(entity, idString(id))
	}
	return s.repo.Update(ctx, id, amt)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.NotFound(entity, idString(id))
	}
	return s.repo.Delete(ctx, id)
}

package companies

import (
	"context"
	"strings"

	"github.com/biztime/biztime/internal/shared"
)

// Service wraps the repository with input guards. A blank lookup code can
// never match a row, so it surfaces the same not-found outcome the store
// would report; blank required fields on writes are malformed input. All
// consistency rules live in the store and are translated at the
// repository boundary.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, code string) (Company, error) {
	if strings.TrimSpace(code) == "" {
		return Company{}, shared.NotFound(entity, code)
	}
	return s.repo.Get(ctx, code)
}

func (s *Service) Create(ctx context.Context, company Company) (Company, error) {
	if strings.TrimSpace(company.Code) == "" {
		return Company{}, shared.Validation("company code is required")
	}
	if strings.TrimSpace(company.Name) == "" {
		return Company{}, shared.Validation("company name is required")
	}
	return s.repo.Create(ctx, company)
}

func (s *Service) Update(ctx context.Context, code, name, description string) (Company, error) {
	if strings.TrimSpace(code) == "" {
		return Company{}, shared.NotFound(entity, code)
	}
	if strings.TrimSpace(name) == "" {
		return Company{}, shared.Validation("company name is required")
	}
	return s.repo.Update(ctx, code, name, description)
}

func (s *Service) Delete(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return shared.NotFound(entity, code)
	}
	return s.repo.Delete(ctx, code)
}

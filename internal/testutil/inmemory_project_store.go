package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/project"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// InMemoryProjectStore implements project.Repository
type InMemoryProjectStore struct {
	*InMemoryStore[*project.Project]
}

func NewInMemoryProjectStore() *InMemoryProjectStore {
	return &InMemoryProjectStore{
		InMemoryStore: NewInMemoryStore[*project.Project](),
	}
}

func copyProject(p *project.Project) *project.Project {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func (s *InMemoryProjectStore) Create(ctx context.Context, p *project.Project) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyProject(p))
}

func (s *InMemoryProjectStore) Get(ctx context.Context, id string) (*project.Project, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("project not found").
			WithHint("The requested project was not found").
			Mark(ierr.ErrNotFound)
	}
	return copyProject(p), nil
}

func (s *InMemoryProjectStore) Update(ctx context.Context, p *project.Project) error {
	return s.InMemoryStore.Update(ctx, p.ID, copyProject(p))
}

func (s *InMemoryProjectStore) ListByOrder(ctx context.Context, orderID string) ([]*project.Project, error) {
	items, err := s.InMemoryStore.List(ctx, func(ctx context.Context, p *project.Project) bool {
		return p.SaleOrderID == orderID && p.TenantID == types.GetTenantID(ctx)
	}, func(i, j *project.Project) bool {
		return i.Name < j.Name
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(p *project.Project, _ int) *project.Project {
		return copyProject(p)
	}), nil
}

package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/uom"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// InMemoryUomStore implements uom.Repository
type InMemoryUomStore struct {
	*InMemoryStore[*uom.UnitOfMeasure]
}

func NewInMemoryUomStore() *InMemoryUomStore {
	return &InMemoryUomStore{
		InMemoryStore: NewInMemoryStore[*uom.UnitOfMeasure](),
	}
}

func copyUom(u *uom.UnitOfMeasure) *uom.UnitOfMeasure {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

// Seed inserts a unit without going through a service flow
func (s *InMemoryUomStore) Seed(ctx context.Context, u *uom.UnitOfMeasure) error {
	return s.InMemoryStore.Create(ctx, u.ID, copyUom(u))
}

func (s *InMemoryUomStore) Get(ctx context.Context, id string) (*uom.UnitOfMeasure, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("unit of measure not found").
			WithHint("The requested unit of measure was not found").
			Mark(ierr.ErrNotFound)
	}
	return copyUom(u), nil
}

func (s *InMemoryUomStore) GetByLookupKey(ctx context.Context, key string) (*uom.UnitOfMeasure, error) {
	items, err := s.InMemoryStore.List(ctx, func(ctx context.Context, u *uom.UnitOfMeasure) bool {
		return u.LookupKey == key && u.TenantID == types.GetTenantID(ctx)
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ierr.NewError("unit of measure not found").
			WithHint("The requested unit of measure was not found").
			WithReportableDetails(map[string]any{
				"lookup_key": key,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyUom(items[0]), nil
}

func (s *InMemoryUomStore) List(ctx context.Context) ([]*uom.UnitOfMeasure, error) {
	items, err := s.InMemoryStore.List(ctx, func(ctx context.Context, u *uom.UnitOfMeasure) bool {
		return u.TenantID == types.GetTenantID(ctx)
	}, func(i, j *uom.UnitOfMeasure) bool {
		return i.Name < j.Name
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(u *uom.UnitOfMeasure, _ int) *uom.UnitOfMeasure {
		return copyUom(u)
	}), nil
}

package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// InMemoryOrderStore implements order.Repository. Lines live in the line
// store; orders are hydrated with them on read the way the SQL repository
// does.
type InMemoryOrderStore struct {
	*InMemoryStore[*order.Order]
	lines *InMemoryOrderLineStore
}

func NewInMemoryOrderStore(lines *InMemoryOrderLineStore) *InMemoryOrderStore {
	return &InMemoryOrderStore{
		InMemoryStore: NewInMemoryStore[*order.Order](),
		lines:         lines,
	}
}

func copyOrder(o *order.Order) *order.Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Lines = nil
	return &cp
}

func (s *InMemoryOrderStore) Create(ctx context.Context, o *order.Order) error {
	if err := s.InMemoryStore.Create(ctx, o.ID, copyOrder(o)); err != nil {
		return err
	}
	for _, line := range o.Lines {
		if err := s.lines.Create(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *InMemoryOrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(order.ErrOrderNotFound).
			WithHint("The requested order was not found").
			Mark(ierr.ErrNotFound)
	}

	cp := copyOrder(o)
	cp.Lines, err = s.lines.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return cp, nil
}

func (s *InMemoryOrderStore) Update(ctx context.Context, o *order.Order) error {
	return s.InMemoryStore.Update(ctx, o.ID, copyOrder(o))
}

func (s *InMemoryOrderStore) List(ctx context.Context) ([]*order.Order, error) {
	items, err := s.InMemoryStore.List(ctx, func(ctx context.Context, o *order.Order) bool {
		return o.TenantID == types.GetTenantID(ctx)
	}, func(i, j *order.Order) bool {
		return i.Name < j.Name
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(o *order.Order, _ int) *order.Order {
		return copyOrder(o)
	}), nil
}

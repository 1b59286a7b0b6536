package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// InMemoryOrderLineStore implements order.LineRepository
type InMemoryOrderLineStore struct {
	*InMemoryStore[*order.Line]
	orders *InMemoryOrderStore
}

func NewInMemoryOrderLineStore() *InMemoryOrderLineStore {
	return &InMemoryOrderLineStore{
		InMemoryStore: NewInMemoryStore[*order.Line](),
	}
}

// AttachOrderStore wires the order store the state filter of
// OrderIDsWithServiceLines reads from
func (s *InMemoryOrderLineStore) AttachOrderStore(orders *InMemoryOrderStore) {
	s.orders = orders
}

func copyLine(l *order.Line) *order.Line {
	if l == nil {
		return nil
	}
	cp := *l
	return &cp
}

func (s *InMemoryOrderLineStore) Create(ctx context.Context, l *order.Line) error {
	return s.InMemoryStore.Create(ctx, l.ID, copyLine(l))
}

func (s *InMemoryOrderLineStore) Get(ctx context.Context, id string) (*order.Line, error) {
	l, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(order.ErrLineNotFound).
			WithHint("The requested order line was not found").
			Mark(ierr.ErrNotFound)
	}
	return copyLine(l), nil
}

func (s *InMemoryOrderLineStore) Update(ctx context.Context, l *order.Line) error {
	return s.InMemoryStore.Update(ctx, l.ID, copyLine(l))
}

func (s *InMemoryOrderLineStore) ListByOrder(ctx context.Context, orderID string) ([]*order.Line, error) {
	items, err := s.InMemoryStore.List(ctx, func(ctx context.Context, l *order.Line) bool {
		return l.OrderID == orderID && l.TenantID == types.GetTenantID(ctx)
	}, func(i, j *order.Line) bool {
		return i.Sequence < j.Sequence
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(l *order.Line, _ int) *order.Line {
		return copyLine(l)
	}), nil
}

func (s *InMemoryOrderLineStore) OrderIDsWithServiceLines(ctx context.Context, orderIDs []string, states []types.OrderState) ([]string, error) {
	lines, err := s.InMemoryStore.List(ctx, func(ctx context.Context, l *order.Line) bool {
		return lo.Contains(orderIDs, l.OrderID) && l.IsService && l.TenantID == types.GetTenantID(ctx)
	}, nil)
	if err != nil {
		return nil, err
	}

	var result []string
	seen := map[string]bool{}
	for _, l := range lines {
		if seen[l.OrderID] {
			continue
		}
		seen[l.OrderID] = true

		if s.orders != nil && len(states) > 0 {
			o, err := s.orders.Get(ctx, l.OrderID)
			if err != nil {
				continue
			}
			if !lo.Contains(states, o.State) {
				continue
			}
		}
		result = append(result, l.OrderID)
	}
	return result, nil
}

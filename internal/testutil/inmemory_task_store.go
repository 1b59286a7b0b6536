package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/project"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// InMemoryTaskStore implements project.TaskRepository. The line store
// resolves which order funds a task.
type InMemoryTaskStore struct {
	*InMemoryStore[*project.Task]
	lines *InMemoryOrderLineStore
}

func NewInMemoryTaskStore(lines *InMemoryOrderLineStore) *InMemoryTaskStore {
	return &InMemoryTaskStore{
		InMemoryStore: NewInMemoryStore[*project.Task](),
		lines:         lines,
	}
}

func copyTask(t *project.Task) *project.Task {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func (s *InMemoryTaskStore) Create(ctx context.Context, t *project.Task) error {
	return s.InMemoryStore.Create(ctx, t.ID, copyTask(t))
}

func (s *InMemoryTaskStore) Get(ctx context.Context, id string) (*project.Task, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("task not found").
			WithHint("The requested task was not found").
			Mark(ierr.ErrNotFound)
	}
	return copyTask(t), nil
}

func (s *InMemoryTaskStore) Update(ctx context.Context, t *project.Task) error {
	return s.InMemoryStore.Update(ctx, t.ID, copyTask(t))
}

func (s *InMemoryTaskStore) ListByOrder(ctx context.Context, orderID string) ([]*project.Task, error) {
	orderLines, err := s.lines.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(orderLines))
	for _, l := range orderLines {
		ids = append(ids, l.ID)
	}

	items, err := s.InMemoryStore.List(ctx, func(ctx context.Context, t *project.Task) bool {
		return lo.Contains(ids, t.SaleLineID) && t.TenantID == types.GetTenantID(ctx)
	}, func(i, j *project.Task) bool {
		return i.Name < j.Name
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(t *project.Task, _ int) *project.Task {
		return copyTask(t)
	}), nil
}

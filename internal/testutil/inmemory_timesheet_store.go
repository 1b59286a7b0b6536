package testutil

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/timesheet"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// InMemoryTimesheetStore implements timesheet.Repository
type InMemoryTimesheetStore struct {
	*InMemoryStore[*timesheet.Entry]
}

func NewInMemoryTimesheetStore() *InMemoryTimesheetStore {
	return &InMemoryTimesheetStore{
		InMemoryStore: NewInMemoryStore[*timesheet.Entry](),
	}
}

func copyEntry(e *timesheet.Entry) *timesheet.Entry {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

func (s *InMemoryTimesheetStore) Create(ctx context.Context, e *timesheet.Entry) error {
	return s.InMemoryStore.Create(ctx, e.ID, copyEntry(e))
}

func (s *InMemoryTimesheetStore) Get(ctx context.Context, id string) (*timesheet.Entry, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("timesheet entry not found").
			WithHint("The requested timesheet entry was not found").
			Mark(ierr.ErrNotFound)
	}
	return copyEntry(e), nil
}

func (s *InMemoryTimesheetStore) Update(ctx context.Context, e *timesheet.Entry) error {
	return s.InMemoryStore.Update(ctx, e.ID, copyEntry(e))
}

func (s *InMemoryTimesheetStore) ListByLine(ctx context.Context, lineID string) ([]*timesheet.Entry, error) {
	items, err := s.InMemoryStore.List(ctx, func(ctx context.Context, e *timesheet.Entry) bool {
		return e.SOLineID == lineID && e.TenantID == types.GetTenantID(ctx)
	}, func(i, j *timesheet.Entry) bool {
		return i.Date.Before(j.Date)
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(e *timesheet.Entry, _ int) *timesheet.Entry {
		return copyEntry(e)
	}), nil
}

func (s *InMemoryTimesheetStore) DeliveredQtyByLine(ctx context.Context, lineIDs []string, start, end *time.Time) (map[string]decimal.Decimal, error) {
	entries, err := s.InMemoryStore.List(ctx, func(ctx context.Context, e *timesheet.Entry) bool {
		if !lo.Contains(lineIDs, e.SOLineID) || e.TenantID != types.GetTenantID(ctx) {
			return false
		}
		if e.InvoiceID != "" {
			return false
		}
		if start != nil && e.Date.Before(*start) {
			return false
		}
		if end != nil && e.Date.After(*end) {
			return false
		}
		return true
	}, nil)
	if err != nil {
		return nil, err
	}

	result := make(map[string]decimal.Decimal, len(lineIDs))
	for _, e := range entries {
		result[e.SOLineID] = result[e.SOLineID].Add(e.UnitAmount)
	}
	return result, nil
}

package testutil

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/company"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
)

// InMemoryCompanyStore implements company.Repository
type InMemoryCompanyStore struct {
	*InMemoryStore[*company.Company]
}

func NewInMemoryCompanyStore() *InMemoryCompanyStore {
	return &InMemoryCompanyStore{
		InMemoryStore: NewInMemoryStore[*company.Company](),
	}
}

func copyCompany(c *company.Company) *company.Company {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Seed inserts a company without going through a service flow
func (s *InMemoryCompanyStore) Seed(ctx context.Context, c *company.Company) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyCompany(c))
}

func (s *InMemoryCompanyStore) Get(ctx context.Context, id string) (*company.Company, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("company not found").
			WithHint("The requested company was not found").
			Mark(ierr.ErrNotFound)
	}
	return copyCompany(c), nil
}

func (s *InMemoryCompanyStore) Update(ctx context.Context, c *company.Company) error {
	return s.InMemoryStore.Update(ctx, c.ID, copyCompany(c))
}

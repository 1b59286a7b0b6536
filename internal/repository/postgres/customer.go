package postgres

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/customer"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type customerRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCustomerRepository(db *postgres.DB, logger *logger.Logger) customer.Repository {
	return &customerRepository{db: db, logger: logger}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (
			id, tenant_id, name, email, status,
			created_at, updated_at, created_by, updated_by
		)
		VALUES (
			:id, :tenant_id, :name, :email, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create customer").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	query := `
		SELECT * FROM customers
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	var c customer.Customer
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get customer").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("customer not found").
			WithHintf("Customer with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	return &c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers SET
			name = :name,
			email = :email,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update customer").
			Mark(ierr.ErrDatabase)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("customer not found").
			WithHintf("Customer with ID %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

package postgres

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type orderRepository struct {
	db       *postgres.DB
	lineRepo order.LineRepository
	logger   *logger.Logger
}

func NewOrderRepository(db *postgres.DB, lineRepo order.LineRepository, logger *logger.Logger) order.Repository {
	return &orderRepository{db: db, lineRepo: lineRepo, logger: logger}
}

func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	query := `
		INSERT INTO sale_orders (
			id, tenant_id, name, state, customer_id, company_id, project_id,
			client_order_ref, date_order, status,
			created_at, updated_at, created_by, updated_by
		)
		VALUES (
			:id, :tenant_id, :name, :state, :customer_id, :company_id, :project_id,
			:client_order_ref, :date_order, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`

	r.logger.Debugw("creating order", "order_id", o.ID, "name", o.Name)

	return r.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := r.db.NamedExecContext(ctx, query, o); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create order").
				Mark(ierr.ErrDatabase)
		}
		for _, line := range o.Lines {
			if err := r.lineRepo.Create(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	query := `
		SELECT * FROM sale_orders
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	var o order.Order
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get order").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.WithError(order.ErrOrderNotFound).
			WithHintf("Order with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&o); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	lines, err := r.lineRepo.ListByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines

	return &o, nil
}

func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	query := `
		UPDATE sale_orders SET
			name = :name,
			state = :state,
			customer_id = :customer_id,
			company_id = :company_id,
			project_id = :project_id,
			client_order_ref = :client_order_ref,
			date_order = :date_order,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	result, err := r.db.NamedExecContext(ctx, query, o)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update order").
			Mark(ierr.ErrDatabase)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.WithError(order.ErrOrderNotFound).
			WithHintf("Order with ID %s was not found", o.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *orderRepository) List(ctx context.Context) ([]*order.Order, error) {
	query := `
		SELECT * FROM sale_orders
		WHERE tenant_id = $1
		AND status = $2
		ORDER BY created_at DESC
	`

	var orders []*order.Order
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &orders, query, types.GetTenantID(ctx), types.StatusPublished); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list orders").
			Mark(ierr.ErrDatabase)
	}

	return orders, nil
}

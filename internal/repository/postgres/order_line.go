package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type orderLineRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewOrderLineRepository(db *postgres.DB, logger *logger.Logger) order.LineRepository {
	return &orderLineRepository{db: db, logger: logger}
}

func (r *orderLineRepository) Create(ctx context.Context, line *order.Line) error {
	query := `
		INSERT INTO sale_order_lines (
			id, tenant_id, order_id, product_id, sequence, qty, qty_delivered,
			qty_to_invoice, uom_id, is_expense, is_service, qty_delivered_method,
			invoice_status, upsell_warning_shown, project_id, task_id, status,
			created_at, updated_at, created_by, updated_by
		)
		VALUES (
			:id, :tenant_id, :order_id, :product_id, :sequence, :qty, :qty_delivered,
			:qty_to_invoice, :uom_id, :is_expense, :is_service, :qty_delivered_method,
			:invoice_status, :upsell_warning_shown, :project_id, :task_id, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, line)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create order line").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *orderLineRepository) Get(ctx context.Context, id string) (*order.Line, error) {
	query := `
		SELECT * FROM sale_order_lines
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	var line order.Line
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get order line").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.WithError(order.ErrLineNotFound).
			WithHintf("Order line with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&line); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	return &line, nil
}

func (r *orderLineRepository) Update(ctx context.Context, line *order.Line) error {
	query := `
		UPDATE sale_order_lines SET
			product_id = :product_id,
			sequence = :sequence,
			qty = :qty,
			qty_delivered = :qty_delivered,
			qty_to_invoice = :qty_to_invoice,
			uom_id = :uom_id,
			is_expense = :is_expense,
			is_service = :is_service,
			qty_delivered_method = :qty_delivered_method,
			invoice_status = :invoice_status,
			upsell_warning_shown = :upsell_warning_shown,
			project_id = :project_id,
			task_id = :task_id,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	result, err := r.db.NamedExecContext(ctx, query, line)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update order line").
			Mark(ierr.ErrDatabase)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.WithError(order.ErrLineNotFound).
			WithHintf("Order line with ID %s was not found", line.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *orderLineRepository) ListByOrder(ctx context.Context, orderID string) ([]*order.Line, error) {
	query := `
		SELECT * FROM sale_order_lines
		WHERE order_id = $1
		AND tenant_id = $2
		ORDER BY sequence ASC, id ASC
	`

	var lines []*order.Line
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &lines, query, orderID, types.GetTenantID(ctx)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list order lines").
			Mark(ierr.ErrDatabase)
	}

	return lines, nil
}

// OrderIDsWithServiceLines mirrors the host's group-by-aggregate read: one
// round trip regardless of the number of orders.
func (r *orderLineRepository) OrderIDsWithServiceLines(ctx context.Context, orderIDs []string, states []types.OrderState) ([]string, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT l.order_id
		FROM sale_order_lines l
		JOIN sale_orders o ON o.id = l.order_id
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id IN (?)
		AND o.state IN (?)
		AND p.type IN (?)
		AND l.tenant_id = ?
		GROUP BY l.order_id
	`, orderIDs, stateStrings(states), serviceLikeTypeStrings(), types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}
	query = r.db.Rebind(query)

	var ids []string
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to group order lines").
			Mark(ierr.ErrDatabase)
	}

	return ids, nil
}

func stateStrings(states []types.OrderState) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.String()
	}
	return out
}

// serviceLikeTypeStrings enumerates the classification codes accepted by
// types.ProductType.IsServiceLike, for use in SQL predicates.
func serviceLikeTypeStrings() []string {
	var out []string
	for _, t := range []types.ProductType{
		types.ProductTypeService,
		types.ProductTypeStorable,
		types.ProductTypeConsumable,
		types.ProductTypeCombo,
	} {
		if t.IsServiceLike() {
			out = append(out, t.String())
		}
	}
	return out
}

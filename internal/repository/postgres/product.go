package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type productRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return &productRepository{db: db, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, tenant_id, name, default_code, type, invoice_policy,
			service_type, service_tracking, expense_policy, project_template_id,
			uom_id, sale_ok, upsell_threshold, status,
			created_at, updated_at, created_by, updated_by
		)
		VALUES (
			:id, :tenant_id, :name, :default_code, :type, :invoice_policy,
			:service_type, :service_tracking, :expense_policy, :project_template_id,
			:uom_id, :sale_ok, :upsell_threshold, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`

	r.logger.Debugw("creating product", "product_id", p.ID, "tenant_id", p.TenantID)

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	query := `
		SELECT * FROM products
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	var p product.Product
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get product").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	return &p, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []string) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT * FROM products
		WHERE id IN (?)
		AND tenant_id = ?
	`, ids, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}
	query = r.db.Rebind(query)

	var products []*product.Product
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products SET
			name = :name,
			default_code = :default_code,
			type = :type,
			invoice_policy = :invoice_policy,
			service_type = :service_type,
			service_tracking = :service_tracking,
			expense_policy = :expense_policy,
			project_template_id = :project_template_id,
			uom_id = :uom_id,
			sale_ok = :sale_ok,
			upsell_threshold = :upsell_threshold,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update product").
			Mark(ierr.ErrDatabase)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *productRepository) List(ctx context.Context) ([]*product.Product, error) {
	query := `
		SELECT * FROM products
		WHERE tenant_id = $1
		AND status = $2
		ORDER BY created_at DESC
	`

	var products []*product.Product
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &products, query, types.GetTenantID(ctx), types.StatusPublished); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}

	return products, nil
}

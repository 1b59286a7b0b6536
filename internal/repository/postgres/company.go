package postgres

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/company"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type companyRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCompanyRepository(db *postgres.DB, logger *logger.Logger) company.Repository {
	return &companyRepository{db: db, logger: logger}
}

func (r *companyRepository) Get(ctx context.Context, id string) (*company.Company, error) {
	query := `
		SELECT * FROM companies
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	var c company.Company
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get company").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("company not found").
			WithHintf("Company with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	return &c, nil
}

func (r *companyRepository) Update(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies SET
			name = :name,
			project_time_uom_id = :project_time_uom_id,
			discount_product_id = :discount_product_id,
			deposit_product_id = :deposit_product_id,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update company").
			Mark(ierr.ErrDatabase)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("company not found").
			WithHintf("Company with ID %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

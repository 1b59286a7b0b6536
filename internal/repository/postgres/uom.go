package postgres

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/uom"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type uomRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewUomRepository(db *postgres.DB, logger *logger.Logger) uom.Repository {
	return &uomRepository{db: db, logger: logger}
}

func (r *uomRepository) Get(ctx context.Context, id string) (*uom.UnitOfMeasure, error) {
	query := `
		SELECT * FROM units_of_measure
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	return r.getOne(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
}

func (r *uomRepository) GetByLookupKey(ctx context.Context, key string) (*uom.UnitOfMeasure, error) {
	query := `
		SELECT * FROM units_of_measure
		WHERE lookup_key = :lookup_key
		AND tenant_id = :tenant_id
	`

	return r.getOne(ctx, query, map[string]interface{}{
		"lookup_key": key,
		"tenant_id":  types.GetTenantID(ctx),
	})
}

func (r *uomRepository) getOne(ctx context.Context, query string, args map[string]interface{}) (*uom.UnitOfMeasure, error) {
	var u uom.UnitOfMeasure
	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get unit of measure").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("unit of measure not found").
			WithHint("The requested unit of measure was not found").
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&u); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	return &u, nil
}

func (r *uomRepository) List(ctx context.Context) ([]*uom.UnitOfMeasure, error) {
	query := `
		SELECT * FROM units_of_measure
		WHERE tenant_id = $1
		ORDER BY name ASC
	`

	var units []*uom.UnitOfMeasure
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &units, query, types.GetTenantID(ctx)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list units of measure").
			Mark(ierr.ErrDatabase)
	}

	return units, nil
}

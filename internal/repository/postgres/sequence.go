package postgres

import (
	"context"
	"time"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/sequence"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type sequenceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSequenceRepository(db *postgres.DB, logger *logger.Logger) sequence.Repository {
	return &sequenceRepository{db: db, logger: logger}
}

// Next atomically increments and returns the counter for the code, scoped to
// the date's year when one is supplied. Raw SQL upsert so concurrent callers
// never observe the same value.
func (r *sequenceRepository) Next(ctx context.Context, code string, date *time.Time) (int64, error) {
	scope := ""
	if date != nil {
		scope = date.Format("2006")
	}
	tenantID := types.GetTenantID(ctx)

	query := `
		INSERT INTO sequences (tenant_id, code, scope, last_value, created_at, updated_at)
		VALUES ($1, $2, $3, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (tenant_id, code, scope) DO UPDATE
		SET last_value = sequences.last_value + 1,
			updated_at = CURRENT_TIMESTAMP
		RETURNING last_value`

	var lastValue int64
	q := r.db.GetQuerier(ctx)
	rows, err := q.QueryContext(ctx, query, tenantID, code, scope)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Sequence generation failed").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, ierr.NewError("no sequence value returned").
			WithHint("Sequence generation failed").
			Mark(ierr.ErrDatabase)
	}

	if err := rows.Scan(&lastValue); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Sequence generation failed").
			Mark(ierr.ErrDatabase)
	}

	r.logger.Debugw("generated sequence value",
		"tenant_id", tenantID,
		"code", code,
		"scope", scope,
		"value", lastValue,
	)

	return lastValue, nil
}

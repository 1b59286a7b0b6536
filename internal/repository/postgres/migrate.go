package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
)

// Migrator runs the schema changes this layer owns. The only non-trivial one
// is the stored is_service column on sale_order_lines: computing it row by
// row on upgrade is too slow on large datasets, so it is created and
// backfilled with one bulk statement instead.
type Migrator struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewMigrator(db *postgres.DB, logger *logger.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Run applies all pending migrations. Every step is idempotent so Run is
// safe to invoke on every startup.
func (m *Migrator) Run(ctx context.Context) error {
	return m.BackfillIsService(ctx)
}

// BackfillIsService adds the is_service column and seeds it from the linked
// product classification in a single bulk update. Guarded by a column-exists
// check: once the column is there the live predicate keeps it consistent and
// the backfill never runs again.
func (m *Migrator) BackfillIsService(ctx context.Context) error {
	exists, err := m.columnExists(ctx, "sale_order_lines", "is_service")
	if err != nil {
		return err
	}
	if exists {
		m.logger.Debugw("is_service column already exists, skipping backfill")
		return nil
	}

	m.logger.Infow("backfilling is_service column on sale_order_lines")

	return m.db.WithTx(ctx, func(ctx context.Context) error {
		q := m.db.GetQuerier(ctx)

		if _, err := q.ExecContext(ctx, `
			ALTER TABLE sale_order_lines
			ADD COLUMN is_service boolean NOT NULL DEFAULT false
		`); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to add is_service column").
				Mark(ierr.ErrDatabase)
		}

		query, args, err := serviceLikeInClause(`
			UPDATE sale_order_lines line
			SET is_service = true
			FROM products p
			WHERE p.id = line.product_id
			AND p.type IN (?)
		`)
		if err != nil {
			return err
		}

		result, err := q.ExecContext(ctx, m.db.Rebind(query), args...)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Failed to backfill is_service column").
				Mark(ierr.ErrDatabase)
		}

		if n, err := result.RowsAffected(); err == nil {
			m.logger.Infow("backfilled is_service column", "rows", n)
		}
		return nil
	})
}

func serviceLikeInClause(query string) (string, []interface{}, error) {
	q, args, err := sqlx.In(query, serviceLikeTypeStrings())
	if err != nil {
		return "", nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}
	return q, args, nil
}

func (m *Migrator) columnExists(ctx context.Context, table, column string) (bool, error) {
	query := `
		SELECT COUNT(*) FROM information_schema.columns
		WHERE table_name = $1
		AND column_name = $2
	`

	var count int
	q := m.db.GetQuerier(ctx)
	if err := q.GetContext(ctx, &count, query, table, column); err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to inspect schema").
			Mark(ierr.ErrDatabase)
	}

	return count > 0, nil
}

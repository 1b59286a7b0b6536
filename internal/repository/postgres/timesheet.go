package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/timesheet"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type timesheetRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTimesheetRepository(db *postgres.DB, logger *logger.Logger) timesheet.Repository {
	return &timesheetRepository{db: db, logger: logger}
}

func (r *timesheetRepository) Create(ctx context.Context, entry *timesheet.Entry) error {
	query := `
		INSERT INTO timesheet_entries (
			id, tenant_id, name, date, project_id, task_id, so_line_id,
			employee_id, unit_amount, amount, invoice_type, invoice_id, status,
			created_at, updated_at, created_by, updated_by
		)
		VALUES (
			:id, :tenant_id, :name, :date, :project_id, :task_id, :so_line_id,
			:employee_id, :unit_amount, :amount, :invoice_type, :invoice_id, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create timesheet entry").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *timesheetRepository) Get(ctx context.Context, id string) (*timesheet.Entry, error) {
	query := `
		SELECT * FROM timesheet_entries
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	var entry timesheet.Entry
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get timesheet entry").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("timesheet entry not found").
			WithHintf("Timesheet entry with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&entry); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	return &entry, nil
}

func (r *timesheetRepository) Update(ctx context.Context, entry *timesheet.Entry) error {
	query := `
		UPDATE timesheet_entries SET
			name = :name,
			date = :date,
			project_id = :project_id,
			task_id = :task_id,
			so_line_id = :so_line_id,
			employee_id = :employee_id,
			unit_amount = :unit_amount,
			amount = :amount,
			invoice_type = :invoice_type,
			invoice_id = :invoice_id,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	result, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update timesheet entry").
			Mark(ierr.ErrDatabase)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("timesheet entry not found").
			WithHintf("Timesheet entry with ID %s was not found", entry.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *timesheetRepository) ListByLine(ctx context.Context, lineID string) ([]*timesheet.Entry, error) {
	query := `
		SELECT * FROM timesheet_entries
		WHERE so_line_id = $1
		AND tenant_id = $2
		ORDER BY date ASC, id ASC
	`

	var entries []*timesheet.Entry
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &entries, query, lineID, types.GetTenantID(ctx)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list timesheet entries").
			Mark(ierr.ErrDatabase)
	}

	return entries, nil
}

// DeliveredQtyByLine is the group-by aggregate feeding delivered quantities
// and invoice-period recomputation; invoiced entries are excluded.
func (r *timesheetRepository) DeliveredQtyByLine(ctx context.Context, lineIDs []string, start, end *time.Time) (map[string]decimal.Decimal, error) {
	if len(lineIDs) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	base := `
		SELECT so_line_id, SUM(unit_amount) AS qty
		FROM timesheet_entries
		WHERE so_line_id IN (?)
		AND tenant_id = ?
		AND invoice_id = ''
	`
	args := []interface{}{lineIDs, types.GetTenantID(ctx)}
	if start != nil {
		base += ` AND date >= ?`
		args = append(args, *start)
	}
	if end != nil {
		base += ` AND date <= ?`
		args = append(args, *end)
	}
	base += ` GROUP BY so_line_id`

	query, inArgs, err := sqlx.In(base, args...)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}
	query = r.db.Rebind(query)

	rows := []struct {
		SOLineID string          `db:"so_line_id"`
		Qty      decimal.Decimal `db:"qty"`
	}{}
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &rows, query, inArgs...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to aggregate timesheet entries").
			Mark(ierr.ErrDatabase)
	}

	result := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		result[row.SOLineID] = row.Qty
	}
	return result, nil
}

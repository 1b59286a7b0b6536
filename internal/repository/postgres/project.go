package postgres

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/project"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type projectRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewProjectRepository(db *postgres.DB, logger *logger.Logger) project.Repository {
	return &projectRepository{db: db, logger: logger}
}

func (r *projectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (
			id, tenant_id, name, customer_id, company_id, sale_line_id,
			sale_order_id, billing_type, pricing_type, timesheet_product_id,
			allocated_hours, allow_billable, allow_timesheets, active, status,
			created_at, updated_at, created_by, updated_by
		)
		VALUES (
			:id, :tenant_id, :name, :customer_id, :company_id, :sale_line_id,
			:sale_order_id, :billing_type, :pricing_type, :timesheet_product_id,
			:allocated_hours, :allow_billable, :allow_timesheets, :active, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`

	r.logger.Debugw("creating project", "project_id", p.ID, "name", p.Name)

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create project").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT * FROM projects
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	var p project.Project
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get project").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("project not found").
			WithHintf("Project with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	return &p, nil
}

func (r *projectRepository) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			name = :name,
			customer_id = :customer_id,
			company_id = :company_id,
			sale_line_id = :sale_line_id,
			sale_order_id = :sale_order_id,
			billing_type = :billing_type,
			pricing_type = :pricing_type,
			timesheet_product_id = :timesheet_product_id,
			allocated_hours = :allocated_hours,
			allow_billable = :allow_billable,
			allow_timesheets = :allow_timesheets,
			active = :active,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update project").
			Mark(ierr.ErrDatabase)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("project not found").
			WithHintf("Project with ID %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

// ListByOrder returns projects linked to the order directly or through the
// originating line, active or not.
func (r *projectRepository) ListByOrder(ctx context.Context, orderID string) ([]*project.Project, error) {
	query := `
		SELECT DISTINCT pr.* FROM projects pr
		LEFT JOIN sale_order_lines l ON l.id = pr.sale_line_id
		WHERE (pr.sale_order_id = $1 OR l.order_id = $1)
		AND pr.tenant_id = $2
		ORDER BY pr.created_at ASC
	`

	var projects []*project.Project
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &projects, query, orderID, types.GetTenantID(ctx)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list projects").
			Mark(ierr.ErrDatabase)
	}

	return projects, nil
}

type taskRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTaskRepository(db *postgres.DB, logger *logger.Logger) project.TaskRepository {
	return &taskRepository{db: db, logger: logger}
}

func (r *taskRepository) Create(ctx context.Context, t *project.Task) error {
	query := `
		INSERT INTO project_tasks (
			id, tenant_id, name, project_id, sale_line_id, customer_id,
			allocated_hours, status,
			created_at, updated_at, created_by, updated_by
		)
		VALUES (
			:id, :tenant_id, :name, :project_id, :sale_line_id, :customer_id,
			:allocated_hours, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, t)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create task").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *taskRepository) Get(ctx context.Context, id string) (*project.Task, error) {
	query := `
		SELECT * FROM project_tasks
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	var t project.Task
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get task").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("task not found").
			WithHintf("Task with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&t); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	return &t, nil
}

func (r *taskRepository) Update(ctx context.Context, t *project.Task) error {
	query := `
		UPDATE project_tasks SET
			name = :name,
			project_id = :project_id,
			sale_line_id = :sale_line_id,
			customer_id = :customer_id,
			allocated_hours = :allocated_hours,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	result, err := r.db.NamedExecContext(ctx, query, t)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update task").
			Mark(ierr.ErrDatabase)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("task not found").
			WithHintf("Task with ID %s was not found", t.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *taskRepository) ListByOrder(ctx context.Context, orderID string) ([]*project.Task, error) {
	query := `
		SELECT t.* FROM project_tasks t
		JOIN sale_order_lines l ON l.id = t.sale_line_id
		WHERE l.order_id = $1
		AND t.tenant_id = $2
		ORDER BY t.created_at ASC
	`

	var tasks []*project.Task
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &tasks, query, orderID, types.GetTenantID(ctx)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tasks").
			Mark(ierr.ErrDatabase)
	}

	return tasks, nil
}

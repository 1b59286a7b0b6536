package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/project"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/uom"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// ProjectService synthesizes projects and tasks from order lines and keeps
// the originating links between them.
type ProjectService interface {
	// CreateProjectFromLine creates a project funded by an order line and
	// links the line to it. Allocated hours are summed across all lines of
	// the order sharing the line's service template.
	CreateProjectFromLine(ctx context.Context, lineID string) (*project.Project, error)

	// CreateTaskFromLine creates a task for an order line in the given
	// project and links the line to it
	CreateTaskFromLine(ctx context.Context, lineID, projectID string) (*project.Task, error)

	// SetTimesheetProduct sets the service used by default when invoicing
	// time spent on the project's tasks
	SetTimesheetProduct(ctx context.Context, projectID, productID string) error
}

type projectService struct {
	ServiceParams
}

func NewProjectService(params ServiceParams) ProjectService {
	return &projectService{
		ServiceParams: params,
	}
}

func (s *projectService) CreateProjectFromLine(ctx context.Context, lineID string) (*project.Project, error) {
	line, err := s.OrderLineRepo.Get(ctx, lineID)
	if err != nil {
		return nil, err
	}

	if !line.IsService {
		return nil, ierr.NewError("line is not service-like").
			WithHint("Only service-like order lines can generate a project").
			WithReportableDetails(map[string]any{
				"line_id": lineID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	o, err := s.OrderRepo.Get(ctx, line.OrderID)
	if err != nil {
		return nil, err
	}

	prod, err := s.ProductRepo.Get(ctx, line.ProductID)
	if err != nil {
		return nil, err
	}

	cust, err := s.CustomerRepo.Get(ctx, o.CustomerID)
	if err != nil {
		return nil, err
	}

	hours, err := s.allocatedHoursForTemplate(ctx, o, prod.ProjectTemplateID)
	if err != nil {
		return nil, err
	}

	timesheetProductID := ""
	if prod.IsDeliveredTimesheet() {
		timesheetProductID = prod.ID
	}

	proj := &project.Project{
		ID:                 types.GenerateUUIDWithPrefix(types.UUIDPrefixProject),
		Name:               fmt.Sprintf("%s - %s", o.Name, cust.Name),
		CustomerID:         o.CustomerID,
		CompanyID:          o.CompanyID,
		SaleLineID:         line.ID,
		SaleOrderID:        o.ID,
		BillingType:        types.ProjectBillingTypeAutomatic,
		PricingType:        types.ProjectPricingTypeTaskRate,
		TimesheetProductID: timesheetProductID,
		AllocatedHours:     hours,
		AllowBillable:      true,
		AllowTimesheets:    true,
		Active:             true,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.ProjectRepo.Create(ctx, proj); err != nil {
			return err
		}

		line.ProjectID = proj.ID
		return s.OrderLineRepo.Update(ctx, line)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created project from order line",
		"project_id", proj.ID,
		"order_id", o.ID,
		"line_id", line.ID,
		"allocated_hours", hours)

	return proj, nil
}

func (s *projectService) CreateTaskFromLine(ctx context.Context, lineID, projectID string) (*project.Task, error) {
	line, err := s.OrderLineRepo.Get(ctx, lineID)
	if err != nil {
		return nil, err
	}

	o, err := s.OrderRepo.Get(ctx, line.OrderID)
	if err != nil {
		return nil, err
	}

	prod, err := s.ProductRepo.Get(ctx, line.ProductID)
	if err != nil {
		return nil, err
	}

	hours, err := s.lineHours(ctx, line)
	if err != nil {
		return nil, err
	}

	task := &project.Task{
		ID:             types.GenerateUUIDWithPrefix(types.UUIDPrefixTask),
		Name:           fmt.Sprintf("%s: %s", o.Name, prod.Name),
		ProjectID:      projectID,
		SaleLineID:     line.ID,
		CustomerID:     o.CustomerID,
		AllocatedHours: hours,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.TaskRepo.Create(ctx, task); err != nil {
			return err
		}

		line.ProjectID = projectID
		line.TaskID = task.ID
		return s.OrderLineRepo.Update(ctx, line)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *projectService) SetTimesheetProduct(ctx context.Context, projectID, productID string) error {
	proj, err := s.ProjectRepo.Get(ctx, projectID)
	if err != nil {
		return err
	}

	prod, err := s.ProductRepo.Get(ctx, productID)
	if err != nil {
		return err
	}

	if !prod.IsDeliveredTimesheet() {
		return ierr.NewError("invalid timesheet product").
			WithHint("The timesheet product must be a service invoiced on timesheets").
			WithReportableDetails(map[string]any{
				"product_id":     productID,
				"service_policy": prod.ServicePolicy(),
			}).
			Mark(ierr.ErrValidation)
	}

	proj.TimesheetProductID = prod.ID
	return s.ProjectRepo.Update(ctx, proj)
}

// allocatedHoursForTemplate sums the ordered quantities, converted into the
// company's project time unit, of every line in the order whose product
// shares the given service template.
func (s *projectService) allocatedHoursForTemplate(ctx context.Context, o *order.Order, templateID string) (decimal.Decimal, error) {
	lines := o.Lines
	if len(lines) == 0 {
		var err error
		lines, err = s.OrderLineRepo.ListByOrder(ctx, o.ID)
		if err != nil {
			return decimal.Zero, err
		}
	}

	projectUom, err := s.projectTimeUom(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, line := range lines {
		if !line.IsService {
			continue
		}
		prod, err := s.ProductRepo.Get(ctx, line.ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		// Only lines whose product funds a project of its own share the
		// budget; timesheet lines tracked in a global project do not.
		if !prod.ServiceTracking.CreatesProject() {
			continue
		}
		if prod.ProjectTemplateID != templateID {
			continue
		}
		hours, err := convertToProjectTime(ctx, s.ServiceParams, line, projectUom)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(hours)
	}

	return total, nil
}

func (s *projectService) lineHours(ctx context.Context, line *order.Line) (decimal.Decimal, error) {
	projectUom, err := s.projectTimeUom(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return convertToProjectTime(ctx, s.ServiceParams, line, projectUom)
}

func (s *projectService) projectTimeUom(ctx context.Context) (*uom.UnitOfMeasure, error) {
	comp, err := s.CompanyRepo.Get(ctx, types.GetCompanyID(ctx))
	if err != nil {
		return nil, err
	}
	return s.UomRepo.Get(ctx, comp.ProjectTimeUomID)
}

// convertToProjectTime converts the ordered quantity of a line into the
// project time unit. A line sold in the generic unit measure is read as
// hours; any other unit outside the project time category cannot convert and
// contributes nothing.
func convertToProjectTime(ctx context.Context, params ServiceParams, line *order.Line, projectUom *uom.UnitOfMeasure) (decimal.Decimal, error) {
	lineUom, err := params.UomRepo.Get(ctx, line.UomID)
	if err != nil {
		return decimal.Zero, err
	}

	if lineUom.LookupKey == uom.LookupKeyUnit {
		lineUom, err = params.UomRepo.GetByLookupKey(ctx, uom.LookupKeyHour)
		if err != nil {
			return decimal.Zero, err
		}
	}

	if lineUom.Category != projectUom.Category {
		return decimal.Zero, nil
	}
	return lineUom.Convert(line.Qty, projectUom), nil
}

package service

import (
	"context"
	"fmt"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/api/dto"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Host model names referenced by window actions
const (
	actionModelProject = "project.project"
	actionModelTask    = "project.task"
)

// OrderService owns the order lifecycle: naming at creation, project and
// task generation at confirmation, and the window actions the host UI
// renders for an order.
type OrderService interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error)

	// ConfirmOrder moves the order to the sale state and generates the
	// projects and tasks its service lines call for
	ConfirmOrder(ctx context.Context, id string) (*dto.OrderResponse, error)

	// OrdersWithServiceLines filters the given orders down to confirmed
	// orders holding at least one service-like line
	OrdersWithServiceLines(ctx context.Context, orderIDs []string) ([]string, error)

	// ActionViewProjects returns the window action showing the projects
	// attached to an order
	ActionViewProjects(ctx context.Context, orderID string) (*types.Action, error)

	// ActionViewTask returns the window action showing the task (or tasks)
	// funded by an order
	ActionViewTask(ctx context.Context, orderID string) (*types.Action, error)

	// ActionCreateProject creates a project from the order's default service
	// line and returns the window action opening it
	ActionCreateProject(ctx context.Context, orderID string) (*types.Action, error)
}

type orderService struct {
	ServiceParams
}

func NewOrderService(params ServiceParams) OrderService {
	return &orderService{
		ServiceParams: params,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o := req.ToOrder(ctx)

	products, err := s.lineProducts(ctx, o.Lines)
	if err != nil {
		return nil, err
	}
	for _, line := range o.Lines {
		prod := products[line.ProductID]
		line.IsService = prod.IsServiceLike()
		line.QtyDeliveredMethod = ResolveQtyDeliveredMethod(line, prod)
	}

	// An order created for a project context must be able to fund it.
	// Checked before any side effect so a rejected order leaves no trace.
	if o.ProjectID != "" && o.DefaultServiceLine() == nil {
		return nil, errMissingQualifyingLine(o.ProjectID)
	}

	// The sequence is drawn before creation so every downstream listener
	// observes the durable identifier, never the placeholder.
	if o.Name == "" || o.Name == types.OrderNamePlaceholder {
		name, err := s.composeOrderName(ctx, o)
		if err != nil {
			return nil, err
		}
		o.Name = name
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.OrderRepo.Create(ctx, o); err != nil {
			return err
		}
		return s.linkProjectOriginLine(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created order",
		"order_id", o.ID,
		"name", o.Name,
		"customer_id", o.CustomerID,
		"lines", len(o.Lines))

	return dto.NewOrderResponse(o), nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	if id == "" {
		return nil, ierr.NewError("order ID is required").
			WithHint("Order ID is required").
			Mark(ierr.ErrValidation)
	}

	o, err := s.OrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewOrderResponse(o), nil
}

func (s *orderService) ConfirmOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := s.OrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.State.IsConfirmed() {
		return nil, ierr.NewError("order is already confirmed").
			WithHint("The order has already been confirmed").
			WithReportableDetails(map[string]any{
				"order_id": id,
				"state":    o.State,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	products, err := s.lineProducts(ctx, o.Lines)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		o.State = types.OrderStateSale
		o.Touch(ctx)
		if err := s.OrderRepo.Update(ctx, o); err != nil {
			return err
		}
		return s.generateProjectsAndTasks(ctx, o, products)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewOrderResponse(o), nil
}

// generateProjectsAndTasks walks the service lines in sequence order and
// creates what each line's tracking mode calls for. Lines sharing a template
// reuse the first project created for it.
func (s *orderService) generateProjectsAndTasks(ctx context.Context, o *order.Order, products map[string]*product.Product) error {
	projectSvc := NewProjectService(s.ServiceParams)
	projectByTemplate := map[string]string{}

	for _, line := range o.SortedLines() {
		if !line.IsService || line.ProjectID != "" {
			continue
		}
		prod := products[line.ProductID]

		switch prod.ServiceTracking {
		case types.ServiceTrackingProjectOnly, types.ServiceTrackingTaskInProject:
			projectID, ok := projectByTemplate[prod.ProjectTemplateID]
			if !ok {
				proj, err := projectSvc.CreateProjectFromLine(ctx, line.ID)
				if err != nil {
					return err
				}
				projectID = proj.ID
				projectByTemplate[prod.ProjectTemplateID] = projectID
			}
			if prod.ServiceTracking == types.ServiceTrackingTaskInProject {
				if _, err := projectSvc.CreateTaskFromLine(ctx, line.ID, projectID); err != nil {
					return err
				}
			} else {
				line.ProjectID = projectID
				if err := s.OrderLineRepo.Update(ctx, line); err != nil {
					return err
				}
			}

		case types.ServiceTrackingTaskGlobalProject:
			globalProjectID := prod.ProjectTemplateID
			if globalProjectID == "" {
				globalProjectID = o.ProjectID
			}
			if globalProjectID == "" {
				s.Logger.Warnw("no global project for task generation, skipping line",
					"order_id", o.ID,
					"line_id", line.ID,
					"product_id", prod.ID)
				continue
			}
			if _, err := projectSvc.CreateTaskFromLine(ctx, line.ID, globalProjectID); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *orderService) OrdersWithServiceLines(ctx context.Context, orderIDs []string) ([]string, error) {
	return s.OrderLineRepo.OrderIDsWithServiceLines(ctx, orderIDs, []types.OrderState{types.OrderStateSale})
}

func (s *orderService) ActionViewProjects(ctx context.Context, orderID string) (*types.Action, error) {
	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	projects, err := s.ProjectRepo.ListByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	switch len(projects) {
	case 0:
		return types.CloseAction(), nil
	case 1:
		return &types.Action{
			Type:  types.ActionTypeWindow,
			Name:  projects[0].Name,
			Model: actionModelProject,
			ResID: projects[0].ID,
			Views: []types.ViewMode{types.ViewModeForm},
		}, nil
	default:
		return &types.Action{
			Type:   types.ActionTypeWindow,
			Name:   o.Name,
			Model:  actionModelProject,
			Views:  []types.ViewMode{types.ViewModeKanban, types.ViewModeList, types.ViewModeForm},
			Domain: map[string]any{"sale_order_id": o.ID},
		}, nil
	}
}

func (s *orderService) ActionViewTask(ctx context.Context, orderID string) (*types.Action, error) {
	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepo.ListByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	switch len(tasks) {
	case 0:
		return types.CloseAction(), nil
	case 1:
		return &types.Action{
			Type:  types.ActionTypeWindow,
			Name:  tasks[0].Name,
			Model: actionModelTask,
			ResID: tasks[0].ID,
			Views: []types.ViewMode{types.ViewModeForm},
		}, nil
	default:
		return &types.Action{
			Type:   types.ActionTypeWindow,
			Name:   o.Name,
			Model:  actionModelTask,
			Views:  []types.ViewMode{types.ViewModeList, types.ViewModeForm},
			Domain: map[string]any{"sale_order_id": o.ID},
		}, nil
	}
}

func (s *orderService) ActionCreateProject(ctx context.Context, orderID string) (*types.Action, error) {
	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	line := o.DefaultServiceLine()
	if line == nil {
		return nil, errMissingQualifyingLine(o.ID)
	}

	projectSvc := NewProjectService(s.ServiceParams)
	proj, err := projectSvc.CreateProjectFromLine(ctx, line.ID)
	if err != nil {
		return nil, err
	}

	return &types.Action{
		Type:  types.ActionTypeWindow,
		Name:  proj.Name,
		Model: actionModelProject,
		ResID: proj.ID,
		Views: []types.ViewMode{types.ViewModeForm},
	}, nil
}

// linkProjectOriginLine gives the order's pre-specified project its
// originating line when it has none yet. That link drives the project's
// default billing pricing, so only the first qualifying order sets it.
func (s *orderService) linkProjectOriginLine(ctx context.Context, o *order.Order) error {
	if o.ProjectID == "" {
		return nil
	}

	proj, err := s.ProjectRepo.Get(ctx, o.ProjectID)
	if err != nil {
		return err
	}
	if proj.SaleLineID != "" {
		return nil
	}

	line := o.DefaultServiceLine()
	if line == nil {
		return nil
	}

	proj.SaleLineID = line.ID
	proj.Touch(ctx)
	return s.ProjectRepo.Update(ctx, proj)
}

// composeOrderName draws the next sequence value, formats it with the
// configured prefix and padding, and appends the customer's display name
// when one is known.
func (s *orderService) composeOrderName(ctx context.Context, o *order.Order) (string, error) {
	seq, err := s.SequenceRepo.Next(ctx, s.Config.Sequence.OrderCode, o.DateOrder)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s%0*d", s.Config.Sequence.OrderPrefix, s.Config.Sequence.OrderPadding, seq)

	if o.CustomerID == "" {
		return name, nil
	}
	cust, err := s.CustomerRepo.Get(ctx, o.CustomerID)
	if err != nil {
		return "", err
	}
	if cust.Name == "" {
		return name, nil
	}
	return fmt.Sprintf("%s-%s", name, cust.Name), nil
}

func (s *orderService) lineProducts(ctx context.Context, lines []*order.Line) (map[string]*product.Product, error) {
	ids := make([]string, 0, len(lines))
	seen := map[string]bool{}
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}
	if len(ids) == 0 {
		return map[string]*product.Product{}, nil
	}

	products, err := s.ProductRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, line := range lines {
		if byID[line.ProductID] == nil {
			return nil, ierr.NewError("unknown product on order line").
				WithHint("One of the order lines references a product that does not exist").
				WithReportableDetails(map[string]any{
					"product_id": line.ProductID,
				}).
				Mark(ierr.ErrNotFound)
		}
	}
	return byID, nil
}

// errMissingQualifyingLine is the single user-facing validation failure this
// layer introduces: an operation needed a service-like order line and the
// order has none.
func errMissingQualifyingLine(resourceID string) error {
	return ierr.NewError("no service-like line on order").
		WithHint("The order must contain at least one service product to be linked to a project").
		WithReportableDetails(map[string]any{
			"resource_id": resourceID,
		}).
		Mark(ierr.ErrValidation)
}

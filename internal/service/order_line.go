package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// ResolveQtyDeliveredMethod decides how the delivered quantity of a line is
// tracked. Evaluated top-down, first match wins: expense status dominates the
// service type, and milestones are checked before the generic timesheet case.
func ResolveQtyDeliveredMethod(line *order.Line, prod *product.Product) types.QtyDeliveredMethod {
	switch {
	case line.IsExpense:
		return types.QtyDeliveredMethodAnalytic
	case prod.IsServiceLike() && prod.ServiceType == types.ServiceTypeMilestones:
		return types.QtyDeliveredMethodMilestones
	case prod.IsServiceLike() && prod.ServiceType == types.ServiceTypeTimesheet:
		return types.QtyDeliveredMethodTimesheet
	default:
		return types.QtyDeliveredMethodManual
	}
}

// OrderLineService maintains the derived fields of order lines: the stored
// classification mirror, the delivered quantity of timesheet-tracked lines
// and the upsell status of prepaid lines.
type OrderLineService interface {
	// UpdateOrderedQty changes the ordered quantity of a line and propagates
	// the change to the allocated hours of its linked task
	UpdateOrderedQty(ctx context.Context, lineID string, qty decimal.Decimal) (*order.Line, error)

	// RecomputeDeliveredQty refreshes the delivered quantities of the
	// timesheet-tracked lines of an order from uninvoiced timesheet entries,
	// then refreshes each line's invoice status
	RecomputeDeliveredQty(ctx context.Context, orderID string) error
}

type orderLineService struct {
	ServiceParams
}

func NewOrderLineService(params ServiceParams) OrderLineService {
	return &orderLineService{
		ServiceParams: params,
	}
}

func (s *orderLineService) UpdateOrderedQty(ctx context.Context, lineID string, qty decimal.Decimal) (*order.Line, error) {
	if qty.IsNegative() {
		return nil, ierr.NewError("ordered quantity cannot be negative").
			WithHint("Please provide a non-negative quantity").
			Mark(ierr.ErrValidation)
	}

	line, err := s.OrderLineRepo.Get(ctx, lineID)
	if err != nil {
		return nil, err
	}

	prod, err := s.ProductRepo.Get(ctx, line.ProductID)
	if err != nil {
		return nil, err
	}

	line.Qty = qty

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.OrderLineRepo.Update(ctx, line); err != nil {
			return err
		}

		if line.TaskID == "" || !prod.IsDeliveredTimesheet() {
			return nil
		}

		task, err := s.TaskRepo.Get(ctx, line.TaskID)
		if err != nil {
			return err
		}

		hours, err := s.lineAllocatedHours(ctx, line)
		if err != nil {
			return err
		}
		task.AllocatedHours = hours

		return s.TaskRepo.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	return line, nil
}

func (s *orderLineService) RecomputeDeliveredQty(ctx context.Context, orderID string) error {
	lines, err := s.OrderLineRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	var tracked []*order.Line
	for _, line := range lines {
		if line.QtyDeliveredMethod == types.QtyDeliveredMethodTimesheet {
			tracked = append(tracked, line)
		}
	}
	if len(tracked) == 0 {
		return nil
	}

	lineIDs := make([]string, 0, len(tracked))
	for _, line := range tracked {
		lineIDs = append(lineIDs, line.ID)
	}

	delivered, err := s.TimesheetRepo.DeliveredQtyByLine(ctx, lineIDs, nil, nil)
	if err != nil {
		return err
	}

	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, line := range tracked {
			line.QtyDelivered = delivered[line.ID]
			if err := s.refreshInvoiceStatus(ctx, line); err != nil {
				return err
			}
			line.Touch(ctx)
			if err := s.OrderLineRepo.Update(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
}

// refreshInvoiceStatus recomputes the invoice status of a line. A prepaid
// line whose delivered quantity crossed the product's upsell threshold flips
// to upselling exactly once; the warning flag keeps it from reappearing after
// the salesperson dismissed it.
func (s *orderLineService) refreshInvoiceStatus(ctx context.Context, line *order.Line) error {
	prod, err := s.ProductRepo.Get(ctx, line.ProductID)
	if err != nil {
		return err
	}

	switch {
	case line.InvoiceStatus == order.InvoiceStatusInvoiced:
		return nil
	case s.isUpselling(line, prod):
		line.InvoiceStatus = order.InvoiceStatusUpsell
		line.UpsellWarningShown = true
	case prod.InvoicePolicy == types.InvoicePolicyDelivery && line.QtyDelivered.IsPositive():
		line.InvoiceStatus = order.InvoiceStatusToDo
	case prod.InvoicePolicy == types.InvoicePolicyOrder && line.Qty.IsPositive():
		line.InvoiceStatus = order.InvoiceStatusToDo
	default:
		line.InvoiceStatus = order.InvoiceStatusNo
	}
	return nil
}

func (s *orderLineService) isUpselling(line *order.Line, prod *product.Product) bool {
	if prod.ServicePolicy() != types.ServicePolicyOrderedPrepaid || !prod.IsServiceLike() {
		return false
	}
	if line.UpsellWarningShown || line.Qty.IsZero() {
		return false
	}
	threshold := prod.UpsellThreshold
	if threshold.IsZero() {
		threshold = decimal.NewFromInt(1)
	}
	// Strictly past the threshold: delivering exactly the ordered quantity
	// is fulfilment, not an upsell opportunity.
	return line.QtyDelivered.GreaterThan(line.Qty.Mul(threshold))
}

// lineAllocatedHours converts the ordered quantity of a line into the
// company's project time unit. Lines sold in the generic unit measure fall
// back to an hours conversion.
func (s *orderLineService) lineAllocatedHours(ctx context.Context, line *order.Line) (decimal.Decimal, error) {
	comp, err := s.CompanyRepo.Get(ctx, types.GetCompanyID(ctx))
	if err != nil {
		return decimal.Zero, err
	}

	projectUom, err := s.UomRepo.Get(ctx, comp.ProjectTimeUomID)
	if err != nil {
		return decimal.Zero, err
	}

	return convertToProjectTime(ctx, s.ServiceParams, line, projectUom)
}

package types

import (
	"github.com/samber/lo"

	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
)

// OrderNamePlaceholder is the provisional name a sale order carries until the
// naming rule assigns its durable identifier.
const OrderNamePlaceholder = "New"

// OrderState is the lifecycle state of a sale order
type OrderState string

const (
	OrderStateDraft  OrderState = "draft"
	OrderStateSent   OrderState = "sent"
	OrderStateSale   OrderState = "sale"
	OrderStateDone   OrderState = "done"
	OrderStateCancel OrderState = "cancel"
)

func (s OrderState) String() string {
	return string(s)
}

// IsConfirmed reports whether the order has passed quotation stage.
func (s OrderState) IsConfirmed() bool {
	return s == OrderStateSale || s == OrderStateDone
}

func (s OrderState) Validate() error {
	allowed := []OrderState{
		OrderStateDraft,
		OrderStateSent,
		OrderStateSale,
		OrderStateDone,
		OrderStateCancel,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid order state").
			WithHint("Please provide a valid order state").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// QtyDeliveredMethod is how the delivered quantity of an order line is
// tracked
type QtyDeliveredMethod string

const (
	// QtyDeliveredMethodManual lets the salesperson set delivered quantities by hand
	QtyDeliveredMethodManual QtyDeliveredMethod = "manual"
	// QtyDeliveredMethodTimesheet sums validated timesheet entries on the line
	QtyDeliveredMethodTimesheet QtyDeliveredMethod = "timesheet"
	// QtyDeliveredMethodMilestones sums reached milestones on the line
	QtyDeliveredMethodMilestones QtyDeliveredMethod = "milestones"
	// QtyDeliveredMethodAnalytic sums analytic (expense) entries on the line
	QtyDeliveredMethodAnalytic QtyDeliveredMethod = "analytic"
)

func (m QtyDeliveredMethod) String() string {
	return string(m)
}

func (m QtyDeliveredMethod) Validate() error {
	allowed := []QtyDeliveredMethod{
		QtyDeliveredMethodManual,
		QtyDeliveredMethodTimesheet,
		QtyDeliveredMethodMilestones,
		QtyDeliveredMethodAnalytic,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid delivered quantity method").
			WithHint("Please provide a valid delivered quantity method").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

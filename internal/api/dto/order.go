package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/validator"
)

type CreateOrderRequest struct {
	// Name is optional; empty or the "New" placeholder triggers the naming
	// rule
	Name           string                   `json:"name"`
	CustomerID     string                   `json:"customer_id" validate:"required"`
	CompanyID      string                   `json:"company_id"`
	ProjectID      string                   `json:"project_id"`
	ClientOrderRef string                   `json:"client_order_ref"`
	DateOrder      *time.Time               `json:"date_order"`
	Lines          []CreateOrderLineRequest `json:"lines"`
}

type CreateOrderLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Sequence  int             `json:"sequence"`
	Qty       decimal.Decimal `json:"qty"`
	UomID     string          `json:"uom_id"`
	IsExpense bool            `json:"is_expense"`
}

func (r *CreateOrderRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateOrderRequest) ToOrder(ctx context.Context) *order.Order {
	o := &order.Order{
		ID:             types.GenerateUUIDWithPrefix(types.UUIDPrefixOrder),
		Name:           r.Name,
		State:          types.OrderStateDraft,
		CustomerID:     r.CustomerID,
		CompanyID:      r.CompanyID,
		ProjectID:      r.ProjectID,
		ClientOrderRef: r.ClientOrderRef,
		DateOrder:      r.DateOrder,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	if o.Name == "" {
		o.Name = types.OrderNamePlaceholder
	}
	for _, lr := range r.Lines {
		o.Lines = append(o.Lines, lr.ToLine(ctx, o.ID))
	}
	return o
}

func (r *CreateOrderLineRequest) ToLine(ctx context.Context, orderID string) *order.Line {
	return &order.Line{
		ID:            types.GenerateUUIDWithPrefix(types.UUIDPrefixOrderLine),
		OrderID:       orderID,
		ProductID:     r.ProductID,
		Sequence:      r.Sequence,
		Qty:           r.Qty,
		UomID:         r.UomID,
		IsExpense:     r.IsExpense,
		InvoiceStatus: order.InvoiceStatusNo,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type OrderResponse struct {
	*order.Order
	// SequenceOnlyName is the identifier stripped at the first separator,
	// exposed for reporting
	SequenceOnlyName string `json:"sequence_only_name"`
}

func NewOrderResponse(o *order.Order) *OrderResponse {
	return &OrderResponse{
		Order:            o,
		SequenceOnlyName: o.SequenceOnlyName(),
	}
}

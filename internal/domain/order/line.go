package order

import (
	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Line is a sale order line referencing exactly one product
type Line struct {
	ID        string `db:"id" json:"id"`
	OrderID   string `db:"order_id" json:"order_id"`
	ProductID string `db:"product_id" json:"product_id"`
	// Sequence orders lines within the order and breaks ties when several
	// lines qualify as the default service line
	Sequence     int             `db:"sequence" json:"sequence"`
	Qty          decimal.Decimal `db:"qty" json:"qty"`
	QtyDelivered decimal.Decimal `db:"qty_delivered" json:"qty_delivered"`
	QtyToInvoice decimal.Decimal `db:"qty_to_invoice" json:"qty_to_invoice"`
	UomID        string          `db:"uom_id" json:"uom_id"`
	IsExpense    bool            `db:"is_expense" json:"is_expense"`
	// IsService mirrors the product classification. Stored rather than
	// recomputed per row; backfilled once by migration on existing datasets.
	IsService          bool                     `db:"is_service" json:"is_service"`
	QtyDeliveredMethod types.QtyDeliveredMethod `db:"qty_delivered_method" json:"qty_delivered_method"`
	InvoiceStatus      string                   `db:"invoice_status" json:"invoice_status"`
	UpsellWarningShown bool                     `db:"upsell_warning_shown" json:"upsell_warning_shown"`
	ProjectID          string                   `db:"project_id" json:"project_id"`
	TaskID             string                   `db:"task_id" json:"task_id"`
	types.BaseModel
}

// Invoice status values for a line
const (
	InvoiceStatusNo       = "no"
	InvoiceStatusToDo     = "to invoice"
	InvoiceStatusInvoiced = "invoiced"
	InvoiceStatusUpsell   = "upselling"
)

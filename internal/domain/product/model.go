package product

import (
	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Product is a catalog entry that can appear on an order line
type Product struct {
	ID                string                `db:"id" json:"id"`
	Name              string                `db:"name" json:"name"`
	DefaultCode       string                `db:"default_code" json:"default_code"`
	Type              types.ProductType     `db:"type" json:"type"`
	InvoicePolicy     types.InvoicePolicy   `db:"invoice_policy" json:"invoice_policy"`
	ServiceType       types.ServiceType     `db:"service_type" json:"service_type"`
	ServiceTracking   types.ServiceTracking `db:"service_tracking" json:"service_tracking"`
	ExpensePolicy     types.ExpensePolicy   `db:"expense_policy" json:"expense_policy"`
	ProjectTemplateID string                `db:"project_template_id" json:"project_template_id"`
	UomID             string                `db:"uom_id" json:"uom_id"`
	SaleOK            bool                  `db:"sale_ok" json:"sale_ok"`
	// UpsellThreshold is the delivered/ordered ratio past which a prepaid
	// service line should prompt an upsell, 1.0 when unset
	UpsellThreshold decimal.Decimal `db:"upsell_threshold" json:"upsell_threshold"`
	types.BaseModel
}

// IsServiceLike reports whether this product participates in service
// behaviors. Single point of truth together with
// types.ProductType.IsServiceLike; never compare type codes inline.
func (p *Product) IsServiceLike() bool {
	return p.Type.IsServiceLike()
}

// ServicePolicy is the sales-facing policy derived from the invoice policy
// and service type. Service-like products with no explicit delivery setting
// default to ordered_prepaid.
func (p *Product) ServicePolicy() types.ServicePolicy {
	return types.ServicePolicyFromGeneral(p.InvoicePolicy, p.ServiceType)
}

// IsDeliveredTimesheet reports whether delivered quantities on this product
// come from timesheets.
func (p *Product) IsDeliveredTimesheet() bool {
	return p.IsServiceLike() && p.ServicePolicy() == types.ServicePolicyDeliveredTimesheet
}

// IsDeliveredMilestones reports whether delivered quantities on this product
// come from reached milestones.
func (p *Product) IsDeliveredMilestones() bool {
	return p.IsServiceLike() && p.ServicePolicy() == types.ServicePolicyDeliveredMilestones
}

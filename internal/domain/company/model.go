package company

import (
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Company holds the company-level settings consumed by this layer
type Company struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	// ProjectTimeUomID is the unit projects plan time in; allocated hours on
	// synthesized projects are converted into it
	ProjectTimeUomID string `db:"project_time_uom_id" json:"project_time_uom_id"`
	// DiscountProductID is the default product used for discounts; restricted
	// to service-like products invoiced on ordered quantities
	DiscountProductID string `db:"discount_product_id" json:"discount_product_id"`
	// DepositProductID is the default product used for down payments; same
	// restriction as DiscountProductID
	DepositProductID string `db:"deposit_product_id" json:"deposit_product_id"`
	types.BaseModel
}

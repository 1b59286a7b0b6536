package uom

import (
	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Well-known unit lookup keys
const (
	LookupKeyUnit = "unit"
	LookupKeyHour = "hour"
	LookupKeyDay  = "day"
)

// Category names group convertible units
const (
	CategoryUnit     = "unit"
	CategoryWorkTime = "work_time"
)

// UnitOfMeasure is a factor-based unit. Factor is the ratio of this unit to
// the reference unit of its category; FactorInv is its inverse, stored to
// avoid repeated divisions.
type UnitOfMeasure struct {
	ID        string          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	LookupKey string          `db:"lookup_key" json:"lookup_key"`
	Category  string          `db:"category" json:"category"`
	Factor    decimal.Decimal `db:"factor" json:"factor"`
	FactorInv decimal.Decimal `db:"factor_inv" json:"factor_inv"`
	types.BaseModel
}

// Convert converts a quantity expressed in this unit into the target unit.
// Both units must share a category.
func (u *UnitOfMeasure) Convert(qty decimal.Decimal, to *UnitOfMeasure) decimal.Decimal {
	return qty.Mul(to.Factor).Mul(u.FactorInv)
}

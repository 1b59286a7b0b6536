package project

import (
	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Project tracks the work sold on an order. When auto-created from an order
// line, that line becomes the originating link and determines default billing
// pricing.
type Project struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	CustomerID string `db:"customer_id" json:"customer_id"`
	CompanyID  string `db:"company_id" json:"company_id"`
	// SaleLineID is the originating order line; empty for standalone projects
	SaleLineID  string                   `db:"sale_line_id" json:"sale_line_id"`
	SaleOrderID string                   `db:"sale_order_id" json:"sale_order_id"`
	BillingType types.ProjectBillingType `db:"billing_type" json:"billing_type"`
	PricingType types.ProjectPricingType `db:"pricing_type" json:"pricing_type"`
	// TimesheetProductID is the service used by default when invoicing time
	// spent on tasks; must be a delivered-timesheet service-like product
	TimesheetProductID string          `db:"timesheet_product_id" json:"timesheet_product_id"`
	AllocatedHours     decimal.Decimal `db:"allocated_hours" json:"allocated_hours"`
	AllowBillable      bool            `db:"allow_billable" json:"allow_billable"`
	AllowTimesheets    bool            `db:"allow_timesheets" json:"allow_timesheets"`
	Active             bool            `db:"active" json:"active"`
	types.BaseModel
}

// Task is a unit of work in a project, optionally funded by an order line
type Task struct {
	ID             string          `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	ProjectID      string          `db:"project_id" json:"project_id"`
	SaleLineID     string          `db:"sale_line_id" json:"sale_line_id"`
	CustomerID     string          `db:"customer_id" json:"customer_id"`
	AllocatedHours decimal.Decimal `db:"allocated_hours" json:"allocated_hours"`
	types.BaseModel
}

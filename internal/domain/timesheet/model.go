package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Entry is a timesheet/analytic line. Amount is signed: positive entries are
// revenues, negative entries are costs. InvoiceType is a pure derivation of
// the links and the linked product settings; it is recomputed whenever any
// input changes.
type Entry struct {
	ID         string     `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Date       time.Time  `db:"date" json:"date"`
	ProjectID  string     `db:"project_id" json:"project_id"`
	TaskID     string     `db:"task_id" json:"task_id"`
	SOLineID   string     `db:"so_line_id" json:"so_line_id"`
	EmployeeID string     `db:"employee_id" json:"employee_id"`
	// UnitAmount is the time spent, in the entry's unit of measure
	UnitAmount decimal.Decimal `db:"unit_amount" json:"unit_amount"`
	// Amount is the signed value of the entry
	Amount      decimal.Decimal            `db:"amount" json:"amount"`
	InvoiceType types.TimesheetInvoiceType `db:"invoice_type" json:"invoice_type"`
	// InvoiceID is set once the entry has been billed
	InvoiceID string `db:"invoice_id" json:"invoice_id"`
	types.BaseModel
}

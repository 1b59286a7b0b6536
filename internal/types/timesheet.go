package types

import (
	"github.com/samber/lo"

	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
)

// TimesheetInvoiceType is the revenue/cost category assigned to a timesheet
// or analytic entry for profitability reporting
type TimesheetInvoiceType string

const (
	TimesheetInvoiceTypeBillableTime       TimesheetInvoiceType = "billable_time"
	TimesheetInvoiceTypeBillableFixed      TimesheetInvoiceType = "billable_fixed"
	TimesheetInvoiceTypeBillableMilestones TimesheetInvoiceType = "billable_milestones"
	TimesheetInvoiceTypeBillableManual     TimesheetInvoiceType = "billable_manual"
	TimesheetInvoiceTypeNonBillable        TimesheetInvoiceType = "non_billable"
	TimesheetInvoiceTypeTimesheetRevenues  TimesheetInvoiceType = "timesheet_revenues"
	TimesheetInvoiceTypeServiceRevenues    TimesheetInvoiceType = "service_revenues"
	TimesheetInvoiceTypeOtherRevenues      TimesheetInvoiceType = "other_revenues"
	TimesheetInvoiceTypeOtherCosts         TimesheetInvoiceType = "other_costs"
)

func (t TimesheetInvoiceType) String() string {
	return string(t)
}

func (t TimesheetInvoiceType) Validate() error {
	allowed := []TimesheetInvoiceType{
		TimesheetInvoiceTypeBillableTime,
		TimesheetInvoiceTypeBillableFixed,
		TimesheetInvoiceTypeBillableMilestones,
		TimesheetInvoiceTypeBillableManual,
		TimesheetInvoiceTypeNonBillable,
		TimesheetInvoiceTypeTimesheetRevenues,
		TimesheetInvoiceTypeServiceRevenues,
		TimesheetInvoiceTypeOtherRevenues,
		TimesheetInvoiceTypeOtherCosts,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid timesheet invoice type").
			WithHint("Please provide a valid timesheet invoice type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ProjectBillingType is how work logged on a project is billed
type ProjectBillingType string

const (
	// ProjectBillingTypeNotBillable excludes the project from invoicing
	ProjectBillingTypeNotBillable ProjectBillingType = "not_billable"
	// ProjectBillingTypeAutomatic bills through the linked sale order items
	ProjectBillingTypeAutomatic ProjectBillingType = "automatic"
	// ProjectBillingTypeManual bills time at manually set rates
	ProjectBillingTypeManual ProjectBillingType = "manually"
)

func (t ProjectBillingType) String() string {
	return string(t)
}

func (t ProjectBillingType) Validate() error {
	allowed := []ProjectBillingType{
		ProjectBillingTypeNotBillable,
		ProjectBillingTypeAutomatic,
		ProjectBillingTypeManual,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid project billing type").
			WithHint("Please provide a valid project billing type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ProjectPricingType is how rates are picked when billing project time
type ProjectPricingType string

const (
	ProjectPricingTypeTaskRate     ProjectPricingType = "task_rate"
	ProjectPricingTypeEmployeeRate ProjectPricingType = "employee_rate"
	ProjectPricingTypeFixedRate    ProjectPricingType = "fixed_rate"
)

func (t ProjectPricingType) String() string {
	return string(t)
}

func (t ProjectPricingType) Validate() error {
	allowed := []ProjectPricingType{
		ProjectPricingTypeTaskRate,
		ProjectPricingTypeEmployeeRate,
		ProjectPricingTypeFixedRate,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid project pricing type").
			WithHint("Please provide a valid project pricing type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

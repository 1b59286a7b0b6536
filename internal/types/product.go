package types

import (
	"github.com/samber/lo"

	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
)

// ProductType is the sales classification of a sellable item
type ProductType string

const (
	// ProductTypeService is a service sold by time or deliverable
	ProductTypeService ProductType = "service"
	// ProductTypeStorable is a stockable good tracked in inventory
	ProductTypeStorable ProductType = "storable"
	// ProductTypeConsumable is a good whose stock is not tracked
	ProductTypeConsumable ProductType = "consumable"
	// ProductTypeCombo is a bundle of other products
	ProductTypeCombo ProductType = "combo"
)

// serviceLikeTypes is the widened classification set: storable products get
// the project, task and timesheet behaviors historically reserved for
// services. Every classification check in the codebase must go through
// IsServiceLike rather than comparing type codes inline.
var serviceLikeTypes = []ProductType{
	ProductTypeService,
	ProductTypeStorable,
}

func (t ProductType) String() string {
	return string(t)
}

// IsServiceLike reports whether products of this type participate in
// service behaviors (project/task generation, timesheet invoicing).
func (t ProductType) IsServiceLike() bool {
	return lo.Contains(serviceLikeTypes, t)
}

func (t ProductType) Validate() error {
	allowed := []ProductType{
		ProductTypeService,
		ProductTypeStorable,
		ProductTypeConsumable,
		ProductTypeCombo,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid product type").
			WithHint("Please provide a valid product type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoicePolicy controls whether a product is invoiced on ordered or
// delivered quantities
type InvoicePolicy string

const (
	InvoicePolicyOrder    InvoicePolicy = "order"
	InvoicePolicyDelivery InvoicePolicy = "delivery"
)

func (p InvoicePolicy) String() string {
	return string(p)
}

func (p InvoicePolicy) Validate() error {
	allowed := []InvoicePolicy{
		InvoicePolicyOrder,
		InvoicePolicyDelivery,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid invoice policy").
			WithHint("Please provide a valid invoice policy").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ServiceType is how the delivered quantity of a service is measured
type ServiceType string

const (
	// ServiceTypeManual lets users set delivered quantities by hand
	ServiceTypeManual ServiceType = "manual"
	// ServiceTypeTimesheet derives delivered quantities from timesheets
	ServiceTypeTimesheet ServiceType = "timesheet"
	// ServiceTypeMilestones derives delivered quantities from reached milestones
	ServiceTypeMilestones ServiceType = "milestones"
)

func (t ServiceType) String() string {
	return string(t)
}

func (t ServiceType) Validate() error {
	allowed := []ServiceType{
		ServiceTypeManual,
		ServiceTypeTimesheet,
		ServiceTypeMilestones,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid service type").
			WithHint("Please provide a valid service type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ServiceTracking controls which project/task records are generated when a
// line with this product is confirmed
type ServiceTracking string

const (
	// ServiceTrackingNo creates nothing
	ServiceTrackingNo ServiceTracking = "no"
	// ServiceTrackingTaskGlobalProject creates a task in an existing project
	ServiceTrackingTaskGlobalProject ServiceTracking = "task_global_project"
	// ServiceTrackingProjectOnly creates an empty project for the order
	ServiceTrackingProjectOnly ServiceTracking = "project_only"
	// ServiceTrackingTaskInProject creates a project with a task per line
	ServiceTrackingTaskInProject ServiceTracking = "task_in_project"
)

func (t ServiceTracking) String() string {
	return string(t)
}

// CreatesProject reports whether this tracking mode synthesizes a new
// project when the order is confirmed.
func (t ServiceTracking) CreatesProject() bool {
	return t == ServiceTrackingProjectOnly || t == ServiceTrackingTaskInProject
}

func (t ServiceTracking) Validate() error {
	allowed := []ServiceTracking{
		ServiceTrackingNo,
		ServiceTrackingTaskGlobalProject,
		ServiceTrackingProjectOnly,
		ServiceTrackingTaskInProject,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid service tracking").
			WithHint("Please provide a valid service tracking mode").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ServicePolicy is the single sales-facing setting that combines the invoice
// policy and the service type of a product
type ServicePolicy string

const (
	ServicePolicyOrderedPrepaid      ServicePolicy = "ordered_prepaid"
	ServicePolicyDeliveredTimesheet  ServicePolicy = "delivered_timesheet"
	ServicePolicyDeliveredMilestones ServicePolicy = "delivered_milestones"
	ServicePolicyDeliveredManual     ServicePolicy = "delivered_manual"
)

func (p ServicePolicy) String() string {
	return string(p)
}

func (p ServicePolicy) Validate() error {
	allowed := []ServicePolicy{
		ServicePolicyOrderedPrepaid,
		ServicePolicyDeliveredTimesheet,
		ServicePolicyDeliveredMilestones,
		ServicePolicyDeliveredManual,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid service policy").
			WithHint("Please provide a valid service policy").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ServicePolicyFromGeneral maps an (invoice policy, service type) pair to the
// sales-facing service policy. Anything invoiced on ordered quantities is
// prepaid regardless of the service type.
func ServicePolicyFromGeneral(policy InvoicePolicy, serviceType ServiceType) ServicePolicy {
	if policy == InvoicePolicyDelivery {
		switch serviceType {
		case ServiceTypeTimesheet:
			return ServicePolicyDeliveredTimesheet
		case ServiceTypeMilestones:
			return ServicePolicyDeliveredMilestones
		case ServiceTypeManual:
			return ServicePolicyDeliveredManual
		}
	}
	return ServicePolicyOrderedPrepaid
}

// GeneralFromServicePolicy is the inverse of ServicePolicyFromGeneral.
func GeneralFromServicePolicy(policy ServicePolicy) (InvoicePolicy, ServiceType) {
	switch policy {
	case ServicePolicyDeliveredTimesheet:
		return InvoicePolicyDelivery, ServiceTypeTimesheet
	case ServicePolicyDeliveredMilestones:
		return InvoicePolicyDelivery, ServiceTypeMilestones
	case ServicePolicyDeliveredManual:
		return InvoicePolicyDelivery, ServiceTypeManual
	default:
		return InvoicePolicyOrder, ServiceTypeManual
	}
}

// ExpensePolicy controls how reimbursable expenses on a product are
// re-invoiced to the customer
type ExpensePolicy string

const (
	ExpensePolicyNo         ExpensePolicy = "no"
	ExpensePolicyCost       ExpensePolicy = "cost"
	ExpensePolicySalesPrice ExpensePolicy = "sales_price"
)

func (p ExpensePolicy) String() string {
	return string(p)
}

func (p ExpensePolicy) Validate() error {
	allowed := []ExpensePolicy{
		ExpensePolicyNo,
		ExpensePolicyCost,
		ExpensePolicySalesPrice,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid expense policy").
			WithHint("Please provide a valid expense policy").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

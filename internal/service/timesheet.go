package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/api/dto"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/project"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// InvoiceTypeInput carries the resolved links of a timesheet entry. Proj,
// Line and Prod are nil when the entry has no such link; Prod is set exactly
// when Line is.
type InvoiceTypeInput struct {
	Proj   *project.Project
	Line   *order.Line
	Prod   *product.Product
	Amount decimal.Decimal
}

// ComputeInvoiceType assigns the revenue/cost category of a timesheet or
// analytic entry. Pure and idempotent; rows are evaluated top-down and the
// first match wins.
func ComputeInvoiceType(in InvoiceTypeInput) types.TimesheetInvoiceType {
	switch {
	case in.Proj != nil && in.Line == nil:
		if in.Proj.BillingType == types.ProjectBillingTypeManual {
			return types.TimesheetInvoiceTypeBillableManual
		}
		return types.TimesheetInvoiceTypeNonBillable

	case in.Proj != nil && in.Line != nil:
		if in.Prod.InvoicePolicy == types.InvoicePolicyDelivery {
			switch in.Prod.ServiceType {
			case types.ServiceTypeTimesheet:
				if in.Amount.IsPositive() {
					return types.TimesheetInvoiceTypeTimesheetRevenues
				}
				return types.TimesheetInvoiceTypeBillableTime
			case types.ServiceTypeMilestones:
				return types.TimesheetInvoiceTypeBillableMilestones
			case types.ServiceTypeManual:
				return types.TimesheetInvoiceTypeBillableManual
			default:
				return types.TimesheetInvoiceTypeBillableFixed
			}
		}
		return types.TimesheetInvoiceTypeBillableFixed

	case in.Line != nil:
		if in.Prod.IsServiceLike() {
			return types.TimesheetInvoiceTypeServiceRevenues
		}
		return types.TimesheetInvoiceTypeOtherRevenues

	default:
		if in.Amount.IsNegative() {
			return types.TimesheetInvoiceTypeOtherCosts
		}
		return types.TimesheetInvoiceTypeOtherRevenues
	}
}

// TimesheetService records time entries and keeps their derived invoice
// type consistent with the linked project and order line.
type TimesheetService interface {
	CreateEntry(ctx context.Context, req dto.CreateTimesheetEntryRequest) (*dto.TimesheetEntryResponse, error)

	// RecomputeInvoiceType re-derives and persists the invoice type of an
	// entry after one of its inputs changed
	RecomputeInvoiceType(ctx context.Context, entryID string) (*dto.TimesheetEntryResponse, error)
}

type timesheetService struct {
	ServiceParams
}

func NewTimesheetService(params ServiceParams) TimesheetService {
	return &timesheetService{
		ServiceParams: params,
	}
}

func (s *timesheetService) CreateEntry(ctx context.Context, req dto.CreateTimesheetEntryRequest) (*dto.TimesheetEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := req.ToEntry(ctx)

	in, err := s.resolveLinks(ctx, entry.ProjectID, entry.SOLineID, entry.Amount)
	if err != nil {
		return nil, err
	}
	entry.InvoiceType = ComputeInvoiceType(in)

	if err := s.TimesheetRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.Logger.Debugw("created timesheet entry",
		"entry_id", entry.ID,
		"so_line_id", entry.SOLineID,
		"invoice_type", entry.InvoiceType)

	return &dto.TimesheetEntryResponse{Entry: entry}, nil
}

func (s *timesheetService) RecomputeInvoiceType(ctx context.Context, entryID string) (*dto.TimesheetEntryResponse, error) {
	entry, err := s.TimesheetRepo.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}

	in, err := s.resolveLinks(ctx, entry.ProjectID, entry.SOLineID, entry.Amount)
	if err != nil {
		return nil, err
	}

	invoiceType := ComputeInvoiceType(in)
	if invoiceType == entry.InvoiceType {
		return &dto.TimesheetEntryResponse{Entry: entry}, nil
	}

	entry.InvoiceType = invoiceType
	if err := s.TimesheetRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return &dto.TimesheetEntryResponse{Entry: entry}, nil
}

func (s *timesheetService) resolveLinks(ctx context.Context, projectID, lineID string, amount decimal.Decimal) (InvoiceTypeInput, error) {
	in := InvoiceTypeInput{Amount: amount}

	if projectID != "" {
		proj, err := s.ProjectRepo.Get(ctx, projectID)
		if err != nil {
			return in, err
		}
		in.Proj = proj
	}

	if lineID != "" {
		line, err := s.OrderLineRepo.Get(ctx, lineID)
		if err != nil {
			return in, err
		}
		prod, err := s.ProductRepo.Get(ctx, line.ProductID)
		if err != nil {
			return in, ierr.WithError(err).
				WithHint("The order line references an unknown product").
				Mark(ierr.ErrNotFound)
		}
		in.Line = line
		in.Prod = prod
	}

	return in, nil
}

package service

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/company"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// CompanyService maintains the company-level product references. Discount
// and deposit products must be service-like and invoiced on ordered
// quantities, so drawing them on an invoice never waits on a delivery.
type CompanyService interface {
	GetCompany(ctx context.Context, id string) (*company.Company, error)
	SetDiscountProduct(ctx context.Context, companyID, productID string) error
	SetDepositProduct(ctx context.Context, companyID, productID string) error
}

type companyService struct {
	ServiceParams
}

func NewCompanyService(params ServiceParams) CompanyService {
	return &companyService{
		ServiceParams: params,
	}
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*company.Company, error) {
	return s.CompanyRepo.Get(ctx, id)
}

func (s *companyService) SetDiscountProduct(ctx context.Context, companyID, productID string) error {
	return s.setOrderedServiceProduct(ctx, companyID, productID, func(c *company.Company) {
		c.DiscountProductID = productID
	})
}

func (s *companyService) SetDepositProduct(ctx context.Context, companyID, productID string) error {
	return s.setOrderedServiceProduct(ctx, companyID, productID, func(c *company.Company) {
		c.DepositProductID = productID
	})
}

func (s *companyService) setOrderedServiceProduct(ctx context.Context, companyID, productID string, assign func(*company.Company)) error {
	comp, err := s.CompanyRepo.Get(ctx, companyID)
	if err != nil {
		return err
	}

	prod, err := s.ProductRepo.Get(ctx, productID)
	if err != nil {
		return err
	}

	if !prod.IsServiceLike() || prod.InvoicePolicy != types.InvoicePolicyOrder {
		return ierr.NewError("invalid company product").
			WithHint("The product must be a service invoiced on ordered quantities").
			WithReportableDetails(map[string]any{
				"product_id":     productID,
				"type":           prod.Type,
				"invoice_policy": prod.InvoicePolicy,
			}).
			Mark(ierr.ErrValidation)
	}

	assign(comp)
	return s.CompanyRepo.Update(ctx, comp)
}

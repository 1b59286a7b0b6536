package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/company"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/testutil"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type CompanyServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CompanyService
}

func TestCompanyService(t *testing.T) {
	suite.Run(t, new(CompanyServiceSuite))
}

func (s *CompanyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCompanyService(newTestServiceParams(&s.BaseServiceTestSuite))

	ctx := s.GetContext()
	s.NoError(s.GetStores().CompanyRepo.(*testutil.InMemoryCompanyStore).Seed(ctx, &company.Company{
		ID:        testutil.DefaultCompanyID,
		Name:      "Test Company",
		BaseModel: types.GetDefaultBaseModel(ctx),
	}))

	discount := &product.Product{
		ID:              "prod_discount",
		Name:            "Discount",
		Type:            types.ProductTypeService,
		InvoicePolicy:   types.InvoicePolicyOrder,
		ServiceType:     types.ServiceTypeManual,
		ServiceTracking: types.ServiceTrackingNo,
		UpsellThreshold: decimal.NewFromInt(1),
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
	delivered := &product.Product{
		ID:              "prod_delivered",
		Name:            "Delivered Service",
		Type:            types.ProductTypeService,
		InvoicePolicy:   types.InvoicePolicyDelivery,
		ServiceType:     types.ServiceTypeTimesheet,
		ServiceTracking: types.ServiceTrackingNo,
		UpsellThreshold: decimal.NewFromInt(1),
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
	goods := &product.Product{
		ID:              "prod_goods",
		Name:            "Goods",
		Type:            types.ProductTypeConsumable,
		InvoicePolicy:   types.InvoicePolicyOrder,
		ServiceType:     types.ServiceTypeManual,
		ServiceTracking: types.ServiceTrackingNo,
		UpsellThreshold: decimal.NewFromInt(1),
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
	for _, p := range []*product.Product{discount, delivered, goods} {
		s.NoError(s.GetStores().ProductRepo.Create(ctx, p))
	}
}

func (s *CompanyServiceSuite) TestSetDiscountProduct() {
	s.NoError(s.service.SetDiscountProduct(s.GetContext(), testutil.DefaultCompanyID, "prod_discount"))

	comp, err := s.service.GetCompany(s.GetContext(), testutil.DefaultCompanyID)
	s.NoError(err)
	s.Equal("prod_discount", comp.DiscountProductID)
}

func (s *CompanyServiceSuite) TestSetDiscountProductRejectsDeliveredPolicy() {
	err := s.service.SetDiscountProduct(s.GetContext(), testutil.DefaultCompanyID, "prod_delivered")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CompanyServiceSuite) TestSetDepositProductRejectsNonService() {
	err := s.service.SetDepositProduct(s.GetContext(), testutil.DefaultCompanyID, "prod_goods")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CompanyServiceSuite) TestSetDepositProduct() {
	s.NoError(s.service.SetDepositProduct(s.GetContext(), testutil.DefaultCompanyID, "prod_discount"))

	comp, err := s.service.GetCompany(s.GetContext(), testutil.DefaultCompanyID)
	s.NoError(err)
	s.Equal("prod_discount", comp.DepositProductID)
}

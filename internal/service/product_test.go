package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/api/dto"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/testutil"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type ProductServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewProductService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *ProductServiceSuite) TestCreateProductClassification() {
	testCases := []struct {
		name        string
		productType types.ProductType
		serviceLike bool
	}{
		{name: "service_is_service_like", productType: types.ProductTypeService, serviceLike: true},
		{name: "storable_is_service_like", productType: types.ProductTypeStorable, serviceLike: true},
		{name: "consumable_is_not", productType: types.ProductTypeConsumable, serviceLike: false},
		{name: "combo_is_not", productType: types.ProductTypeCombo, serviceLike: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
				Name: "Product " + tc.name,
				Type: tc.productType,
			})
			s.NoError(err)
			s.Equal(tc.serviceLike, resp.Product.IsServiceLike())
		})
	}
}

func (s *ProductServiceSuite) TestCreateProductClearsTrackingForNonService() {
	resp, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:              "Consumable with tracking",
		Type:              types.ProductTypeConsumable,
		ServiceTracking:   types.ServiceTrackingTaskInProject,
		ProjectTemplateID: "proj_template",
	})
	s.NoError(err)
	s.Equal(types.ServiceTrackingNo, resp.Product.ServiceTracking)
	s.Empty(resp.Product.ProjectTemplateID)
}

func (s *ProductServiceSuite) TestUpdateProductTypeFlipResetsTracking() {
	resp, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:              "Implementation package",
		Type:              types.ProductTypeStorable,
		InvoicePolicy:     types.InvoicePolicyDelivery,
		ServiceType:       types.ServiceTypeTimesheet,
		ServiceTracking:   types.ServiceTrackingTaskInProject,
		ProjectTemplateID: "proj_template",
	})
	s.NoError(err)
	s.Equal(types.ServiceTrackingTaskInProject, resp.Product.ServiceTracking)

	updated, err := s.service.UpdateProduct(s.GetContext(), resp.Product.ID, dto.UpdateProductRequest{
		Type: lo.ToPtr(types.ProductTypeConsumable),
	})
	s.NoError(err)
	s.Equal(types.ServiceTrackingNo, updated.Product.ServiceTracking)
	s.Empty(updated.Product.ProjectTemplateID)

	// The reset must be visible on the persisted record, not only the response
	stored, err := s.GetStores().ProductRepo.Get(s.GetContext(), resp.Product.ID)
	s.NoError(err)
	s.Equal(types.ProductTypeConsumable, stored.Type)
	s.Equal(types.ServiceTrackingNo, stored.ServiceTracking)
	s.Empty(stored.ProjectTemplateID)
}

func (s *ProductServiceSuite) TestUpdateProductServicePolicy() {
	resp, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name: "Consulting",
		Type: types.ProductTypeService,
	})
	s.NoError(err)
	s.Equal(types.ServicePolicyOrderedPrepaid, resp.ServicePolicy)

	updated, err := s.service.UpdateProduct(s.GetContext(), resp.Product.ID, dto.UpdateProductRequest{
		ServicePolicy: lo.ToPtr(types.ServicePolicyDeliveredTimesheet),
	})
	s.NoError(err)
	s.Equal(types.InvoicePolicyDelivery, updated.Product.InvoicePolicy)
	s.Equal(types.ServiceTypeTimesheet, updated.Product.ServiceType)
	s.Equal(types.ServicePolicyDeliveredTimesheet, updated.ServicePolicy)
}

func (s *ProductServiceSuite) TestCreateProductInvalidType() {
	_, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name: "Bad type",
		Type: types.ProductType("digital"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ProductServiceSuite) TestGetProductMissing() {
	_, err := s.service.GetProduct(s.GetContext(), "prod_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

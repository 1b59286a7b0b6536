package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/company"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/customer"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/uom"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/testutil"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

type ProjectServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ProjectService
	testData struct {
		uoms struct {
			unit *uom.UnitOfMeasure
			hour *uom.UnitOfMeasure
			day  *uom.UnitOfMeasure
		}
		products struct {
			implementation *product.Product // delivered on timesheets, shared template
			training       *product.Product // same template, sold in days
			addon          *product.Product // different template
		}
		order *order.Order
	}
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceSuite))
}

func (s *ProjectServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewProjectService(newTestServiceParams(&s.BaseServiceTestSuite))
	s.setupTestData()
}

func (s *ProjectServiceSuite) setupTestData() {
	ctx := s.GetContext()

	s.testData.uoms.unit = &uom.UnitOfMeasure{
		ID:        "uom_unit",
		Name:      "Units",
		LookupKey: uom.LookupKeyUnit,
		Category:  uom.CategoryUnit,
		Factor:    decimal.NewFromInt(1),
		FactorInv: decimal.NewFromInt(1),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.testData.uoms.hour = &uom.UnitOfMeasure{
		ID:        "uom_hour",
		Name:      "Hours",
		LookupKey: uom.LookupKeyHour,
		Category:  uom.CategoryWorkTime,
		Factor:    decimal.NewFromInt(1),
		FactorInv: decimal.NewFromInt(1),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	// 1 day = 8 hours relative to the hour reference
	s.testData.uoms.day = &uom.UnitOfMeasure{
		ID:        "uom_day",
		Name:      "Days",
		LookupKey: uom.LookupKeyDay,
		Category:  uom.CategoryWorkTime,
		Factor:    decimal.NewFromInt(1).Div(decimal.NewFromInt(8)),
		FactorInv: decimal.NewFromInt(8),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	uomStore := s.GetStores().UomRepo.(*testutil.InMemoryUomStore)
	for _, u := range []*uom.UnitOfMeasure{s.testData.uoms.unit, s.testData.uoms.hour, s.testData.uoms.day} {
		s.NoError(uomStore.Seed(ctx, u))
	}

	s.NoError(s.GetStores().CompanyRepo.(*testutil.InMemoryCompanyStore).Seed(ctx, &company.Company{
		ID:               testutil.DefaultCompanyID,
		Name:             "Test Company",
		ProjectTimeUomID: s.testData.uoms.hour.ID,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}))

	s.NoError(s.GetStores().CustomerRepo.Create(ctx, &customer.Customer{
		ID:        "cust_acme",
		Name:      "Acme Corp",
		BaseModel: types.GetDefaultBaseModel(ctx),
	}))

	s.testData.products.implementation = &product.Product{
		ID:                "prod_impl",
		Name:              "Implementation",
		Type:              types.ProductTypeService,
		InvoicePolicy:     types.InvoicePolicyDelivery,
		ServiceType:       types.ServiceTypeTimesheet,
		ServiceTracking:   types.ServiceTrackingTaskInProject,
		ProjectTemplateID: "tmpl_delivery",
		UomID:             s.testData.uoms.hour.ID,
		UpsellThreshold:   decimal.NewFromInt(1),
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
	s.testData.products.training = &product.Product{
		ID:                "prod_training",
		Name:              "Training",
		Type:              types.ProductTypeStorable,
		InvoicePolicy:     types.InvoicePolicyDelivery,
		ServiceType:       types.ServiceTypeTimesheet,
		ServiceTracking:   types.ServiceTrackingTaskInProject,
		ProjectTemplateID: "tmpl_delivery",
		UomID:             s.testData.uoms.day.ID,
		UpsellThreshold:   decimal.NewFromInt(1),
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
	s.testData.products.addon = &product.Product{
		ID:                "prod_addon",
		Name:              "Addon",
		Type:              types.ProductTypeService,
		InvoicePolicy:     types.InvoicePolicyDelivery,
		ServiceType:       types.ServiceTypeTimesheet,
		ServiceTracking:   types.ServiceTrackingProjectOnly,
		ProjectTemplateID: "tmpl_other",
		UomID:             s.testData.uoms.unit.ID,
		UpsellThreshold:   decimal.NewFromInt(1),
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
	for _, p := range []*product.Product{
		s.testData.products.implementation,
		s.testData.products.training,
		s.testData.products.addon,
	} {
		s.NoError(s.GetStores().ProductRepo.Create(ctx, p))
	}

	s.testData.order = &order.Order{
		ID:         "ord_1",
		Name:       "S00042-Acme Corp",
		State:      types.OrderStateSale,
		CustomerID: "cust_acme",
		Lines: []*order.Line{
			{
				ID:                 "line_impl",
				OrderID:            "ord_1",
				ProductID:          s.testData.products.implementation.ID,
				Sequence:           10,
				Qty:                decimal.NewFromInt(3),
				UomID:              s.testData.uoms.hour.ID,
				IsService:          true,
				QtyDeliveredMethod: types.QtyDeliveredMethodTimesheet,
				InvoiceStatus:      order.InvoiceStatusNo,
				BaseModel:          types.GetDefaultBaseModel(ctx),
			},
			{
				ID:                 "line_training",
				OrderID:            "ord_1",
				ProductID:          s.testData.products.training.ID,
				Sequence:           20,
				Qty:                decimal.NewFromInt(2),
				UomID:              s.testData.uoms.day.ID,
				IsService:          true,
				QtyDeliveredMethod: types.QtyDeliveredMethodTimesheet,
				InvoiceStatus:      order.InvoiceStatusNo,
				BaseModel:          types.GetDefaultBaseModel(ctx),
			},
			{
				ID:                 "line_addon",
				OrderID:            "ord_1",
				ProductID:          s.testData.products.addon.ID,
				Sequence:           30,
				Qty:                decimal.NewFromInt(5),
				UomID:              s.testData.uoms.unit.ID,
				IsService:          true,
				QtyDeliveredMethod: types.QtyDeliveredMethodTimesheet,
				InvoiceStatus:      order.InvoiceStatusNo,
				BaseModel:          types.GetDefaultBaseModel(ctx),
			},
		},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().OrderRepo.Create(ctx, s.testData.order))
}

func (s *ProjectServiceSuite) TestCreateProjectFromLineNaming() {
	proj, err := s.service.CreateProjectFromLine(s.GetContext(), "line_impl")
	s.NoError(err)
	s.Equal("S00042-Acme Corp - Acme Corp", proj.Name)
	s.Equal("ord_1", proj.SaleOrderID)
	s.Equal("line_impl", proj.SaleLineID)
	s.Equal(types.ProjectBillingTypeAutomatic, proj.BillingType)
	s.True(proj.AllowBillable)
	s.True(proj.AllowTimesheets)
}

func (s *ProjectServiceSuite) TestCreateProjectAllocatedHoursAcrossTemplate() {
	// 3 hours + 2 days at 8 hours each; the addon line belongs to another
	// template and must not count
	proj, err := s.service.CreateProjectFromLine(s.GetContext(), "line_impl")
	s.NoError(err)
	s.True(proj.AllocatedHours.Equal(decimal.NewFromInt(19)),
		"expected 19 allocated hours, got %s", proj.AllocatedHours)
}

func (s *ProjectServiceSuite) TestCreateProjectAllocatedHoursSkipUntrackedLines() {
	// A timesheet service sold without its own project must not inflate the
	// budget of the project another line creates
	ctx := s.GetContext()
	hotline := &product.Product{
		ID:                "prod_hotline",
		Name:              "Hotline",
		Type:              types.ProductTypeService,
		InvoicePolicy:     types.InvoicePolicyDelivery,
		ServiceType:       types.ServiceTypeTimesheet,
		ServiceTracking:   types.ServiceTrackingTaskGlobalProject,
		ProjectTemplateID: "tmpl_delivery",
		UomID:             s.testData.uoms.hour.ID,
		UpsellThreshold:   decimal.NewFromInt(1),
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().ProductRepo.Create(ctx, hotline))
	s.NoError(s.GetStores().OrderLineRepo.Create(ctx, &order.Line{
		ID:                 "line_hotline",
		OrderID:            "ord_1",
		ProductID:          hotline.ID,
		Sequence:           40,
		Qty:                decimal.NewFromInt(100),
		UomID:              s.testData.uoms.hour.ID,
		IsService:          true,
		QtyDeliveredMethod: types.QtyDeliveredMethodTimesheet,
		InvoiceStatus:      order.InvoiceStatusNo,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}))

	proj, err := s.service.CreateProjectFromLine(ctx, "line_impl")
	s.NoError(err)
	s.True(proj.AllocatedHours.Equal(decimal.NewFromInt(19)),
		"expected 19 allocated hours, got %s", proj.AllocatedHours)
}

func (s *ProjectServiceSuite) TestCreateProjectForeignUomContributesNothing() {
	// Quantities sold in a unit that cannot convert to the project time
	// category are left out of the budget entirely
	ctx := s.GetContext()
	kg := &uom.UnitOfMeasure{
		ID:        "uom_kg",
		Name:      "Kilograms",
		LookupKey: "kg",
		Category:  "weight",
		Factor:    decimal.NewFromInt(1),
		FactorInv: decimal.NewFromInt(1),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().UomRepo.(*testutil.InMemoryUomStore).Seed(ctx, kg))

	bulk := &product.Product{
		ID:                "prod_bulk",
		Name:              "Bulk Material",
		Type:              types.ProductTypeStorable,
		InvoicePolicy:     types.InvoicePolicyDelivery,
		ServiceType:       types.ServiceTypeTimesheet,
		ServiceTracking:   types.ServiceTrackingTaskInProject,
		ProjectTemplateID: "tmpl_delivery",
		UomID:             kg.ID,
		UpsellThreshold:   decimal.NewFromInt(1),
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().ProductRepo.Create(ctx, bulk))
	s.NoError(s.GetStores().OrderLineRepo.Create(ctx, &order.Line{
		ID:                 "line_bulk",
		OrderID:            "ord_1",
		ProductID:          bulk.ID,
		Sequence:           50,
		Qty:                decimal.NewFromInt(7),
		UomID:              kg.ID,
		IsService:          true,
		QtyDeliveredMethod: types.QtyDeliveredMethodTimesheet,
		InvoiceStatus:      order.InvoiceStatusNo,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}))

	proj, err := s.service.CreateProjectFromLine(ctx, "line_impl")
	s.NoError(err)
	s.True(proj.AllocatedHours.Equal(decimal.NewFromInt(19)),
		"expected 19 allocated hours, got %s", proj.AllocatedHours)
}

func (s *ProjectServiceSuite) TestCreateProjectUnitFallsBackToHours() {
	// The addon line is sold in the generic unit measure: 5 units read as 5 hours
	proj, err := s.service.CreateProjectFromLine(s.GetContext(), "line_addon")
	s.NoError(err)
	s.True(proj.AllocatedHours.Equal(decimal.NewFromInt(5)),
		"expected 5 allocated hours, got %s", proj.AllocatedHours)
}

func (s *ProjectServiceSuite) TestCreateProjectLinksLine() {
	proj, err := s.service.CreateProjectFromLine(s.GetContext(), "line_impl")
	s.NoError(err)

	line, err := s.GetStores().OrderLineRepo.Get(s.GetContext(), "line_impl")
	s.NoError(err)
	s.Equal(proj.ID, line.ProjectID)
}

func (s *ProjectServiceSuite) TestCreateProjectSetsTimesheetProduct() {
	proj, err := s.service.CreateProjectFromLine(s.GetContext(), "line_impl")
	s.NoError(err)
	s.Equal(s.testData.products.implementation.ID, proj.TimesheetProductID)
}

func (s *ProjectServiceSuite) TestCreateProjectRejectsNonServiceLine() {
	ctx := s.GetContext()
	s.NoError(s.GetStores().OrderLineRepo.Create(ctx, &order.Line{
		ID:                 "line_goods",
		OrderID:            "ord_1",
		ProductID:          s.testData.products.implementation.ID,
		Sequence:           40,
		Qty:                decimal.NewFromInt(1),
		UomID:              s.testData.uoms.unit.ID,
		IsService:          false,
		QtyDeliveredMethod: types.QtyDeliveredMethodManual,
		InvoiceStatus:      order.InvoiceStatusNo,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}))

	_, err := s.service.CreateProjectFromLine(ctx, "line_goods")
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ProjectServiceSuite) TestCreateTaskFromLine() {
	proj, err := s.service.CreateProjectFromLine(s.GetContext(), "line_training")
	s.NoError(err)

	task, err := s.service.CreateTaskFromLine(s.GetContext(), "line_training", proj.ID)
	s.NoError(err)
	s.Equal("S00042-Acme Corp: Training", task.Name)
	s.True(task.AllocatedHours.Equal(decimal.NewFromInt(16)))

	line, err := s.GetStores().OrderLineRepo.Get(s.GetContext(), "line_training")
	s.NoError(err)
	s.Equal(task.ID, line.TaskID)
	s.Equal(proj.ID, line.ProjectID)
}

func (s *ProjectServiceSuite) TestSetTimesheetProductValidation() {
	proj, err := s.service.CreateProjectFromLine(s.GetContext(), "line_impl")
	s.NoError(err)

	prepaid := &product.Product{
		ID:              "prod_prepaid",
		Name:            "Prepaid Pack",
		Type:            types.ProductTypeService,
		InvoicePolicy:   types.InvoicePolicyOrder,
		ServiceType:     types.ServiceTypeManual,
		ServiceTracking: types.ServiceTrackingNo,
		UomID:           s.testData.uoms.hour.ID,
		UpsellThreshold: decimal.NewFromInt(1),
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ProductRepo.Create(s.GetContext(), prepaid))

	err = s.service.SetTimesheetProduct(s.GetContext(), proj.ID, prepaid.ID)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	s.NoError(s.service.SetTimesheetProduct(s.GetContext(), proj.ID, s.testData.products.training.ID))
	updated, err := s.GetStores().ProjectRepo.Get(s.GetContext(), proj.ID)
	s.NoError(err)
	s.Equal(s.testData.products.training.ID, updated.TimesheetProductID)
}

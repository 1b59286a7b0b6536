package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/company"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/customer"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/project"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/timesheet"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/uom"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/testutil"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

func TestResolveQtyDeliveredMethod(t *testing.T) {
	testCases := []struct {
		name        string
		productType types.ProductType
		serviceType types.ServiceType
		isExpense   bool
		expected    types.QtyDeliveredMethod
	}{
		{
			name:        "expense_dominates_everything",
			productType: types.ProductTypeService,
			serviceType: types.ServiceTypeTimesheet,
			isExpense:   true,
			expected:    types.QtyDeliveredMethodAnalytic,
		},
		{
			name:        "expense_on_non_service_product",
			productType: types.ProductTypeConsumable,
			serviceType: types.ServiceTypeManual,
			isExpense:   true,
			expected:    types.QtyDeliveredMethodAnalytic,
		},
		{
			name:        "service_milestones",
			productType: types.ProductTypeService,
			serviceType: types.ServiceTypeMilestones,
			expected:    types.QtyDeliveredMethodMilestones,
		},
		{
			name:        "storable_milestones",
			productType: types.ProductTypeStorable,
			serviceType: types.ServiceTypeMilestones,
			expected:    types.QtyDeliveredMethodMilestones,
		},
		{
			name:        "service_timesheet",
			productType: types.ProductTypeService,
			serviceType: types.ServiceTypeTimesheet,
			expected:    types.QtyDeliveredMethodTimesheet,
		},
		{
			name:        "storable_timesheet",
			productType: types.ProductTypeStorable,
			serviceType: types.ServiceTypeTimesheet,
			expected:    types.QtyDeliveredMethodTimesheet,
		},
		{
			name:        "consumable_timesheet_stays_manual",
			productType: types.ProductTypeConsumable,
			serviceType: types.ServiceTypeTimesheet,
			expected:    types.QtyDeliveredMethodManual,
		},
		{
			name:        "service_manual",
			productType: types.ProductTypeService,
			serviceType: types.ServiceTypeManual,
			expected:    types.QtyDeliveredMethodManual,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line := &order.Line{IsExpense: tc.isExpense}
			prod := &product.Product{
				Type:        tc.productType,
				ServiceType: tc.serviceType,
			}
			assert.Equal(t, tc.expected, ResolveQtyDeliveredMethod(line, prod))
		})
	}
}

type OrderLineServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  OrderLineService
	testData struct {
		order       *order.Order
		supportLine *order.Line
		prepaidLine *order.Line
	}
}

func TestOrderLineService(t *testing.T) {
	suite.Run(t, new(OrderLineServiceSuite))
}

func (s *OrderLineServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewOrderLineService(newTestServiceParams(&s.BaseServiceTestSuite))
	s.setupTestData()
}

func (s *OrderLineServiceSuite) setupTestData() {
	ctx := s.GetContext()

	hour := &uom.UnitOfMeasure{
		ID:        "uom_hour",
		Name:      "Hours",
		LookupKey: uom.LookupKeyHour,
		Category:  uom.CategoryWorkTime,
		Factor:    decimal.NewFromInt(1),
		FactorInv: decimal.NewFromInt(1),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().UomRepo.(*testutil.InMemoryUomStore).Seed(ctx, hour))

	s.NoError(s.GetStores().CompanyRepo.(*testutil.InMemoryCompanyStore).Seed(ctx, &company.Company{
		ID:               testutil.DefaultCompanyID,
		Name:             "Test Company",
		ProjectTimeUomID: hour.ID,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}))

	s.NoError(s.GetStores().CustomerRepo.Create(ctx, &customer.Customer{
		ID:        "cust_acme",
		Name:      "Acme Corp",
		BaseModel: types.GetDefaultBaseModel(ctx),
	}))

	support := &product.Product{
		ID:              "prod_support",
		Name:            "Support Hours",
		Type:            types.ProductTypeService,
		InvoicePolicy:   types.InvoicePolicyDelivery,
		ServiceType:     types.ServiceTypeTimesheet,
		ServiceTracking: types.ServiceTrackingTaskInProject,
		UomID:           hour.ID,
		UpsellThreshold: decimal.NewFromInt(1),
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
	prepaid := &product.Product{
		ID:              "prod_prepaid",
		Name:            "Prepaid Pack",
		Type:            types.ProductTypeStorable,
		InvoicePolicy:   types.InvoicePolicyOrder,
		ServiceType:     types.ServiceTypeTimesheet,
		ServiceTracking: types.ServiceTrackingNo,
		UomID:           hour.ID,
		UpsellThreshold: decimal.NewFromInt(1),
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().ProductRepo.Create(ctx, support))
	s.NoError(s.GetStores().ProductRepo.Create(ctx, prepaid))

	s.testData.supportLine = &order.Line{
		ID:                 "line_support",
		OrderID:            "ord_1",
		ProductID:          support.ID,
		Sequence:           10,
		Qty:                decimal.NewFromInt(10),
		UomID:              hour.ID,
		IsService:          true,
		QtyDeliveredMethod: types.QtyDeliveredMethodTimesheet,
		InvoiceStatus:      order.InvoiceStatusNo,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
	s.testData.prepaidLine = &order.Line{
		ID:                 "line_prepaid",
		OrderID:            "ord_1",
		ProductID:          prepaid.ID,
		Sequence:           20,
		Qty:                decimal.NewFromInt(10),
		UomID:              hour.ID,
		IsService:          true,
		QtyDeliveredMethod: types.QtyDeliveredMethodTimesheet,
		InvoiceStatus:      order.InvoiceStatusNo,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
	s.testData.order = &order.Order{
		ID:         "ord_1",
		Name:       "S00001-Acme Corp",
		State:      types.OrderStateSale,
		CustomerID: "cust_acme",
		Lines:      []*order.Line{s.testData.supportLine, s.testData.prepaidLine},
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().OrderRepo.Create(ctx, s.testData.order))
}

func (s *OrderLineServiceSuite) addTimesheet(id, lineID string, hours float64, invoiceID string) {
	entry := &timesheet.Entry{
		ID:          id,
		Name:        "work",
		Date:        s.GetNow(),
		SOLineID:    lineID,
		UnitAmount:  decimal.NewFromFloat(hours),
		Amount:      decimal.NewFromFloat(-hours * 50),
		InvoiceType: types.TimesheetInvoiceTypeBillableTime,
		InvoiceID:   invoiceID,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TimesheetRepo.Create(s.GetContext(), entry))
}

func (s *OrderLineServiceSuite) TestRecomputeDeliveredQty() {
	s.addTimesheet("ts_1", s.testData.supportLine.ID, 3, "")
	s.addTimesheet("ts_2", s.testData.supportLine.ID, 2.5, "")
	s.addTimesheet("ts_3", s.testData.supportLine.ID, 4, "inv_1") // already billed

	s.NoError(s.service.RecomputeDeliveredQty(s.GetContext(), s.testData.order.ID))

	line, err := s.GetStores().OrderLineRepo.Get(s.GetContext(), s.testData.supportLine.ID)
	s.NoError(err)
	s.True(line.QtyDelivered.Equal(decimal.NewFromFloat(5.5)))
	s.Equal(order.InvoiceStatusToDo, line.InvoiceStatus)
}

func (s *OrderLineServiceSuite) TestRecomputeDeliveredQtyUpsell() {
	s.addTimesheet("ts_1", s.testData.prepaidLine.ID, 10, "")
	s.addTimesheet("ts_2", s.testData.prepaidLine.ID, 1, "")

	s.NoError(s.service.RecomputeDeliveredQty(s.GetContext(), s.testData.order.ID))

	line, err := s.GetStores().OrderLineRepo.Get(s.GetContext(), s.testData.prepaidLine.ID)
	s.NoError(err)
	s.True(line.QtyDelivered.Equal(decimal.NewFromInt(11)))
	s.Equal(order.InvoiceStatusUpsell, line.InvoiceStatus)
	s.True(line.UpsellWarningShown)

	// A second recompute must not re-raise the dismissed warning
	s.NoError(s.service.RecomputeDeliveredQty(s.GetContext(), s.testData.order.ID))
	line, err = s.GetStores().OrderLineRepo.Get(s.GetContext(), s.testData.prepaidLine.ID)
	s.NoError(err)
	s.NotEqual(order.InvoiceStatusUpsell, line.InvoiceStatus)
}

func (s *OrderLineServiceSuite) TestRecomputeDeliveredQtyExactlyAtThresholdIsNotUpsell() {
	// Delivering exactly the ordered quantity is plain fulfilment; only
	// exceeding the threshold raises the upsell warning
	s.addTimesheet("ts_1", s.testData.prepaidLine.ID, 10, "")

	s.NoError(s.service.RecomputeDeliveredQty(s.GetContext(), s.testData.order.ID))

	line, err := s.GetStores().OrderLineRepo.Get(s.GetContext(), s.testData.prepaidLine.ID)
	s.NoError(err)
	s.True(line.QtyDelivered.Equal(decimal.NewFromInt(10)))
	s.Equal(order.InvoiceStatusToDo, line.InvoiceStatus)
	s.False(line.UpsellWarningShown)
}

func (s *OrderLineServiceSuite) TestUpdateOrderedQtyPropagatesToTask() {
	task := s.seedTaskForSupportLine()

	_, err := s.service.UpdateOrderedQty(s.GetContext(), s.testData.supportLine.ID, decimal.NewFromInt(16))
	s.NoError(err)

	updated, err := s.GetStores().TaskRepo.Get(s.GetContext(), task.ID)
	s.NoError(err)
	s.True(updated.AllocatedHours.Equal(decimal.NewFromInt(16)))
}

func (s *OrderLineServiceSuite) TestUpdateOrderedQtyRejectsNegative() {
	_, err := s.service.UpdateOrderedQty(s.GetContext(), s.testData.supportLine.ID, decimal.NewFromInt(-1))
	s.Error(err)
}

func (s *OrderLineServiceSuite) seedTaskForSupportLine() *project.Task {
	projectSvc := NewProjectService(newTestServiceParams(&s.BaseServiceTestSuite))
	proj, err := projectSvc.CreateProjectFromLine(s.GetContext(), s.testData.supportLine.ID)
	s.NoError(err)
	task, err := projectSvc.CreateTaskFromLine(s.GetContext(), s.testData.supportLine.ID, proj.ID)
	s.NoError(err)
	return task
}

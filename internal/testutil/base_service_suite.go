package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/config"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/company"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/customer"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/order"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/project"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/sequence"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/timesheet"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/uom"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/validator"
)

// DefaultCompanyID is the company seeded into the test context
const DefaultCompanyID = "comp_test"

// Stores holds all the repository interfaces for testing
type Stores struct {
	ProductRepo   product.Repository
	CustomerRepo  customer.Repository
	OrderRepo     order.Repository
	OrderLineRepo order.LineRepository
	ProjectRepo   project.Repository
	TaskRepo      project.TaskRepository
	TimesheetRepo timesheet.Repository
	CompanyRepo   company.Repository
	UomRepo       uom.Repository
	SequenceRepo  sequence.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxTenantID, types.DefaultTenantID)
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxCompanyID, DefaultCompanyID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	lineStore := NewInMemoryOrderLineStore()
	orderStore := NewInMemoryOrderStore(lineStore)
	lineStore.AttachOrderStore(orderStore)

	s.stores = Stores{
		ProductRepo:   NewInMemoryProductStore(),
		CustomerRepo:  NewInMemoryCustomerStore(),
		OrderRepo:     orderStore,
		OrderLineRepo: lineStore,
		ProjectRepo:   NewInMemoryProjectStore(),
		TaskRepo:      NewInMemoryTaskStore(lineStore),
		TimesheetRepo: NewInMemoryTimesheetStore(),
		CompanyRepo:   NewInMemoryCompanyStore(),
		UomRepo:       NewInMemoryUomStore(),
		SequenceRepo:  NewInMemorySequenceStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.ProductRepo.(*InMemoryProductStore).Clear()
	s.stores.CustomerRepo.(*InMemoryCustomerStore).Clear()
	s.stores.OrderRepo.(*InMemoryOrderStore).Clear()
	s.stores.OrderLineRepo.(*InMemoryOrderLineStore).Clear()
	s.stores.ProjectRepo.(*InMemoryProjectStore).Clear()
	s.stores.TaskRepo.(*InMemoryTaskStore).Clear()
	s.stores.TimesheetRepo.(*InMemoryTimesheetStore).Clear()
	s.stores.CompanyRepo.(*InMemoryCompanyStore).Clear()
	s.stores.UomRepo.(*InMemoryUomStore).Clear()
	s.stores.SequenceRepo.(*InMemorySequenceStore).Clear()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current time in UTC at test setup
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

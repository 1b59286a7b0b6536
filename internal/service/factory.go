package service

import (
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
)

// ServiceParams bundles the dependencies shared by all services. Services
// instantiate sibling services from the same params when a flow crosses
// entity boundaries.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

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

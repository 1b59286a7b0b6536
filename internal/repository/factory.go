package repository

import (
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
	postgresRepo "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/repository/postgres"
)

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return postgresRepo.NewProductRepository(db, logger)
}

func NewCustomerRepository(db *postgres.DB, logger *logger.Logger) customer.Repository {
	return postgresRepo.NewCustomerRepository(db, logger)
}

func NewOrderRepository(db *postgres.DB, lineRepo order.LineRepository, logger *logger.Logger) order.Repository {
	return postgresRepo.NewOrderRepository(db, lineRepo, logger)
}

func NewOrderLineRepository(db *postgres.DB, logger *logger.Logger) order.LineRepository {
	return postgresRepo.NewOrderLineRepository(db, logger)
}

func NewProjectRepository(db *postgres.DB, logger *logger.Logger) project.Repository {
	return postgresRepo.NewProjectRepository(db, logger)
}

func NewTaskRepository(db *postgres.DB, logger *logger.Logger) project.TaskRepository {
	return postgresRepo.NewTaskRepository(db, logger)
}

func NewTimesheetRepository(db *postgres.DB, logger *logger.Logger) timesheet.Repository {
	return postgresRepo.NewTimesheetRepository(db, logger)
}

func NewCompanyRepository(db *postgres.DB, logger *logger.Logger) company.Repository {
	return postgresRepo.NewCompanyRepository(db, logger)
}

func NewUomRepository(db *postgres.DB, logger *logger.Logger) uom.Repository {
	return postgresRepo.NewUomRepository(db, logger)
}

func NewSequenceRepository(db *postgres.DB, logger *logger.Logger) sequence.Repository {
	return postgresRepo.NewSequenceRepository(db, logger)
}

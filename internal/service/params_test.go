package service

import (
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/testutil"
)

// newTestServiceParams builds ServiceParams over the suite's in-memory stores
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		DB:            s.GetDB(),
		ProductRepo:   stores.ProductRepo,
		CustomerRepo:  stores.CustomerRepo,
		OrderRepo:     stores.OrderRepo,
		OrderLineRepo: stores.OrderLineRepo,
		ProjectRepo:   stores.ProjectRepo,
		TaskRepo:      stores.TaskRepo,
		TimesheetRepo: stores.TimesheetRepo,
		CompanyRepo:   stores.CompanyRepo,
		UomRepo:       stores.UomRepo,
		SequenceRepo:  stores.SequenceRepo,
	}
}

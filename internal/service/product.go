package service

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/api/dto"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	ierr "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/errors"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// ProductService manages the catalog entries that drive the service
// behaviors of order lines.
type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{
		ServiceParams: params,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToProduct(ctx)
	normalizeTracking(p)

	if err := s.ProductRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created product",
		"product_id", p.ID,
		"type", p.Type,
		"service_tracking", p.ServiceTracking)

	return newProductResponse(p), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, ierr.NewError("product ID is required").
			WithHint("Product ID is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return newProductResponse(p), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.InvoicePolicy != nil {
		p.InvoicePolicy = *req.InvoicePolicy
	}
	if req.ServiceType != nil {
		p.ServiceType = *req.ServiceType
	}
	if req.ServiceTracking != nil {
		p.ServiceTracking = *req.ServiceTracking
	}
	if req.ServicePolicy != nil {
		p.InvoicePolicy, p.ServiceType = types.GeneralFromServicePolicy(*req.ServicePolicy)
	}
	if req.ProjectTemplateID != nil {
		p.ProjectTemplateID = *req.ProjectTemplateID
	}

	// The tracking reset rides the same update as the classification change
	// so no reader ever observes a non-service product with tracking enabled.
	normalizeTracking(p)
	p.Touch(ctx)

	if err := s.ProductRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return newProductResponse(p), nil
}

// normalizeTracking clears the service tracking settings of products whose
// classification is not service-like.
func normalizeTracking(p *product.Product) {
	if p.IsServiceLike() {
		return
	}
	p.ServiceTracking = types.ServiceTrackingNo
	p.ProjectTemplateID = ""
}

func newProductResponse(p *product.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Product:       p,
		ServicePolicy: p.ServicePolicy(),
		Tooltip:       serviceTooltip(p),
	}
}

// serviceTooltip is the sales help text shown next to the service policy
// picker, derived from the policy and tracking of the product.
func serviceTooltip(p *product.Product) string {
	if !p.IsServiceLike() {
		return ""
	}

	var tip string
	switch p.ServicePolicy() {
	case types.ServicePolicyOrderedPrepaid:
		tip = "Invoice ordered quantities as soon as this service is sold."
	case types.ServicePolicyDeliveredTimesheet:
		tip = "Invoice based on timesheets."
	case types.ServicePolicyDeliveredMilestones:
		tip = "Invoice your milestones when they are reached."
	case types.ServicePolicyDeliveredManual:
		tip = "Invoice this service when it is delivered (set the delivered quantity by hand)."
	}

	switch p.ServiceTracking {
	case types.ServiceTrackingTaskGlobalProject:
		tip += " Create a task in an existing project to track the time spent."
	case types.ServiceTrackingProjectOnly:
		tip += " Create an empty project for the order to track the time spent."
	case types.ServiceTrackingTaskInProject:
		tip += " Create a project for the order with a task for each order line to track the time spent."
	}

	return tip
}

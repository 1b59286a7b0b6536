package dto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/product"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/validator"
)

type CreateProductRequest struct {
	Name              string                `json:"name" validate:"required"`
	DefaultCode       string                `json:"default_code"`
	Type              types.ProductType     `json:"type" validate:"required"`
	InvoicePolicy     types.InvoicePolicy   `json:"invoice_policy"`
	ServiceType       types.ServiceType     `json:"service_type"`
	ServiceTracking   types.ServiceTracking `json:"service_tracking"`
	ExpensePolicy     types.ExpensePolicy   `json:"expense_policy"`
	ProjectTemplateID string                `json:"project_template_id"`
	UomID             string                `json:"uom_id"`
	SaleOK            bool                  `json:"sale_ok"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Type.Validate()
}

func (r *CreateProductRequest) ToProduct(ctx context.Context) *product.Product {
	p := &product.Product{
		ID:                types.GenerateUUIDWithPrefix(types.UUIDPrefixProduct),
		Name:              r.Name,
		DefaultCode:       r.DefaultCode,
		Type:              r.Type,
		InvoicePolicy:     r.InvoicePolicy,
		ServiceType:       r.ServiceType,
		ServiceTracking:   r.ServiceTracking,
		ExpensePolicy:     r.ExpensePolicy,
		ProjectTemplateID: r.ProjectTemplateID,
		UomID:             r.UomID,
		SaleOK:            r.SaleOK,
		UpsellThreshold:   decimal.NewFromInt(1),
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
	if p.InvoicePolicy == "" {
		p.InvoicePolicy = types.InvoicePolicyOrder
	}
	if p.ServiceType == "" {
		p.ServiceType = types.ServiceTypeManual
	}
	if p.ServiceTracking == "" {
		p.ServiceTracking = types.ServiceTrackingNo
	}
	if p.ExpensePolicy == "" {
		p.ExpensePolicy = types.ExpensePolicyNo
	}
	return p
}

// UpdateProductRequest carries a partial product mutation; nil fields are
// left untouched
type UpdateProductRequest struct {
	Name              *string                `json:"name"`
	Type              *types.ProductType     `json:"type"`
	InvoicePolicy     *types.InvoicePolicy   `json:"invoice_policy"`
	ServiceType       *types.ServiceType     `json:"service_type"`
	ServiceTracking   *types.ServiceTracking `json:"service_tracking"`
	ServicePolicy     *types.ServicePolicy   `json:"service_policy"`
	ProjectTemplateID *string                `json:"project_template_id"`
}

func (r *UpdateProductRequest) Validate() error {
	if r.Type != nil {
		if err := r.Type.Validate(); err != nil {
			return err
		}
	}
	if r.ServiceTracking != nil {
		if err := r.ServiceTracking.Validate(); err != nil {
			return err
		}
	}
	if r.ServicePolicy != nil {
		if err := r.ServicePolicy.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ProductResponse struct {
	*product.Product
	// ServicePolicy is the derived sales-facing policy
	ServicePolicy types.ServicePolicy `json:"service_policy"`
	// Tooltip is the sales help text derived from the policy and tracking
	Tooltip string `json:"tooltip"`
}

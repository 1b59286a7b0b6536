package product

import (
	"context"
)

// Repository defines the interface for product persistence operations
type Repository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// Get retrieves a product by ID
	Get(ctx context.Context, id string) (*Product, error)

	// GetByIDs retrieves products by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*Product, error)

	// Update updates an existing product
	Update(ctx context.Context, product *Product) error

	// List retrieves all products for the tenant
	List(ctx context.Context) ([]*Product, error)
}

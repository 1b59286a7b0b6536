package customer

import (
	"context"
)

// Repository defines the interface for customer persistence operations
type Repository interface {
	// Create creates a new customer
	Create(ctx context.Context, customer *Customer) error

	// Get retrieves a customer by ID
	Get(ctx context.Context, id string) (*Customer, error)

	// Update updates an existing customer
	Update(ctx context.Context, customer *Customer) error
}

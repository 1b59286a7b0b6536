package company

import (
	"context"
)

// Repository defines the interface for company settings persistence
type Repository interface {
	// Get retrieves a company by ID
	Get(ctx context.Context, id string) (*Company, error)

	// Update updates an existing company
	Update(ctx context.Context, company *Company) error
}

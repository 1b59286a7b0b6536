package uom

import (
	"context"
)

// Repository defines the interface for unit-of-measure lookups
type Repository interface {
	// Get retrieves a unit by ID
	Get(ctx context.Context, id string) (*UnitOfMeasure, error)

	// GetByLookupKey retrieves a well-known unit such as "hour" or "unit"
	GetByLookupKey(ctx context.Context, key string) (*UnitOfMeasure, error)

	// List retrieves all units for the tenant
	List(ctx context.Context) ([]*UnitOfMeasure, error)
}

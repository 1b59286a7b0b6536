package order

import (
	"context"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Repository defines the interface for order persistence operations
type Repository interface {
	// Create creates a new order together with its lines
	Create(ctx context.Context, order *Order) error

	// Get retrieves an order by ID including its lines
	Get(ctx context.Context, id string) (*Order, error)

	// Update updates an existing order
	Update(ctx context.Context, order *Order) error

	// List retrieves all orders for the tenant
	List(ctx context.Context) ([]*Order, error)
}

// LineRepository defines the interface for order line persistence operations
type LineRepository interface {
	// Create creates a new order line
	Create(ctx context.Context, line *Line) error

	// Get retrieves an order line by ID
	Get(ctx context.Context, id string) (*Line, error)

	// Update updates an existing order line
	Update(ctx context.Context, line *Line) error

	// ListByOrder retrieves the lines of an order by ascending sequence
	ListByOrder(ctx context.Context, orderID string) ([]*Line, error)

	// OrderIDsWithServiceLines returns, via a group-by aggregate, the subset
	// of the given orders that are in one of the given states and hold at
	// least one service-like line
	OrderIDsWithServiceLines(ctx context.Context, orderIDs []string, states []types.OrderState) ([]string, error)
}

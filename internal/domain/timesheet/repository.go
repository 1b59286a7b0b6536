package timesheet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository defines the interface for timesheet entry persistence operations
type Repository interface {
	// Create creates a new entry
	Create(ctx context.Context, entry *Entry) error

	// Get retrieves an entry by ID
	Get(ctx context.Context, id string) (*Entry, error)

	// Update updates an existing entry
	Update(ctx context.Context, entry *Entry) error

	// ListByLine retrieves the entries linked to an order line
	ListByLine(ctx context.Context, lineID string) ([]*Entry, error)

	// DeliveredQtyByLine sums, via a group-by aggregate, the unit amounts of
	// uninvoiced entries per order line over the given period. Nil bounds
	// leave that side of the period open.
	DeliveredQtyByLine(ctx context.Context, lineIDs []string, start, end *time.Time) (map[string]decimal.Decimal, error)
}

package postgres

import (
	"context"
)

// IClient is the database surface services depend on. Production code uses
// *DB; tests substitute a client whose transactions are plain function calls.
type IClient interface {
	// WithTx executes fn inside a (possibly nested) transaction
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ IClient = (*DB)(nil)

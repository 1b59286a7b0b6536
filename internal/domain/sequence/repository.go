package sequence

import (
	"context"
	"time"
)

// Repository is the monotonic counter service orders draw their identifiers
// from. Next returns the next value for the given code, scoped by the date's
// year when one is supplied, so a dated order numbers within its own year.
type Repository interface {
	Next(ctx context.Context, code string, date *time.Time) (int64, error)
}

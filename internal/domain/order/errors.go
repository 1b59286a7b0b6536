package order

import (
	"errors"
)

var (
	// ErrOrderNotFound is returned when an order is not found
	ErrOrderNotFound = errors.New("order not found")

	// ErrLineNotFound is returned when an order line is not found
	ErrLineNotFound = errors.New("order line not found")
)

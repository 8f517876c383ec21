package order

import "context"

// OrderRepo is the storage port for orders.
type OrderRepo interface {
	// Insert stores a new order document.
	Insert(ctx context.Context, o Order) error
}

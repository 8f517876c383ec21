package order

import "time"

// Order is a customer's purchase record. Items are opaque references chosen
// by the client; they are stored as received. Orders are insert-only: never
// mutated or deleted, and identical payloads create distinct orders.
type Order struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Items     []any     `json:"items"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

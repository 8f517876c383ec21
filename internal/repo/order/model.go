package order_repo

import (
	"time"

	"lessonstore/internal/domain/order"
)

type orderDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Phone     string    `bson:"phone"`
	Items     []any     `bson:"items"`
	Total     float64   `bson:"total"`
	CreatedAt time.Time `bson:"createdAt"`
}

func fromDomain(o order.Order) orderDoc {
	return orderDoc{
		ID:        o.ID,
		Name:      o.Name,
		Phone:     o.Phone,
		Items:     o.Items,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderService struct {
	orderRepo OrderRepo
}

func NewOrderService(orderRepo OrderRepo) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Place assigns an id and a server-side createdAt timestamp, then inserts
// the order. The stored order, timestamp included, is returned.
func (s *OrderService) Place(ctx context.Context, o Order) (Order, error) {
	o.ID = uuid.New().String()
	o.CreatedAt = time.Now().UTC()

	if err := s.orderRepo.Insert(ctx, o); err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

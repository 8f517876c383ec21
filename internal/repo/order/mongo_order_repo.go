package order_repo

import (
	"context"
	"fmt"

	"lessonstore/internal/controller/apperror"
	"lessonstore/internal/domain/order"
	"lessonstore/pkg/mongodb"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "orders"

// MongoOrderRepo is the MongoDB-backed order repository.
type MongoOrderRepo struct {
	store *mongodb.Store
}

func NewMongoOrderRepo(store *mongodb.Store) order.OrderRepo {
	return &MongoOrderRepo{store: store}
}

func (r *MongoOrderRepo) collection() *mongo.Collection {
	return r.store.Collection(collectionName)
}

func (r *MongoOrderRepo) Insert(ctx context.Context, o order.Order) error {
	if !r.store.Ready() {
		return apperror.ErrStoreUnavailable
	}

	if _, err := r.collection().InsertOne(ctx, fromDomain(o)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

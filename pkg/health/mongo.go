package health

import (
	"context"

	"lessonstore/pkg/mongodb"
)

// MongoChecker checks MongoDB connectivity.
type MongoChecker struct {
	store *mongodb.Store
}

// NewMongoChecker creates a new MongoDB health checker.
func NewMongoChecker(store *mongodb.Store) *MongoChecker {
	return &MongoChecker{store: store}
}

// Name returns "mongodb".
func (c *MongoChecker) Name() string {
	return "mongodb"
}

// Check pings the MongoDB deployment.
func (c *MongoChecker) Check(ctx context.Context) Result {
	if err := c.store.Ping(ctx); err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	return Result{Status: StatusUp}
}

//go:build integration
// +build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"lessonstore/pkg/mongodb"

	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
)

type MongoContainer struct {
	Container *tcmongodb.MongoDBContainer
	Store     *mongodb.Store
	URL       string
}

func NewMongo(ctx context.Context, dbName string) (*MongoContainer, error) {
	container, err := tcmongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, fmt.Errorf("failed to start mongo container: %w", err)
	}

	url, err := container.ConnectionString(ctx)
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	store, err := mongodb.New(url, dbName, mongodb.RetryInterval(200*time.Millisecond))
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	store.WaitReady(waitCtx)

	if !store.Ready() {
		store.Close(ctx)
		container.Terminate(ctx)
		return nil, fmt.Errorf("mongo container did not become ready")
	}

	return &MongoContainer{Container: container, Store: store, URL: url}, nil
}

func (c *MongoContainer) Cleanup(ctx context.Context) {
	if c.Store != nil {
		c.Store.Close(ctx)
	}
	if c.Container != nil {
		c.Container.Terminate(ctx)
	}
}

// Drop clears both collections (for isolation between tests).
func (c *MongoContainer) Drop(ctx context.Context) error {
	for _, name := range []string{"lessons", "orders"} {
		if err := c.Store.Collection(name).Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}

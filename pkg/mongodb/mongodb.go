// Package mongodb wraps the MongoDB client with an explicit ready state.
//
// The client is created eagerly but connects lazily; Store tracks whether the
// first ping has succeeded so callers can refuse work until the deployment is
// actually reachable.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	defaultPingTimeout   = 5 * time.Second
	defaultRetryInterval = 2 * time.Second
)

// Store holds the shared MongoDB client and database handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	ready atomic.Bool

	pingTimeout   time.Duration
	retryInterval time.Duration
}

// Option mutates Store defaults.
type Option func(*Store)

// PingTimeout overrides the per-ping timeout used by WaitReady and Ping.
func PingTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.pingTimeout = d
	}
}

// RetryInterval overrides the pause between connection attempts in WaitReady.
func RetryInterval(d time.Duration) Option {
	return func(s *Store) {
		s.retryInterval = d
	}
}

// New creates a Store for the given connection string and database name.
// It fails only on an unparsable connection string; reachability is
// established later by WaitReady.
func New(url, dbName string, opts ...Option) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("mongodb - New - mongo.Connect: %w", err)
	}

	s := &Store{
		client:        client,
		db:            client.Database(dbName),
		pingTimeout:   defaultPingTimeout,
		retryInterval: defaultRetryInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// WaitReady pings the deployment until the first success, then flips the
// ready flag. It returns when the store is ready or ctx is cancelled.
func (s *Store) WaitReady(ctx context.Context) {
	for {
		pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
		err := s.client.Ping(pingCtx, readpref.Primary())
		cancel()

		if err == nil {
			s.ready.Store(true)
			slog.Info("mongodb connected", "database", s.db.Name())
			return
		}

		slog.Warn("mongodb not reachable, retrying", "error", err.Error())

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.retryInterval):
		}
	}
}

// Ready reports whether the first successful ping has completed.
func (s *Store) Ready() bool {
	return s.ready.Load()
}

// Ping checks connectivity to the deployment.
func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	return s.client.Ping(pingCtx, readpref.Primary())
}

// Collection returns a handle to the named collection.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	s.ready.Store(false)
	return s.client.Disconnect(ctx)
}

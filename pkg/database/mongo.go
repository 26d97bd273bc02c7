// Package database owns the MongoDB connection for the egg store.
//
// Connect returns an error instead of calling log.Fatal so the caller can
// decide what an unreachable store means; for this storefront the server
// degrades to demo data rather than refusing to start.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/eggstore/config"
)

// ErrNotConfigured signals that DATABASE_URL is unset. This is a supported
// mode, not a failure: callers switch to the null repositories.
var ErrNotConfigured = errors.New("database: DATABASE_URL not set")

// Mongo wraps the driver client and the selected database.
// Safe for concurrent use; read-only after Connect.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the Mongo connection named by DATABASE_URL / DATABASE_NAME
// and verifies it with a ping.
func Connect(ctx context.Context) (*Mongo, error) {
	uri := config.DatabaseURL()
	if uri == "" {
		return nil, ErrNotConfigured
	}

	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(config.DatabaseName()),
	}, nil
}

// Name returns the selected database name.
func (m *Mongo) Name() string {
	return m.db.Name()
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// CollectionNames lists collection names, capped at limit.
// Used by the diagnostics endpoint.
func (m *Mongo) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("database: list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

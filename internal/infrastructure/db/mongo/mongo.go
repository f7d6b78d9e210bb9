package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// defaultTimeout bounds every repository operation. The auth middleware
	// runs a token lookup per request, so a hung deployment must fail fast.
	defaultTimeout = 10 * time.Second

	defaultDatabase = "contactbook"
)

// Config holds the MongoDB connection settings. Database falls back to
// defaultDatabase when unset; Timeout bounds the initial dial and ping and
// defaults to the same per-operation bound the repositories use.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials MongoDB and pings the primary so a bad URI fails at startup
// rather than on the first login. The returned database hosts the users,
// contacts, addresses, activity_log, and counters collections.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(databaseName(cfg)), nil
}

func databaseName(cfg Config) string {
	if cfg.Database == "" {
		return defaultDatabase
	}
	return cfg.Database
}

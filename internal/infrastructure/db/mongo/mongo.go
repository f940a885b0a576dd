package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout         = 8 * time.Second
	serverSelectionTimeout = 5 * time.Second
)

// Config holds the settings for the listings database connection.
type Config struct {
	URI      string
	Database string
	// Timeout bounds the initial connect and ping. connectTimeout applies
	// when zero.
	Timeout time.Duration
}

// Connect dials MongoDB and verifies the deployment is reachable before
// handing back the client and the configured database. Callers own the
// client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect %q: %w", cfg.Database, err)
	}

	// A lazy client reports success even when no server is up; ping now so
	// startup fails fast instead of the first query.
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

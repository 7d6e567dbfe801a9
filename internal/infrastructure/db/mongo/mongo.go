package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petitmarche/shop-api/internal/infrastructure/config"
)

// defaultTimeout bounds the initial dial and every repository call.
const defaultTimeout = 10 * time.Second

// defaultDatabase holds the catalog collections (users, categories, products)
// when MONGO_DB is not set.
const defaultDatabase = "shop"

// Connect dials the catalog database and pings it before handing it out, so a
// bad MONGO_URI fails at startup rather than on the first request. The
// returned client owns the connection pool; the caller disconnects it on
// shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	name := cfg.Database
	if name == "" {
		name = defaultDatabase
	}
	return client, client.Database(name), nil
}

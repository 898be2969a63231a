package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotConfigured = errors.New("database url or name not set")

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect builds a client for uri. The driver dials lazily, so a nil error
// does not mean the server is reachable; use Ping for that.
func Connect(ctx context.Context, appName, uri, database string, timeout time.Duration) (*DB, error) {
	if uri == "" || database == "" {
		return nil, ErrNotConfigured
	}

	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName(appName).
		SetMaxPoolSize(10).
		SetMaxConnIdleTime(30 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(database),
	}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

func (db *DB) Name() string {
	return db.Database.Name()
}

func (db *DB) CollectionNames(ctx context.Context) ([]string, error) {
	return db.Database.ListCollectionNames(ctx, bson.D{})
}

package db

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const CONNECT_TIMEOUT = time.Second * 10
const MAX_CONNECT_ELAPSED = time.Minute

type MongoConnection struct {
	client *mongo.Client
	db     *mongo.Database
}

func (m *MongoConnection) GetCollection(collection string) *mongo.Collection {
	return m.db.Collection(collection)
}

func (m *MongoConnection) Database() *mongo.Database {
	return m.db
}

func (m *MongoConnection) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// NewConnection connects and pings the primary, retrying with exponential
// backoff until MAX_CONNECT_ELAPSED.
func NewConnection(ctx context.Context, uri, dbName string, logger *zap.Logger) (*MongoConnection, error) {
	client, err := mongo.NewClient(options.Client().
		ApplyURI(uri).
		SetConnectTimeout(CONNECT_TIMEOUT))
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	retry := backoff.NewExponentialBackOff()
	retry.MaxElapsedTime = MAX_CONNECT_ELAPSED
	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, CONNECT_TIMEOUT)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	}
	notify := func(err error, wait time.Duration) {
		logger.Warn("mongo ping failed", zap.Error(err), zap.Duration("retry_in", wait))
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(retry, ctx), notify); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logger.Info("mongo connected", zap.String("database", dbName))
	return &MongoConnection{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNoDocument = errors.New("document not found")
var ErrInvalidID = errors.New("invalid document id")

// Gateway writes one record as a new document with a store-assigned id.
// It never checks for duplicates and never retries.
type Gateway interface {
	Save(ctx context.Context, collection string, record interface{}) (string, error)
}

type Store interface {
	Gateway
	Find(ctx context.Context, collection string, skip, limit int64) ([]bson.Raw, error)
	FindByID(ctx context.Context, collection, id string) (bson.Raw, error)
	Delete(ctx context.Context, collection, id string) error
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return oid, nil
}

type MongoStore struct {
	conn *MongoConnection
}

func NewMongoStore(conn *MongoConnection) *MongoStore {
	return &MongoStore{conn: conn}
}

func (m *MongoStore) Save(ctx context.Context, collection string, record interface{}) (string, error) {
	result, err := m.conn.GetCollection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}

func (m *MongoStore) Find(ctx context.Context, collection string, skip, limit int64) ([]bson.Raw, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := m.conn.GetCollection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	documents := []bson.Raw{}
	for cursor.Next(ctx) {
		documents = append(documents, append(bson.Raw(nil), cursor.Current...))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return documents, nil
}

func (m *MongoStore) FindByID(ctx context.Context, collection, id string) (bson.Raw, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	document, err := m.conn.GetCollection(collection).FindOne(ctx, bson.D{
		{
			Key:   "_id",
			Value: oid,
		},
	}).DecodeBytes()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return document, nil
}

func (m *MongoStore) Delete(ctx context.Context, collection, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := m.conn.GetCollection(collection).DeleteOne(ctx, bson.D{
		{
			Key:   "_id",
			Value: oid,
		},
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chatCollection = "chats"

// MongoStore is the production document store.
type MongoStore struct {
	client *mongo.Client
	chats  *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to document store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("unable to ping document store: %w", err)
	}

	return &MongoStore{
		client: client,
		chats:  client.Database(dbName).Collection(chatCollection),
	}, nil
}

func (s *MongoStore) InsertExchange(ctx context.Context, doc ChatDocument) error {
	if _, err := s.chats.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("inserting chat document: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

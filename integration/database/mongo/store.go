package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/sessionkeeper/core/session"
)

// Ensure Store implements session.Store.
var _ session.Store = (*Store)(nil)

// Collection is the subset of *mongo.Collection the store needs.
type Collection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
}

type sessionDocument struct {
	UserKey   string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store keeps one document per user, keyed by the user key.
type Store struct {
	coll Collection
}

// NewStore creates a session store on top of coll.
func NewStore(coll Collection) *Store {
	return &Store{coll: coll}
}

// NewStoreFromConfig uses the database and collection named in cfg.
func NewStoreFromConfig(client *mongo.Client, cfg Config) *Store {
	return NewStore(client.Database(cfg.Database).Collection(cfg.Collection))
}

// Get returns the payload stored for userKey. A missing document is not an error.
func (s *Store) Get(ctx context.Context, userKey string) ([]byte, bool, error) {
	var doc sessionDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: userKey}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrStoreFailed, err)
	}
	return doc.Payload, true, nil
}

// Set upserts the payload stored for userKey.
func (s *Store) Set(ctx context.Context, userKey string, data []byte) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "payload", Value: data},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}
	_, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: userKey}},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

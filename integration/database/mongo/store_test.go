package mongo_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	drv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/sessionkeeper/integration/database/mongo"
)

// fakeCollection keeps documents in memory and records whether writes asked for an upsert.
type fakeCollection struct {
	mu      sync.Mutex
	docs    map[string][]byte
	err     error
	upserts []bool
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{docs: make(map[string][]byte)}
}

func keyOf(filter any) string {
	return filter.(bson.D)[0].Value.(string)
}

func (c *fakeCollection) FindOne(_ context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *drv.SingleResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return drv.NewSingleResultFromDocument(bson.D{}, c.err, nil)
	}
	key := keyOf(filter)
	payload, ok := c.docs[key]
	if !ok {
		return drv.NewSingleResultFromDocument(bson.D{}, drv.ErrNoDocuments, nil)
	}
	return drv.NewSingleResultFromDocument(bson.D{
		{Key: "_id", Value: key},
		{Key: "payload", Value: payload},
		{Key: "updated_at", Value: time.Now()},
	}, nil, nil)
}

func (c *fakeCollection) UpdateOne(_ context.Context, filter, update any, opts ...options.Lister[options.UpdateOneOptions]) (*drv.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}

	var o options.UpdateOneOptions
	for _, lister := range opts {
		for _, set := range lister.List() {
			_ = set(&o)
		}
	}
	c.upserts = append(c.upserts, o.Upsert != nil && *o.Upsert)

	fields := update.(bson.D)[0].Value.(bson.D)
	c.docs[keyOf(filter)] = fields[0].Value.([]byte)
	return &drv.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing document is not found", func(t *testing.T) {
		t.Parallel()
		data, found, err := mongo.NewStore(newFakeCollection()).Get(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, data)
	})

	t.Run("set upserts then get returns payload", func(t *testing.T) {
		t.Parallel()
		coll := newFakeCollection()
		store := mongo.NewStore(coll)

		require.NoError(t, store.Set(ctx, "alice", []byte("v1")))
		require.NoError(t, store.Set(ctx, "alice", []byte("v2")))

		data, found, err := store.Get(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("v2"), data)
		assert.Equal(t, []bool{true, true}, coll.upserts)
		assert.Len(t, coll.docs, 1)
	})

	t.Run("driver errors are wrapped", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("server selection timeout")
		coll := newFakeCollection()
		coll.err = boom
		store := mongo.NewStore(coll)

		err := store.Set(ctx, "alice", []byte("x"))
		assert.ErrorIs(t, err, mongo.ErrStoreFailed)
		assert.ErrorIs(t, err, boom)

		_, _, err = store.Get(ctx, "alice")
		assert.ErrorIs(t, err, mongo.ErrStoreFailed)
	})
}

func TestNew_EmptyURL(t *testing.T) {
	t.Parallel()
	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}

// Runs against a real server only when MONGODB_URL is set.
func TestMongo_Integration(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := mongo.Config{
		ConnectionURL:  url,
		ConnectTimeout: 10 * time.Second,
		RetryAttempts:  3,
		RetryInterval:  time.Second,
		Database:       "sessionkeeper_test",
		Collection:     "upstream_sessions",
	}
	client, err := mongo.New(ctx, cfg)
	require.NoError(t, err)
	defer client.Disconnect(ctx) //nolint:errcheck

	require.NoError(t, mongo.Healthcheck(client)(ctx))

	store := mongo.NewStoreFromConfig(client, cfg)
	key := "it-" + time.Now().Format(time.RFC3339Nano)
	require.NoError(t, store.Set(ctx, key, []byte("payload")))

	data, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, client.Database(cfg.Database).Drop(ctx))
}

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkeeper/core/session"
)

// Ensure Store implements session.Store.
var _ session.Store = (*Store)(nil)

// Store keeps one session payload per user under a prefixed string key.
type Store struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKeyPrefix sets the key namespace. Defaults to "upstream_session:".
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTTL expires a slot ttl after its last write. Zero disables expiry.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// NewStore creates a session store on top of client.
func NewStore(client redis.UniversalClient, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		prefix: "upstream_session:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStoreFromConfig creates a store using the prefix and TTL from cfg.
func NewStoreFromConfig(client redis.UniversalClient, cfg Config) *Store {
	return NewStore(client, WithKeyPrefix(cfg.KeyPrefix), WithTTL(cfg.SessionTTL))
}

// Get returns the payload stored for userKey. A missing key is not an error.
func (s *Store) Get(ctx context.Context, userKey string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key(userKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrStoreFailed, err)
	}
	return data, true, nil
}

// Set overwrites the payload stored for userKey.
func (s *Store) Set(ctx context.Context, userKey string, data []byte) error {
	if err := s.client.Set(ctx, s.key(userKey), data, s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (s *Store) key(userKey string) string {
	return s.prefix + userKey
}

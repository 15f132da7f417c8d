package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/sessionkeeper/core/session"
)

// Ensure Store implements session.Store.
var _ session.Store = (*Store)(nil)

// DBTX is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	selectSession = `SELECT payload FROM upstream_sessions WHERE user_key = $1`
	upsertSession = `INSERT INTO upstream_sessions (user_key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
)

// Store keeps one session payload per user in the upstream_sessions table.
// A transaction attached to the context with WithTx takes precedence over db.
type Store struct {
	db DBTX
}

// NewStore creates a session store. Run Migrate first to create the table.
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

// Get returns the payload stored for userKey. A missing row is not an error.
func (s *Store) Get(ctx context.Context, userKey string) ([]byte, bool, error) {
	var data []byte
	err := s.conn(ctx).QueryRow(ctx, selectSession, userKey).Scan(&data)
	if IsNotFoundError(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrStoreFailed, err)
	}
	return data, true, nil
}

// Set inserts or replaces the payload stored for userKey.
func (s *Store) Set(ctx context.Context, userKey string, data []byte) error {
	if _, err := s.conn(ctx).Exec(ctx, upsertSession, userKey, data); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (s *Store) conn(ctx context.Context) DBTX {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.db
}

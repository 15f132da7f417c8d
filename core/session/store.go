package session

import "context"

// Store keeps one opaque session payload per user key.
// Implementations must be safe for concurrent use. Set overwrites; expiry of
// old payloads is up to the implementation.
type Store interface {
	// Get returns the payload stored for userKey and whether one exists.
	Get(ctx context.Context, userKey string) ([]byte, bool, error)
	// Set stores data for userKey, replacing any previous payload.
	Set(ctx context.Context, userKey string, data []byte) error
}

package session

import (
	"bytes"
	"context"
	"sync"
)

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is a process-local Store. Payloads are copied in and out, so
// callers never share buffers with the store. Nothing expires.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Get returns a copy of the payload stored for userKey.
func (s *MemoryStore) Get(ctx context.Context, userKey string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[userKey]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(data), true, nil
}

// Set stores a copy of data for userKey.
func (s *MemoryStore) Set(ctx context.Context, userKey string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[userKey] = bytes.Clone(data)
	return nil
}

// Len returns the number of occupied slots.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

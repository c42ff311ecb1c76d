package cache

import (
	"context"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store bounded by entry count.
type MemoryStore struct {
	lru *LRUCache[string, memoryEntry]
	now func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore keeps at most capacity entries.
func NewMemoryStore(capacity int, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		lru: NewLRUCache[string, memoryEntry](capacity),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := s.lru.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		s.lru.Remove(key)
		return nil, ErrCacheMiss
	}
	return cloneBytes(entry.value), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	entry := memoryEntry{value: cloneBytes(value)}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.lru.Put(key, entry)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.lru.Remove(key)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored entries, expired ones included until they are read.
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

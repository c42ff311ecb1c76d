package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

var (
	ErrCacheMiss          = errors.New("cache: miss")
	ErrEmptyKey           = errors.New("cache: empty key")
	ErrEmptyConnectionURL = errors.New("cache: empty redis connection URL")
	ErrInvalidRedisURL    = errors.New("cache: failed to parse redis connection string")
	ErrRedisNotReady      = errors.New("cache: redis did not become ready within the given time period")
	ErrHealthcheckFailed  = errors.New("cache: redis healthcheck failed")
)

// Store is a byte-oriented cache. Get returns ErrCacheMiss for absent or expired keys.
// A zero ttl keeps the entry until it is evicted.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Key joins prefix with the SHA-256 of parts. Parts are length-prefixed so
// ("ab", "c") and ("a", "bc") hash differently.
func Key(prefix string, parts ...string) string {
	h := sha256.New()
	var lenBuf [8]byte
	for _, p := range parts {
		n := uint64(len(p))
		for i := range lenBuf {
			lenBuf[i] = byte(n >> (8 * i))
		}
		h.Write(lenBuf[:])
		h.Write([]byte(p))
	}
	sum := hex.EncodeToString(h.Sum(nil))
	if prefix == "" {
		return sum
	}
	return prefix + ":" + sum
}

package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state.
type Store interface {
	// ConsumeTokens takes tokens from the bucket of key if enough remain and
	// returns the remaining count, negative when the request is denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

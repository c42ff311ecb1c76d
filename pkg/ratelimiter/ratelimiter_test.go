package ratelimiter_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Now()}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store, clock
}

func TestNewBucketConfig(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.True(t, errors.Is(err, ratelimiter.ErrInvalidConfig), "%+v", cfg)
	}
}

func TestBucketBurstAndRefill(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, _, clock := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second})

	for i := range 3 {
		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 2-i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := b.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.ResetAt.Sub(clock.Now()))

	// Denied requests do not dig deeper.
	_, _ = b.Allow(ctx, "ip")
	clock.Advance(time.Second)
	res, err = b.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	clock.Advance(time.Hour)
	status, err := b.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 3, status.Remaining, "refill is capped at capacity")
}

func TestBucketKeysAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, store, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})

	res, _ := b.Allow(ctx, "a")
	assert.True(t, res.Allowed())
	res, _ = b.Allow(ctx, "a")
	assert.False(t, res.Allowed())
	res, _ = b.Allow(ctx, "b")
	assert.True(t, res.Allowed())
	assert.Equal(t, 2, store.Len())

	require.NoError(t, b.Reset(ctx, "a"))
	res, _ = b.Allow(ctx, "a")
	assert.True(t, res.Allowed())
}

func TestBucketAllowN(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 5, RefillRate: 1, RefillInterval: time.Second})

	_, err := b.AllowN(ctx, "k", 0)
	assert.True(t, errors.Is(err, ratelimiter.ErrInvalidTokenCount))

	res, err := b.AllowN(ctx, "k", 4)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)

	res, err = b.AllowN(ctx, "k", 2)
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, -1, res.Remaining)
	assert.Positive(t, res.RetryAfter())
}

func TestMemoryStoreRemoveStale(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, store, clock := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})

	_, _ = b.Allow(ctx, "old")
	clock.Advance(2 * time.Hour)
	_, _ = b.Allow(ctx, "fresh")

	store.RemoveStale()
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreCloseTwice(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(time.Millisecond))
	store.Close()
	assert.NotPanics(t, store.Close)
}

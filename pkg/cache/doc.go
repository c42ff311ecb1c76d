// Package cache stores rendered symbols so repeated requests skip rendering.
//
// Two Store implementations are provided:
//
//   - MemoryStore keeps entries in a bounded in-process LRU with optional expiry.
//   - RedisStore keeps entries in Redis, shared by every instance of the service.
//
// Keys are derived from everything that influences the output with Key, so equal
// inputs always map to the same entry:
//
//	key := cache.Key("qr", payload, styleJSON, "png", "1000")
//	if data, err := store.Get(ctx, key); err == nil {
//		return data, nil
//	} else if !errors.Is(err, cache.ErrCacheMiss) {
//		return nil, err
//	}
//
// Connect opens a Redis client with retries; Healthcheck adapts a client to the
// health-check handler of pkg/httpserver.
package cache

// Package ratelimiter provides token bucket rate limiting with an in-memory
// store and HTTP middleware.
//
// A Bucket allows bursts up to Config.Capacity and refills RefillRate tokens
// every RefillInterval:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(limiter,
//		ratelimiter.WithKeyFunc(ratelimiter.ByIP(nil)),
//	)).Post("/v1/render", render)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response, and Retry-After on denials. Denied
// requests do not consume tokens.
package ratelimiter

// Package requestid attaches a correlation identifier to every HTTP request.
//
// The middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a time-ordered UUIDv7, stores it in the request context and echoes it
// in the response. LogExtractor feeds it into pkg/logger so every record logged
// with the request context carries request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r.Use(requestid.Middleware)
package requestid

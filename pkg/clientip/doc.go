// Package clientip resolves the address of the client behind an HTTP request.
//
// A Resolver checks the configured proxy headers in order and falls back to
// the connection's RemoteAddr. Results are normalized through net.ParseIP, so
// malformed header values are skipped rather than trusted.
//
//	res := clientip.New(clientip.WithHeaders("CF-Connecting-IP", "X-Forwarded-For"))
//	r.Use(clientip.Middleware(res))
//	...
//	ip := clientip.FromContext(r.Context())
//
// Only enable proxy headers when every request passes through a proxy that
// overwrites them; otherwise clients can choose their own address.
package clientip

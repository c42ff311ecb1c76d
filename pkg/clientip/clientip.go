package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders are consulted, in order, before RemoteAddr.
var DefaultHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// Resolver extracts the client address of a request.
// Proxy headers are only honored when the server sits behind a trusted proxy.
type Resolver struct {
	headers []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHeaders replaces the proxy headers checked before RemoteAddr.
// Passing no headers makes the resolver use RemoteAddr only.
func WithHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.headers = headers
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IP returns the normalized client address, or "" when none parses.
// Comma-separated headers such as X-Forwarded-For yield their first valid entry.
func (res *Resolver) IP(r *http.Request) string {
	for _, name := range res.headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// GetIP resolves the client address with DefaultHeaders.
func GetIP(r *http.Request) string {
	return New().IP(r)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}

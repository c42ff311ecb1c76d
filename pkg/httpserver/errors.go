package httpserver

import "errors"

// Run and Shutdown join these with the underlying cause.
var (
	ErrStart          = errors.New("httpserver: cannot serve")
	ErrAlreadyRunning = errors.New("httpserver: already running")
	ErrShutdown       = errors.New("httpserver: graceful shutdown incomplete")
)

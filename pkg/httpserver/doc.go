// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts the
// server down within the configured deadline. Servers are built with New and
// functional options, or with NewFromConfig from the HTTP_* environment section:
//
//	var cfg httpserver.Config
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY") probes
// over a list of named dependency checks. Start and stop failures are reported
// as ErrStart, ErrAlreadyRunning and ErrShutdown.
package httpserver

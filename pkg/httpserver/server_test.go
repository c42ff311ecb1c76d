package httpserver_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/httpserver"
)

// start runs srv in the background and waits for its start hook.
func start(t *testing.T, ctx context.Context, handler http.Handler, opts ...httpserver.Option) (*httpserver.Server, <-chan error) {
	t.Helper()
	started := make(chan struct{})
	opts = append([]httpserver.Option{
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100 * time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
	}, opts...)
	srv := httpserver.New(opts...)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, handler) }()
	select {
	case <-started:
	case err := <-done:
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	return srv, done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRunServesUntilCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, done := start(t, ctx, httpserver.HealthCheckHandler(nil))
	require.NotEmpty(t, srv.Addr())

	resp, err := http.Get("http://" + srv.Addr() + "/livez")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ALIVE", string(body))

	cancel()
	wait(t, done)
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	var stopped atomic.Int32
	srv, done := start(t, context.Background(), http.NewServeMux(),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Add(1) }))

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown")
	wait(t, done)
	assert.Equal(t, int32(1), stopped.Load(), "stop hooks run once")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	t.Run("bad address", func(t *testing.T) {
		t.Parallel()
		err := httpserver.New(httpserver.WithAddr(":invalid")).Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("already running", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		srv, done := start(t, ctx, http.NewServeMux())

		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
		assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
		cancel()
		wait(t, done)
	})
}

func TestServerSettings(t *testing.T) {
	t.Parallel()

	hs := &http.Server{ReadTimeout: time.Second}
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	gotLogger := make(chan *slog.Logger, 1)

	srv, done := start(t, context.Background(), nil,
		httpserver.WithServer(hs),
		httpserver.WithReadTimeout(5*time.Second),
		httpserver.WithWriteTimeout(2*time.Second),
		httpserver.WithIdleTimeout(3*time.Second),
		httpserver.WithLogger(l),
		httpserver.WithStartHook(func(lg *slog.Logger) { gotLogger <- lg }),
	)

	assert.Equal(t, time.Second, hs.ReadTimeout, "values set on the server win")
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
	assert.Equal(t, 3*time.Second, hs.IdleTimeout)
	assert.Equal(t, 10*time.Second, hs.ReadHeaderTimeout, "package default")
	assert.NotNil(t, hs.Handler)
	assert.Equal(t, l, <-gotLogger)

	require.NoError(t, srv.Shutdown(context.Background()))
	wait(t, done)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	hs := &http.Server{}
	cfgSrv := httpserver.NewFromConfig(httpserver.Config{
		Addr:         "127.0.0.1:0",
		WriteTimeout: 60 * time.Second,
	}, httpserver.WithServer(hs))
	ctx, cancel := context.WithCancel(context.Background())
	cfgDone := make(chan error, 1)
	go func() { cfgDone <- cfgSrv.Run(ctx, nil) }()
	require.Eventually(t, func() bool { return cfgSrv.Addr() != "" }, 2*time.Second, 10*time.Millisecond)
	cancel()
	wait(t, cfgDone)
	assert.Equal(t, 60*time.Second, hs.WriteTimeout)
	assert.Zero(t, hs.ReadTimeout, "zero config values keep the defaults")
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := map[string]func(){
		"addr":       func() { httpserver.WithAddr("") },
		"read":       func() { httpserver.WithReadTimeout(-time.Second) },
		"write":      func() { httpserver.WithWriteTimeout(-time.Second) },
		"idle":       func() { httpserver.WithIdleTimeout(0) },
		"header":     func() { httpserver.WithReadHeaderTimeout(0) },
		"shutdown":   func() { httpserver.WithShutdownTimeout(-time.Second) },
		"server":     func() { httpserver.WithServer(nil) },
		"start hook": func() { httpserver.WithStartHook(nil) },
		"stop hook":  func() { httpserver.WithStopHook(nil) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, fn)
		})
	}
	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}

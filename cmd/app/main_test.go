package main

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type recordingShutdowner struct {
	calls chan int
}

func (r *recordingShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	r.calls <- len(opts)
	return nil
}

func TestServe_ShutsDownAppWhenListenerFails(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	sd := &recordingShutdowner{calls: make(chan int, 1)}
	go serve(&http.Server{Handler: http.NotFoundHandler()}, ln, sd, zap.NewNop())

	select {
	case n := <-sd.calls:
		assert.Equal(t, 1, n, "shutdown carries an exit code")
	case <-time.After(time.Second):
		t.Fatal("app shutdown was not requested")
	}
}

func TestServe_ClosedServerDoesNotShutDownApp(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	srv := &http.Server{Handler: http.NotFoundHandler()}
	sd := &recordingShutdowner{calls: make(chan int, 1)}
	done := make(chan struct{})
	go func() {
		serve(srv, ln, sd, zap.NewNop())
		close(done)
	}()

	// Close may race Serve's start; either way Serve returns ErrServerClosed.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, srv.Close())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("serve did not return")
	}
	assert.Empty(t, sd.calls)
}

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/handler"
	httpHandler "github.com/MKhiriev/go-travel-booking/internal/handler/http"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewServer ──

func TestNewServer_NoHTTPHandler(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, config.Server{}, logger.Nop())}

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewHTTPServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:9999", RequestTimeout: 7 * time.Second}

	h := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:9999", h.server.Addr)
	assert.Equal(t, 7*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 7*time.Second, h.server.WriteTimeout)
}

// ── run ──

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	addr := freeAddress(t)
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: addr}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:-1"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err := s.run(context.Background())

	assert.Error(t, err)
}

package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

const (
	shutdownTimeout   = 15 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Run maps the routes, listens on host:port and serves until SIGINT or SIGTERM,
// then drains in-flight requests.
func (srv HTTPServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run.mapHandlers: %v", err)
		return err
	}

	addr := net.JoinHostPort(srv.host, strconv.Itoa(srv.port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.Run.Listen: %v", err)
		return err
	}
	return srv.serveUntil(ctx, ln)
}

// serveUntil serves on ln until ctx is done or the server fails.
func (srv HTTPServer) serveUntil(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(context.Background(), "Smart reply API listening on %s", ln.Addr())
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		srv.l.Info(context.Background(), "Shutdown requested, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(context.Background(), "httpserver.serveUntil.Shutdown: %v", err)
		return err
	}
	srv.l.Info(context.Background(), "Smart reply API stopped")
	return nil
}

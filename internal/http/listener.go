package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
)

// serve binds srv.Addr and serves until srv is shut down. A closed server is not an error.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger, name string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen for %s server: %w", name, err)
	}

	logger.Info("starting "+name+" server", slog.String("addr", ln.Addr().String()))

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s server: %w", name, err)
	}
	return nil
}

func shutdown(ctx context.Context, srv *http.Server, logger *slog.Logger, name string) error {
	logger.Info("shutting down " + name + " server")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down %s server: %w", name, err)
	}
	return nil
}

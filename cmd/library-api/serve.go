package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bool64/ctxd"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server with versioned API documents and Swagger UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}

	cmd.Flags().Int("port", 8010, "HTTP port (env LIBRARY_API_HTTP_PORT)")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	h, err := a.host(ctx)
	if err != nil {
		return err
	}

	srv := http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTPPort),
		Handler:           h,
		ReadHeaderTimeout: time.Second,
	}

	a.logger.Important(ctx, "starting HTTP server",
		"docs", fmt.Sprintf("http://localhost:%d%s", a.cfg.HTTPPort, a.cfg.DocsPath),
		"documents", h.Keys())

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return ctxd.WrapError(ctx, err, "serve HTTP", "addr", srv.Addr)
	case <-ctx.Done():
	}

	a.logger.Important(context.Background(), "shutting down HTTP server")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		return ctxd.WrapError(sctx, err, "shutdown HTTP server")
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carewell/eldercare/internal/errors"
)

func (app *application) configureAndStartServer(ctx context.Context, addr string) error {
	var err error
	shutdownComplete := make(chan struct{})
	idleTimeout := time.Minute
	defaultTimeout := 5 * time.Second
	srv := &http.Server{
		ErrorLog:    slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
		Handler:     app.routes(),
		IdleTimeout: idleTimeout,
		ReadTimeout: defaultTimeout,
		// The write timeout stays unset so that the speech SSE stream can
		// outlive a single request deadline. Handlers are bounded by
		// timeoutHandler instead.
		ReadHeaderTimeout: time.Second,
	}
	go func() {
		sigint := make(chan os.Signal, 1)

		signal.Notify(sigint, os.Interrupt)
		signal.Notify(sigint, syscall.SIGTERM)

		select {
		case <-sigint:
		case <-ctx.Done():
		}
		app.logger.LogAttrs(ctx, slog.LevelInfo, "shutting down server")

		shutdownContext, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		if err = srv.Shutdown(shutdownContext); err != nil {
			err = errors.Wrap(err, "shutdown server")
			app.logger.LogAttrs(ctx, slog.LevelError, "error shutting down server", errors.SlogError(err))
		}
		close(shutdownComplete)
	}()

	var listener net.Listener
	if listener, err = net.Listen("tcp", addr); err != nil {
		return errors.Wrap(err, "TCP listen")
	}
	app.logger.LogAttrs(ctx, slog.LevelInfo, "starting server", slog.Any("Addr", listener.Addr().String()))
	if err = srv.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server serve")
	}
	<-shutdownComplete

	return nil
}

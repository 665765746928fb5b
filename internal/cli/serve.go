package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/mamdani"
	httpAdapter "github.com/aretw0/mamdani/pkg/adapters/http"
	"github.com/aretw0/mamdani/pkg/observability"
)

// ServeOptions configure the HTTP server.
type ServeOptions struct {
	Addr    string
	Watch   bool
	Metrics *observability.Metrics
	// Ready, when set, receives the bound address once the listener is open.
	Ready func(addr string)
}

// Serve runs the HTTP API until ctx is done, then shuts down gracefully.
// With Watch set, document changes on disk are reloaded in the background.
func Serve(ctx context.Context, engine *mamdani.Engine, opts ServeOptions, logger *slog.Logger) error {
	handlerOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
	if store := engine.Store(); store != nil {
		handlerOpts = append(handlerOpts, httpAdapter.WithRecordStore(store))
	}
	if opts.Metrics != nil {
		handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(opts.Metrics.Handler()))
	}

	srv := &http.Server{
		Handler:           httpAdapter.NewHandler(engine, handlerOpts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return err
	}
	logger.Info("server listening", "address", ln.Addr().String())
	if opts.Ready != nil {
		opts.Ready(ln.Addr().String())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "err", err)
			return srv.Close()
		}
		logger.Info("server stopped gracefully")
		return nil
	})
	if opts.Watch {
		g.Go(func() error {
			return engine.AutoReload(gctx)
		})
	}

	return g.Wait()
}

package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/pkordes/whattoeat/internal/config"
	"github.com/pkordes/whattoeat/internal/events"
	"github.com/pkordes/whattoeat/internal/handler"
	"github.com/pkordes/whattoeat/internal/metrics"
	"github.com/pkordes/whattoeat/internal/middleware"
	"github.com/pkordes/whattoeat/internal/service"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	})
}

func runServe(cmd *cobra.Command, _ []string) error {
	// --- Config -----------------------------------------------------------
	cfg, err := loadConfig(cmd)
	if err != nil {
		slog.Error("configuration error", "error", err)
		return err
	}

	// --- Logger -----------------------------------------------------------
	logger := newLogger(cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	r, err := newRouter(cfg, logger)
	if err != nil {
		slog.Error("failed to seed catalog", "error", err)
		return err
	}

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WebSocket connections manage their own deadlines after the upgrade.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for a signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return err
	}
	slog.Info("server stopped")
	return nil
}

// newRouter seeds a catalog from cfg and returns the full middleware stack
// around the API routes and /metrics.
func newRouter(cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	broker := events.NewBroker()
	m := metrics.New()
	broker.Subscribe(m.Observe)

	catalog, err := newCatalog(cfg, broker, logger)
	if err != nil {
		return nil, err
	}
	m.SetCatalogSize(len(catalog.List()))
	logger.Info("catalog seeded", "dishes", len(catalog.List()), "file", cfg.CatalogFile)

	api := handler.NewServer(catalog, service.NewExportService(catalog), broker)

	// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
	// CORS → body limit → rate limit → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetricsHandler(m))
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewRateLimitHandler(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(chimiddleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Mount("/", api.Routes())

	return r, nil
}

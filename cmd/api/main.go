// @title RESTful API with Go
// @version v1
// @description Book resource with hypermedia links
// @termsOfService https://pub.erudio.com.br/meus-cursos
// @license.name Apache 2.0
// @license.url https://pub.erudio.com.br/meus-cursos
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookrest/docs"
	"bookrest/internal/book"
	"bookrest/internal/config"
	"bookrest/internal/httpx"
	"bookrest/internal/logger"
	"bookrest/internal/metrics"
	"bookrest/internal/platform/database"
	"bookrest/internal/platform/migrations"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN, 2*time.Second)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("driver", db.Driver()).Str("dsn", config.RedactDSN(cfg.DBDSN)).Msg("database connection OK")

	// PostgreSQL schemas are owned by cmd/migrate; SQLite is a local store.
	if db.Driver() == config.DriverSQLite {
		migrations.SetLogger(log)
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	router, err := newRouter(ctx, cfg, log, db, db.Books(cfg.DBTimeout))
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(ctx context.Context, cfg config.Config, log zerolog.Logger, db pinger, repo book.Repository) (http.Handler, error) {
	m := metrics.New()

	service := book.NewService(repo, book.NewLinker(cfg.PublicURL),
		book.WithLogger(log),
		book.WithRecorder(m),
	)

	apiDocs, err := docs.Handler(cfg.API)
	if err != nil {
		return nil, err
	}

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", m.Handler())
	router.Handle("GET /v3/api-docs", apiDocs)

	book.NewHTTPHandler(service, log).Register(router)

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	return withMiddleware(router, cfg, log, m, rateLimiter), nil
}

// withMiddleware wraps h with the server chain, outermost first. The access
// log sits outside recovery so recovered panics still produce an access line.
func withMiddleware(h http.Handler, cfg config.Config, log zerolog.Logger, m *metrics.Metrics, rl *httpx.RateLimitMiddleware) http.Handler {
	return httpx.Chain(h,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		m.Middleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		rl.Middleware,
	)
}

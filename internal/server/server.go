// Package server boots the storefront: config, logging, database, cache,
// storage, the middleware stack, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/maison/app/routes"
	"github.com/shashiranjanraj/maison/config"
	"github.com/shashiranjanraj/maison/pkg/cache"
	"github.com/shashiranjanraj/maison/pkg/database"
	"github.com/shashiranjanraj/maison/pkg/logger"
	"github.com/shashiranjanraj/maison/pkg/metrics"
	"github.com/shashiranjanraj/maison/pkg/middleware"
	"github.com/shashiranjanraj/maison/pkg/reqid"
	"github.com/shashiranjanraj/maison/pkg/router"
	"github.com/shashiranjanraj/maison/pkg/storage"
	"gorm.io/gorm"
)

// BuildRouter assembles the middleware stack and mounts every route.
// Separated from Start so tests can serve the full stack against an
// in-memory database.
func BuildRouter(db *gorm.DB) *router.Router {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus /metrics endpoint — no auth, no rate limit.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, db)
	return r
}

// Start boots every subsystem and serves until SIGINT/SIGTERM, then
// drains in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	closeLogSink := connectLogSink()
	defer closeLogSink()

	db, err := database.Connect()
	if err != nil {
		return err
	}

	// Cache and storage are optional at boot: a dead Redis degrades to
	// database reads, a missing S3 bucket leaves the local disk.
	if err := cache.Connect(); err != nil {
		logger.Warn("server: cache unavailable, serving without it", "error", err.Error())
	}
	storage.Connect()

	r := BuildRouter(db)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// connectLogSink fans slog output out to MongoDB when MONGO_LOG_URI is
// configured. Returns a close func that flushes buffered entries.
func connectLogSink() func() {
	uri := config.MongoLogURI()
	if uri == "" {
		return func() {}
	}

	sink, err := logger.NewMongoHandler(uri, config.MongoLogDatabase(), config.MongoLogCollection())
	if err != nil {
		logger.Warn("server: mongo log sink unavailable", "error", err.Error())
		return func() {}
	}

	logger.UseHandler(logger.NewMultiHandler(logger.L.Handler(), sink))
	return sink.Close
}

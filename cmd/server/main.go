// Package main initializes and starts the PakJobs HTTP server,
// setting up configuration, logging, session storage, the board,
// handlers and graceful shutdown.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/pakjobs/internal/app"
	"github.com/atinyakov/pakjobs/internal/config"
	"github.com/atinyakov/pakjobs/internal/db"
	"github.com/atinyakov/pakjobs/internal/logger"
	"github.com/atinyakov/pakjobs/internal/repository"
	"github.com/atinyakov/pakjobs/internal/server/handler/http"
	"github.com/atinyakov/pakjobs/internal/service"
	"github.com/atinyakov/pakjobs/internal/storage"
	"github.com/atinyakov/pakjobs/internal/view"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	zapLogger := log.Log

	// Pick the key-value backend for the session: PostgreSQL when a DSN is
	// configured, the local file otherwise.
	var kv service.KVRepository
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		defer postgresDB.Close()
		kv = repository.NewPostgresKVRepository(postgresDB)
		zapLogger.Info("session storage", zap.String("backend", "postgres"))
	} else {
		kv = storage.NewFileStore(options.SessionFile)
		zapLogger.Info("session storage", zap.String("backend", "file"), zap.String("path", options.SessionFile))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize business-logic services and the board state.
	sessionService := service.NewSessionService(kv, zapLogger)
	jobService := service.NewJobService()
	board := app.NewBoard(ctx, sessionService, app.WithLogger(zapLogger))

	renderer, err := view.NewRenderer()
	if err != nil {
		zapLogger.Fatal("cannot load templates", zap.Error(err))
	}

	// Create HTTP handlers for pages and the JSON API.
	pageHandler := &http.PageHandler{Board: board, Renderer: renderer, Log: zapLogger}
	apiHandler := &http.APIHandler{Board: board, JobService: jobService}

	// Build the router with middleware and routes.
	router := http.NewRouter(pageHandler, apiHandler, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}

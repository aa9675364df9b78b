package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/blogem/enterprise-api/config"
	"github.com/blogem/enterprise-api/controllers"
	"github.com/blogem/enterprise-api/database"
	"github.com/blogem/enterprise-api/logging"
	appmiddleware "github.com/blogem/enterprise-api/middleware"
	"github.com/blogem/enterprise-api/repositories"
	"github.com/blogem/enterprise-api/services"
)

func main() {
	// Load environment variables from .env file, if present
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	srvs := services.NewServices(repos)
	ctrl := controllers.NewControllers(srvs, repos.Enterprise, cfg.StoreDriver)
	metrics := appmiddleware.NewMetrics()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(cfg, logger, ctrl, repos.AccessLog, metrics),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("store", cfg.StoreDriver).
			Str("database", cfg.DatabaseName).
			Msg("enterprise API starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// openStore connects the configured backend and returns its repositories
// together with a function releasing the connection.
func openStore(ctx context.Context, cfg *config.Config) (*repositories.Repositories, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := database.InitializeDatabase(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repos := repositories.NewSQLiteRepositories(db, cfg.CollectionName, cfg.LogCollectionName)
		return repos, func() { db.Close() }, nil

	default:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := database.ConnectMongo(connectCtx, cfg.MongoDBURL)
		if err != nil {
			return nil, nil, err
		}
		repos := repositories.NewMongoRepositories(client.Database(cfg.DatabaseName), cfg.CollectionName, cfg.LogCollectionName)
		return repos, func() { client.Disconnect(context.Background()) }, nil
	}
}

// setupRouter configures all routes. Every request, including CORS
// preflights and unknown routes, passes through the access logger.
func setupRouter(cfg *config.Config, logger zerolog.Logger, ctrl *controllers.Controllers, accessLogs repositories.AccessLogRepository, metrics *appmiddleware.Metrics) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(logging.RequestLogger(logger))
	r.Use(appmiddleware.AccessLogger(accessLogs, logger, appmiddleware.AccessLogOptions{
		WriteTimeout: cfg.LogWriteTimeout,
		OnWriteError: metrics.AccessLogWriteFailed,
	}))
	r.Use(metrics.Middleware)
	r.Use(appmiddleware.CORS())
	r.Use(middleware.Recoverer)

	r.Get("/health", ctrl.Health.Index)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/enterprise", func(r chi.Router) {
		r.Post("/", ctrl.Enterprise.Create)
		r.Get("/{siret}", ctrl.Enterprise.Get)
		r.Put("/{siret}", ctrl.Enterprise.Update)
		r.Delete("/{siret}", ctrl.Enterprise.Delete)
	})

	return r
}

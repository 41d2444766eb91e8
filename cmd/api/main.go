package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"celora/internal/account"
	"celora/internal/adapter/memory"
	"celora/internal/adapter/repo"
	"celora/internal/cart"
	"celora/internal/catalog"
	"celora/internal/domain"
	"celora/internal/entitlement"
	"celora/internal/http/handlers"
	"celora/internal/http/httpapi"
	"celora/internal/infra"
	"celora/internal/infra/geoip"
	"celora/internal/kv"
	"celora/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Postgres is optional. Without DATABASE_URL the service runs entirely in
	// memory over the built-in seed collection.
	var (
		templates domain.TemplateRepository
		users     domain.UserRepository
		usage     domain.UsageRepository
	)
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		runner := infra.NewSQLRunner(pool, logger)
		templates = repo.NewTemplateRepository(runner)
		users = repo.NewUserRepository(runner)
		usage = repo.NewUsageRepository(runner)
		logger.Info().Msg("catalog backed by postgres")
	} else {
		templates = memory.NewTemplateRepository(catalog.Seed())
		users = memory.NewUserRepository()
		usage = memory.NewUsageRepository()
		logger.Info().Msg("catalog backed by in-memory seed collection")
	}

	var store kv.Store
	if cfg.DataDir != "" {
		fileStore, err := kv.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open data dir")
		}
		store = fileStore
	} else {
		store = kv.NewMemoryStore()
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	if resolver != nil {
		lookup = resolver.CountryCode
	}

	app := &handlers.App{
		Logger:    logger,
		Accounts:  account.NewManager(users, store, logger),
		Templates: templates,
		Checker:   entitlement.NewChecker(usage),
		Cart:      cart.NewService(store, logger),
		JWTSecret: cfg.JWTSecret,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		DisplayCurrency: cfg.DisplayCurrency,
		CountryLookup:   lookup,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

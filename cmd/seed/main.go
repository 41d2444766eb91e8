// Command seed applies the schema and pushes the built-in catalog into
// Postgres.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"celora/internal/adapter/repo"
	"celora/internal/catalog"
	"celora/internal/infra"
	"celora/internal/sqlinline"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)
	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required for seeding")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := infra.RunMigrations(ctx, cfg.DatabaseURL, sqlinline.Schema, logger); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	templates := repo.NewTemplateRepository(infra.NewSQLRunner(pool, logger))
	for i, tpl := range catalog.Seed() {
		if err := tpl.Validate(); err != nil {
			logger.Fatal().Err(err).Str("id", tpl.ID).Msg("invalid seed record")
		}
		if err := templates.Upsert(ctx, tpl, i); err != nil {
			logger.Fatal().Err(err).Str("id", tpl.ID).Msg("upsert failed")
		}
		logger.Info().Str("id", tpl.ID).Msg("seeded")
	}
	logger.Info().Msg("seed complete")
}

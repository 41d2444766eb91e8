package infra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RunMigrations applies schema statements in order over a plain database/sql
// connection. Statements must be idempotent (CREATE TABLE IF NOT EXISTS ...);
// there is no down path.
func RunMigrations(ctx context.Context, databaseURL string, statements []string, logger zerolog.Logger) error {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		logger.Info().Int("statement", i+1).Msg("migration applied")
	}
	return nil
}

package repo

import (
	"context"
	"time"

	"celora/internal/domain"
	"celora/internal/infra"
	"celora/internal/sqlinline"
)

var _ domain.UsageRepository = (*UsageRepositoryPG)(nil)

// UsageRepositoryPG implements domain.UsageRepository over download_events.
type UsageRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUsageRepository creates a new UsageRepositoryPG.
func NewUsageRepository(sql infra.SQLExecutor) *UsageRepositoryPG {
	return &UsageRepositoryPG{sql: sql}
}

func (r *UsageRepositoryPG) PremiumUsed(ctx context.Context, userID, month string) (int, error) {
	var count int
	err := r.sql.QueryRow(ctx, sqlinline.QCountPremiumForMonth, userID, month).Scan(&count)
	return count, err
}

func (r *UsageRepositoryPG) DailyUsed(ctx context.Context, userID, day string) (int, error) {
	var count int
	err := r.sql.QueryRow(ctx, sqlinline.QCountDownloadsForDay, userID, day).Scan(&count)
	return count, err
}

func (r *UsageRepositoryPG) RecordDownload(ctx context.Context, userID string, premium bool, at time.Time) error {
	at = at.UTC()
	_, err := r.sql.Exec(ctx, sqlinline.QInsertDownloadEvent,
		userID, premium, at.Format("2006-01-02"), at.Format("2006-01"))
	return err
}

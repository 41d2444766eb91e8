package memory

import (
	"context"
	"sync"
	"time"

	"celora/internal/domain"
)

var _ domain.UsageRepository = (*UsageRepository)(nil)

// UsageRepository counts downloads per user keyed by UTC month and day.
type UsageRepository struct {
	mu      sync.Mutex
	premium map[string]int // userID|2006-01
	daily   map[string]int // userID|2006-01-02
}

// NewUsageRepository creates an empty usage tracker.
func NewUsageRepository() *UsageRepository {
	return &UsageRepository{
		premium: make(map[string]int),
		daily:   make(map[string]int),
	}
}

func (r *UsageRepository) PremiumUsed(ctx context.Context, userID, month string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.premium[userID+"|"+month], nil
}

func (r *UsageRepository) DailyUsed(ctx context.Context, userID, day string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.daily[userID+"|"+day], nil
}

func (r *UsageRepository) RecordDownload(ctx context.Context, userID string, premium bool, at time.Time) error {
	at = at.UTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.daily[userID+"|"+at.Format("2006-01-02")]++
	if premium {
		r.premium[userID+"|"+at.Format("2006-01")]++
	}
	return nil
}

package domain

import (
	"context"
	"time"
)

// TemplateRepository defines read access to the catalog collection.
type TemplateRepository interface {
	List(ctx context.Context) ([]TemplateSummary, error)
	GetByID(ctx context.Context, id string) (*TemplateSummary, error)
}

// UserRepository defines persistence for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByMobile(ctx context.Context, mobile string) (*User, error)
	UpdatePlan(ctx context.Context, id string, plan Plan) error
}

// UsageRepository tracks download counters consumed by entitlement checks.
// Months are keyed "2006-01", days "2006-01-02", both in UTC.
type UsageRepository interface {
	PremiumUsed(ctx context.Context, userID, month string) (int, error)
	DailyUsed(ctx context.Context, userID, day string) (int, error)
	RecordDownload(ctx context.Context, userID string, premium bool, at time.Time) error
}

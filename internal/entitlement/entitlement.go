// Package entitlement answers whether a session may download a given
// template, based on the plan table and recorded usage counters.
package entitlement

import (
	"context"
	"time"

	"celora/internal/domain"
)

// Decision is the computed permission state for one (session, template) pair.
type Decision string

const (
	// Allowed permits the download immediately.
	Allowed Decision = "allowed"
	// RequiresUpgrade means the template is premium and the plan has no
	// remaining premium quota.
	RequiresUpgrade Decision = "requires_upgrade"
	// RequiresDailyCapWait means the free plan's daily download cap has been
	// reached for today.
	RequiresDailyCapWait Decision = "requires_daily_cap_wait"
)

// Err maps a blocking decision onto its sentinel error. Allowed maps to nil.
func (d Decision) Err() error {
	switch d {
	case RequiresUpgrade:
		return domain.ErrQuotaExceeded
	case RequiresDailyCapWait:
		return domain.ErrDailyCapReached
	}
	return nil
}

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// Checker evaluates entitlement decisions. It reads counters through the
// usage repository but never writes them; recording belongs to the download
// path.
type Checker struct {
	usage domain.UsageRepository
	now   func() time.Time
}

// NewChecker wires a Checker over the usage tracker.
func NewChecker(usage domain.UsageRepository) *Checker {
	return &Checker{usage: usage, now: time.Now}
}

// Check computes the decision for one template under the session's plan.
func (c *Checker) Check(ctx context.Context, session *domain.Session, tpl domain.TemplateSummary) (Decision, error) {
	def, ok := domain.LookupPlan(session.Plan)
	if !ok {
		return "", domain.ErrUnsupportedPlan
	}
	now := c.now().UTC()

	if tpl.IsFree {
		if def.DailyDownloadCap > 0 {
			used, err := c.usage.DailyUsed(ctx, session.UserID, now.Format(dayLayout))
			if err != nil {
				return "", err
			}
			if used >= def.DailyDownloadCap {
				return RequiresDailyCapWait, nil
			}
		}
		return Allowed, nil
	}

	if def.UnlimitedPremium {
		return Allowed, nil
	}
	if def.MonthlyPremiumQuota > 0 {
		used, err := c.usage.PremiumUsed(ctx, session.UserID, now.Format(monthLayout))
		if err != nil {
			return "", err
		}
		if used < def.MonthlyPremiumQuota {
			return Allowed, nil
		}
	}
	return RequiresUpgrade, nil
}

// Record counts a completed download against the session's counters. The
// decision is re-checked first so a download past a limit is never recorded,
// even if the caller skipped Check.
func (c *Checker) Record(ctx context.Context, session *domain.Session, tpl domain.TemplateSummary) error {
	decision, err := c.Check(ctx, session, tpl)
	if err != nil {
		return err
	}
	if err := decision.Err(); err != nil {
		return err
	}
	return c.usage.RecordDownload(ctx, session.UserID, tpl.IsPremium, c.now().UTC())
}

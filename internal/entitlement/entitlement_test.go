package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celora/internal/adapter/memory"
	"celora/internal/domain"
)

var (
	freeTemplate    = domain.TemplateSummary{ID: "free-1", IsFree: true, Category: domain.CategoryWeb}
	premiumTemplate = domain.TemplateSummary{ID: "prem-1", IsPremium: true, Price: 2999, Category: domain.CategoryWeb}
)

func sessionOn(plan domain.Plan) *domain.Session {
	return &domain.Session{UserID: "u1", Email: "a@b.com", Plan: plan}
}

func newTestChecker() (*Checker, *memory.UsageRepository) {
	usage := memory.NewUsageRepository()
	c := NewChecker(usage)
	c.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return c, usage
}

func TestPremiumUnderFreePlanRequiresUpgrade(t *testing.T) {
	c, _ := newTestChecker()
	decision, err := c.Check(context.Background(), sessionOn(domain.PlanFree), premiumTemplate)
	require.NoError(t, err)
	assert.Equal(t, RequiresUpgrade, decision)
}

func TestFreeTemplateAllowedOnEveryPlan(t *testing.T) {
	c, _ := newTestChecker()
	for _, plan := range []domain.Plan{domain.PlanFree, domain.PlanStarter, domain.PlanPro, domain.PlanEnterprise, domain.PlanTeam} {
		decision, err := c.Check(context.Background(), sessionOn(plan), freeTemplate)
		require.NoError(t, err)
		assert.Equal(t, Allowed, decision, "plan %s", plan)
	}
}

func TestFreePlanDailyCap(t *testing.T) {
	c, _ := newTestChecker()
	session := sessionOn(domain.PlanFree)
	def, _ := domain.LookupPlan(domain.PlanFree)
	require.Positive(t, def.DailyDownloadCap)

	for i := 0; i < def.DailyDownloadCap; i++ {
		decision, err := c.Check(context.Background(), session, freeTemplate)
		require.NoError(t, err)
		require.Equal(t, Allowed, decision)
		require.NoError(t, c.Record(context.Background(), session, freeTemplate))
	}

	decision, err := c.Check(context.Background(), session, freeTemplate)
	require.NoError(t, err)
	assert.Equal(t, RequiresDailyCapWait, decision)

	// the cap resets on the next day
	c.now = func() time.Time { return time.Date(2025, 3, 11, 0, 0, 1, 0, time.UTC) }
	decision, err = c.Check(context.Background(), session, freeTemplate)
	require.NoError(t, err)
	assert.Equal(t, Allowed, decision)
}

func TestStarterMonthlyQuota(t *testing.T) {
	c, _ := newTestChecker()
	session := sessionOn(domain.PlanStarter)
	def, _ := domain.LookupPlan(domain.PlanStarter)
	require.Equal(t, 4, def.MonthlyPremiumQuota)

	for i := 0; i < def.MonthlyPremiumQuota; i++ {
		decision, err := c.Check(context.Background(), session, premiumTemplate)
		require.NoError(t, err)
		require.Equal(t, Allowed, decision, "download %d", i+1)
		require.NoError(t, c.Record(context.Background(), session, premiumTemplate))
	}

	decision, err := c.Check(context.Background(), session, premiumTemplate)
	require.NoError(t, err)
	assert.Equal(t, RequiresUpgrade, decision)

	// quota resets with the billing month
	c.now = func() time.Time { return time.Date(2025, 4, 1, 0, 0, 1, 0, time.UTC) }
	decision, err = c.Check(context.Background(), session, premiumTemplate)
	require.NoError(t, err)
	assert.Equal(t, Allowed, decision)
}

func TestUnlimitedPlansNeverExhaust(t *testing.T) {
	c, _ := newTestChecker()
	for _, plan := range []domain.Plan{domain.PlanPro, domain.PlanEnterprise, domain.PlanTeam} {
		session := sessionOn(plan)
		for i := 0; i < 50; i++ {
			require.NoError(t, c.Record(context.Background(), session, premiumTemplate))
		}
		decision, err := c.Check(context.Background(), session, premiumTemplate)
		require.NoError(t, err)
		assert.Equal(t, Allowed, decision, "plan %s", plan)
	}
}

func TestUnknownPlanRejected(t *testing.T) {
	c, _ := newTestChecker()
	_, err := c.Check(context.Background(), sessionOn("platinum"), premiumTemplate)
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlan)
}

func TestDecisionErrSentinels(t *testing.T) {
	assert.NoError(t, Allowed.Err())
	assert.ErrorIs(t, RequiresUpgrade.Err(), domain.ErrQuotaExceeded)
	assert.ErrorIs(t, RequiresDailyCapWait.Err(), domain.ErrDailyCapReached)
}

func TestRecordRefusesBlockedDownload(t *testing.T) {
	c, usage := newTestChecker()

	free := sessionOn(domain.PlanFree)
	def, _ := domain.LookupPlan(domain.PlanFree)
	for i := 0; i < def.DailyDownloadCap; i++ {
		require.NoError(t, c.Record(context.Background(), free, freeTemplate))
	}
	assert.ErrorIs(t, c.Record(context.Background(), free, freeTemplate), domain.ErrDailyCapReached)
	used, err := usage.DailyUsed(context.Background(), free.UserID, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, def.DailyDownloadCap, used, "a refused download must not be counted")

	// premium past-quota downloads are refused with the quota sentinel, even
	// when Check was never called
	assert.ErrorIs(t, c.Record(context.Background(), free, premiumTemplate), domain.ErrQuotaExceeded)
}

func TestFreeDownloadsDoNotConsumePremiumQuota(t *testing.T) {
	c, usage := newTestChecker()
	session := sessionOn(domain.PlanStarter)
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Record(context.Background(), session, freeTemplate))
	}
	used, err := usage.PremiumUsed(context.Background(), session.UserID, "2025-03")
	require.NoError(t, err)
	assert.Zero(t, used)

	decision, err := c.Check(context.Background(), session, premiumTemplate)
	require.NoError(t, err)
	assert.Equal(t, Allowed, decision)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celora/internal/account"
	"celora/internal/adapter/memory"
	"celora/internal/cart"
	"celora/internal/catalog"
	"celora/internal/domain"
	"celora/internal/entitlement"
	"celora/internal/http/handlers"
	"celora/internal/http/httpapi"
	"celora/internal/kv"
)

const testSecret = "handlers-test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerWith(t, catalog.Seed())
}

func newTestServerWith(t *testing.T, templates []domain.TemplateSummary) *httptest.Server {
	t.Helper()
	store := kv.NewMemoryStore()
	logger := zerolog.Nop()
	app := &handlers.App{
		Logger:    logger,
		Accounts:  account.NewManager(memory.NewUserRepository(), store, logger),
		Templates: memory.NewTemplateRepository(templates),
		Checker:   entitlement.NewChecker(memory.NewUsageRepository()),
		Cart:      cart.NewService(store, logger),
		JWTSecret: testSecret,
	}
	srv := httptest.NewServer(httpapi.NewRouter(app, httpapi.Options{DisplayCurrency: "USD"}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

type sessionEnvelope struct {
	Token   string `json:"token"`
	Session struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
		Plan   string `json:"plan"`
	} `json:"session"`
}

func registerUser(t *testing.T, srv *httptest.Server, email string) sessionEnvelope {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/register", "", map[string]string{
		"email":        email,
		"password":     "Sup3rSecret!",
		"display_name": "Asha Rao",
		"role":         "buyer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var env sessionEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	require.NotEmpty(t, env.Token)
	return env
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)
	env := registerUser(t, srv, "asha@example.com")
	assert.Equal(t, "free", env.Session.Plan)
	assert.Equal(t, "buyer", env.Session.Role)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/register", "", map[string]string{
		"email":        "asha@example.com",
		"password":     "Sup3rSecret!",
		"display_name": "Asha Rao",
		"role":         "buyer",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/login", "", map[string]string{
		"identifier": "asha@example.com",
		"password":   "Sup3rSecret!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/login", "", map[string]string{
		"identifier": "asha@example.com",
		"password":   "WrongPass1!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "invalid credentials")
}

func TestRegisterValidationFailure(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/register", "", map[string]string{
		"email":        "asha@example.com",
		"password":     "short",
		"display_name": "Asha Rao",
		"role":         "buyer",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterSeller(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/register-seller", "", map[string]string{
		"email":               "seller@example.com",
		"password":            "Sup3rSecret!",
		"display_name":        "Dev Studio",
		"role":                "seller",
		"tax_id":              "ABCDE1234F",
		"bank_account_name":   "Dev Studio LLP",
		"bank_account_number": "123456789012",
		"routing_code":        "HDFC0001234",
		"address":             "42 MG Road, Bengaluru",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var env sessionEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, "seller", env.Session.Role)
}

func TestListTemplatesWithCriteria(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/templates?category=Web&sort=price_asc", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var page struct {
		Items []struct {
			ID              string `json:"id"`
			Price           int    `json:"price"`
			DisplayPrice    int    `json:"display_price"`
			DisplayCurrency string `json:"display_currency"`
		} `json:"items"`
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(body, &page))
	require.Equal(t, 3, page.TotalCount)
	prev := -1
	for _, item := range page.Items {
		require.GreaterOrEqual(t, item.Price, prev)
		prev = item.Price
		assert.Equal(t, "USD", item.DisplayCurrency)
	}
}

func TestListTemplatesCurrencyHeader(t *testing.T) {
	srv := newTestServer(t)
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/v1/templates", nil)
	require.NoError(t, err)
	req.Header.Set("X-Currency", "INR")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var page struct {
		Items []struct {
			Price           int    `json:"price"`
			DisplayPrice    int    `json:"display_price"`
			DisplayCurrency string `json:"display_currency"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.NotEmpty(t, page.Items)
	for _, item := range page.Items {
		assert.Equal(t, "INR", item.DisplayCurrency)
		assert.Equal(t, item.Price, item.DisplayPrice)
	}
}

func TestListTemplatesMalformedPage(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/templates?page=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/templates?sort=cheapest", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTemplateNotFound(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/templates/tpl-missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/v1/me"},
		{http.MethodGet, "/v1/cart"},
		{http.MethodGet, "/v1/library"},
		{http.MethodPost, "/v1/templates/tpl-creative-portfolio/download"},
	} {
		resp, _ := doJSON(t, route.method, srv.URL+route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, route.path)
	}
}

func TestDownloadFreeTemplateDailyCap(t *testing.T) {
	srv := newTestServer(t)
	env := registerUser(t, srv, "cap@example.com")

	url := srv.URL + "/v1/templates/tpl-creative-portfolio/download"
	for i := 0; i < 5; i++ {
		resp, body := doJSON(t, http.MethodPost, url, env.Token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, fmt.Sprintf("download %d: %s", i+1, body))
	}
	resp, body := doJSON(t, http.MethodPost, url, env.Token, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(body), "requires_daily_cap_wait")
}

func TestDownloadPremiumRequiresUpgrade(t *testing.T) {
	srv := newTestServer(t)
	env := registerUser(t, srv, "premium@example.com")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/templates/tpl-ecommerce-dashboard/entitlement", env.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "requires_upgrade")

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/templates/tpl-ecommerce-dashboard/download", env.Token, nil)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Contains(t, string(body), "requires_upgrade")

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/v1/me/plan", env.Token, map[string]string{"plan": "pro"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/templates/tpl-ecommerce-dashboard/download", env.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"decision":"allowed"`)
}

func TestStarterMonthlyQuota(t *testing.T) {
	srv := newTestServer(t)
	env := registerUser(t, srv, "starter@example.com")

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/v1/me/plan", env.Token, map[string]string{"plan": "starter"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	url := srv.URL + "/v1/templates/tpl-ecommerce-dashboard/download"
	for i := 0; i < 4; i++ {
		resp, body := doJSON(t, http.MethodPost, url, env.Token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, fmt.Sprintf("download %d: %s", i+1, body))
	}
	resp, body = doJSON(t, http.MethodPost, url, env.Token, nil)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Contains(t, string(body), "requires_upgrade")
}

func TestUpdatePlanUnknown(t *testing.T) {
	srv := newTestServer(t)
	env := registerUser(t, srv, "plan@example.com")
	resp, _ := doJSON(t, http.MethodPut, srv.URL+"/v1/me/plan", env.Token, map[string]string{"plan": "diamond"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutIdempotent(t *testing.T) {
	srv := newTestServer(t)
	env := registerUser(t, srv, "bye@example.com")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/logout", env.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/logout", env.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// session cleared, profile access now answers 401
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/me", env.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCartFlow(t *testing.T) {
	srv := newTestServer(t)
	env := registerUser(t, srv, "cart@example.com")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/cart", env.Token, map[string]string{"template_id": "tpl-ecommerce-dashboard"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	// duplicate add is a no-op
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/cart", env.Token, map[string]string{"template_id": "tpl-ecommerce-dashboard"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/cart", env.Token, map[string]string{"template_id": "tpl-material-ui-kit"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Total int `json:"total"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 2999+1999, got.Total)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/cart", env.Token, map[string]string{"template_id": "tpl-missing"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/v1/cart/tpl-material-ui-kit", env.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 1, got.Count)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/cart", env.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/cart", env.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 0, got.Count)
}

func TestLibraryFlow(t *testing.T) {
	srv := newTestServer(t)
	env := registerUser(t, srv, "library@example.com")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/library/tpl-creative-portfolio", env.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/library/tpl-creative-portfolio", env.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/library", env.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lib struct {
		TemplateIDs []string `json:"template_ids"`
	}
	require.NoError(t, json.Unmarshal(body, &lib))
	assert.Equal(t, []string{"tpl-creative-portfolio"}, lib.TemplateIDs)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/library/tpl-creative-portfolio", env.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/library", env.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &lib))
	assert.Empty(t, lib.TemplateIDs)
}

func TestTrendingAndFeatured(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/templates/trending?limit=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []struct {
		IsTrending bool `json:"is_trending"`
	}
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.IsTrending)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/templates/featured", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var featured []struct {
		ID         string `json:"id"`
		IsTrending bool   `json:"is_trending"`
	}
	require.NoError(t, json.Unmarshal(body, &featured))
	require.Len(t, featured, 3)
	for _, item := range featured {
		assert.True(t, item.IsTrending)
	}
	assert.Equal(t, "tpl-ecommerce-dashboard", featured[0].ID)
}

func TestFeaturedExcludesHighRatedNonTrending(t *testing.T) {
	collection := append(catalog.Seed(), domain.TemplateSummary{
		ID:        "tpl-hot-rated",
		Title:     "Top Rated Admin Theme",
		Price:     1299,
		Category:  domain.CategoryWeb,
		Rating:    5.0,
		IsPremium: true,
		CreatedAt: time.Date(2024, 12, 23, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 12, 23, 8, 0, 0, 0, time.UTC),
		OwnerID:   "user7",
	})
	srv := newTestServerWith(t, collection)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/templates/featured", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var featured []struct {
		ID         string `json:"id"`
		IsTrending bool   `json:"is_trending"`
	}
	require.NoError(t, json.Unmarshal(body, &featured))
	require.Len(t, featured, 3)
	for _, item := range featured {
		assert.True(t, item.IsTrending)
		assert.NotEqual(t, "tpl-hot-rated", item.ID)
	}
}

func TestStatsOverview(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/stats/overview", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var overview struct {
		TemplateCount int `json:"template_count"`
		FreeCount     int `json:"free_count"`
	}
	require.NoError(t, json.Unmarshal(body, &overview))
	assert.Equal(t, 6, overview.TemplateCount)
	assert.Equal(t, 1, overview.FreeCount)
}

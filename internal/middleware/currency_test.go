package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func resolveThrough(t *testing.T, req *http.Request, lookup CountryLookup) string {
	t.Helper()
	var got string
	handler := DisplayCurrency("USD", lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CurrencyFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestDisplayCurrencyHeaderWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	req.Header.Set("X-Currency", "inr")
	req.Header.Set("X-Country", "DE")
	if got := resolveThrough(t, req, nil); got != "INR" {
		t.Fatalf("currency = %q, want INR", got)
	}
}

func TestDisplayCurrencyCountryOverride(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	req.Header.Set("X-Country", "in")
	if got := resolveThrough(t, req, nil); got != "INR" {
		t.Fatalf("currency = %q, want INR", got)
	}
}

func TestDisplayCurrencyDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	if got := resolveThrough(t, req, nil); got != "USD" {
		t.Fatalf("currency = %q, want USD", got)
	}
}

func TestDisplayCurrencyGeoIPLookup(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	lookup := func(ip string) (string, error) {
		if ip != "203.0.113.7" {
			t.Fatalf("lookup called with %q", ip)
		}
		return "IN", nil
	}
	if got := resolveThrough(t, req, lookup); got != "INR" {
		t.Fatalf("currency = %q, want INR", got)
	}
}

func TestDisplayCurrencyLookupFailureFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	lookup := func(string) (string, error) { return "", errors.New("db offline") }
	if got := resolveThrough(t, req, lookup); got != "USD" {
		t.Fatalf("currency = %q, want USD", got)
	}
}

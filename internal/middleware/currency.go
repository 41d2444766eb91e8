package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"celora/internal/pricing"
)

type currencyContextKey struct{}

// CurrencyKey carries the resolved display currency through the request
// context.
var CurrencyKey = currencyContextKey{}

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// DisplayCurrency resolves the display currency for each request: an explicit
// X-Currency header wins, then the visitor country override, then the
// configured default. The lookup may be nil when no GeoIP database is
// configured.
func DisplayCurrency(defaultCurrency string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := resolveCountry(r, lookup)
			cur := defaultCurrency
			if v := r.Header.Get("X-Currency"); v != "" {
				cur = strings.ToUpper(strings.TrimSpace(v))
			} else {
				cur = pricing.ForCountry(defaultCurrency, country)
			}
			ctx := context.WithValue(r.Context(), CurrencyKey, cur)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveCountry(r *http.Request, lookup CountryLookup) string {
	if v := r.Header.Get("X-Country"); v != "" {
		return strings.ToUpper(strings.TrimSpace(v))
	}
	if lookup == nil {
		return ""
	}
	ip := clientIP(r)
	if ip == "" {
		return ""
	}
	country, err := lookup(ip)
	if err != nil {
		return ""
	}
	return country
}

func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && net.ParseIP(host) != nil {
		return host
	}
	if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}
	return ""
}

// CurrencyFromContext returns the resolved display currency, empty when the
// middleware did not run.
func CurrencyFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CurrencyKey).(string); ok {
		return v
	}
	return ""
}

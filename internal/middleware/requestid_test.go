package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDHonorsValidInboundID(t *testing.T) {
	inbound := uuid.NewString()
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	req.Header.Set("X-Request-ID", inbound)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got != inbound {
		t.Fatalf("RequestIDFromContext() = %q, want %q", got, inbound)
	}
	if rec.Header().Get("X-Request-ID") != inbound {
		t.Fatalf("response header = %q, want %q", rec.Header().Get("X-Request-ID"), inbound)
	}
}

func TestRequestIDReplacesNonUUID(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == "not-a-uuid" || got == "" {
		t.Fatalf("RequestID must replace a malformed inbound id, got %q", got)
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", got, err)
	}
}

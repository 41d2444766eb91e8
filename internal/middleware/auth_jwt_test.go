package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSignAndVerifyJWT(t *testing.T) {
	claims := TokenClaims{
		Sub:      "user-123",
		Plan:     "starter",
		Role:     "buyer",
		Exp:      time.Now().Add(time.Hour).Unix(),
		Issuer:   "celora",
		Audience: "celora-clients",
	}
	token, err := SignJWT("secret", claims)
	if err != nil {
		t.Fatalf("SignJWT() unexpected error: %v", err)
	}

	got, err := VerifyJWT("secret", token)
	if err != nil {
		t.Fatalf("VerifyJWT() unexpected error: %v", err)
	}
	if got.Sub != claims.Sub || got.Plan != claims.Plan || got.Role != claims.Role {
		t.Fatalf("VerifyJWT() claims mismatch: %+v", got)
	}
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	token, err := SignJWT("secret", TokenClaims{Sub: "user-123"})
	if err != nil {
		t.Fatalf("SignJWT() unexpected error: %v", err)
	}
	if _, err := VerifyJWT("other-secret", token); err == nil {
		t.Fatal("VerifyJWT() expected error for wrong secret")
	}
}

func TestVerifyJWTExpired(t *testing.T) {
	token, err := SignJWT("secret", TokenClaims{
		Sub: "user-123",
		Exp: time.Now().Add(-time.Minute).Unix(),
	})
	if err != nil {
		t.Fatalf("SignJWT() unexpected error: %v", err)
	}
	if _, err := VerifyJWT("secret", token); err == nil {
		t.Fatal("VerifyJWT() expected error for expired token")
	}
}

func TestAuthJWTMiddleware(t *testing.T) {
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthJWT("secret")(next)

	token, err := SignJWT("secret", TokenClaims{
		Sub:  "user-123",
		Plan: "pro",
		Exp:  time.Now().Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("SignJWT() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotUserID != "user-123" {
		t.Fatalf("UserIDFromContext() = %q, want user-123", gotUserID)
	}
}

func TestAuthJWTMiddlewareRejects(t *testing.T) {
	handler := AuthJWT("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	for name, header := range map[string]string{
		"missing":     "",
		"not_bearer":  "Basic abc",
		"bogus_token": "Bearer not.a.token",
	} {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want %d", name, rec.Code, http.StatusUnauthorized)
		}
	}
}

// Package handlers exposes the marketplace operations over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"celora/internal/account"
	"celora/internal/cart"
	"celora/internal/domain"
	"celora/internal/entitlement"
	"celora/internal/middleware"
)

var validate = validator.New()

// App carries the wired services shared by all handlers.
type App struct {
	Logger    zerolog.Logger
	Accounts  *account.Manager
	Templates domain.TemplateRepository
	Checker   *entitlement.Checker
	Cart      *cart.Service
	JWTSecret string
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// domainError maps service errors onto the response envelope.
func (a *App) domainError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	var authErr *domain.AuthError
	switch {
	case errors.As(err, &vErr):
		a.error(w, http.StatusBadRequest, "bad_request", vErr.Error())
	case errors.As(err, &authErr):
		a.error(w, http.StatusUnauthorized, "unauthorized", authErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrDuplicateAccount):
		a.error(w, http.StatusConflict, "conflict", "account already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", "not authorized")
	case errors.Is(err, domain.ErrQuotaExceeded):
		a.error(w, http.StatusPaymentRequired, "quota_exceeded", err.Error())
	case errors.Is(err, domain.ErrDailyCapReached):
		a.error(w, http.StatusTooManyRequests, "daily_cap_reached", err.Error())
	case errors.Is(err, domain.ErrUnsupportedPlan):
		a.error(w, http.StatusBadRequest, "bad_request", "unsupported plan")
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// currentSession restores the caller's session from the token subject. A
// missing or expired session writes the response itself and returns nil.
func (a *App) currentSession(w http.ResponseWriter, r *http.Request) *domain.Session {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return nil
	}
	session, err := a.Accounts.CurrentSession(r.Context(), userID)
	if err != nil {
		a.domainError(w, err)
		return nil
	}
	if session == nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "session expired")
		return nil
	}
	return session
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"celora/internal/account"
	"celora/internal/domain"
	"celora/internal/middleware"
)

const (
	tokenIssuer   = "celora"
	tokenAudience = "celora-clients"
	tokenTTL      = 24 * time.Hour
)

type registerRequest struct {
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Mobile      string `json:"mobile"`
}

type registerSellerRequest struct {
	registerRequest
	TaxID             string `json:"tax_id" validate:"required"`
	BankAccountName   string `json:"bank_account_name" validate:"required"`
	BankAccountNumber string `json:"bank_account_number" validate:"required"`
	RoutingCode       string `json:"routing_code" validate:"required"`
	Address           string `json:"address" validate:"required"`
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

func (a *App) issueToken(session *domain.Session) (string, error) {
	return middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		Sub:      session.UserID,
		Plan:     string(session.Plan),
		Role:     string(session.Role),
		Exp:      time.Now().Add(tokenTTL).Unix(),
		Issuer:   tokenIssuer,
		Audience: tokenAudience,
	})
}

func (a *App) respondSession(w http.ResponseWriter, status int, session *domain.Session) {
	token, err := a.issueToken(session)
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}
	a.json(w, status, sessionResponse{Token: token, Session: session})
}

func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	session, err := a.Accounts.Register(r.Context(), account.Registration{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        domain.UserRole(req.Role),
		Mobile:      req.Mobile,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.respondSession(w, http.StatusCreated, session)
}

func (a *App) RegisterSeller(w http.ResponseWriter, r *http.Request) {
	var req registerSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	session, err := a.Accounts.RegisterSeller(r.Context(), account.SellerRegistration{
		Registration: account.Registration{
			Email:       req.Email,
			Password:    req.Password,
			DisplayName: req.DisplayName,
			Role:        domain.RoleSeller,
			Mobile:      req.Mobile,
		},
		TaxID:             req.TaxID,
		BankAccountName:   req.BankAccountName,
		BankAccountNumber: req.BankAccountNumber,
		RoutingCode:       req.RoutingCode,
		Address:           req.Address,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.respondSession(w, http.StatusCreated, session)
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	session, err := a.Accounts.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.respondSession(w, http.StatusOK, session)
}

// Logout clears the persisted session. It is idempotent, so a repeated call
// still answers 204.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	if err := a.Accounts.Logout(r.Context(), userID); err != nil {
		a.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	session := a.currentSession(w, r)
	if session == nil {
		return
	}
	a.json(w, http.StatusOK, session)
}

type updatePlanRequest struct {
	Plan string `json:"plan" validate:"required"`
}

func (a *App) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req updatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	session, err := a.Accounts.UpdatePlan(r.Context(), userID, domain.Plan(req.Plan))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.respondSession(w, http.StatusOK, session)
}

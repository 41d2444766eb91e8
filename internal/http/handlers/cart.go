package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"celora/internal/domain"
)

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total int               `json:"total"`
	Count int               `json:"count"`
}

func toCartResponse(c domain.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{Items: items, Total: c.Total(), Count: c.Count()}
}

func (a *App) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	cart, err := a.Cart.Cart(userID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCartResponse(cart))
}

type addCartItemRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
}

// AddCartItem stages a template for purchase. The stored catalog record is the
// source of truth for title and price; the client only names the ID.
func (a *App) AddCartItem(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	tpl, err := a.Templates.GetByID(r.Context(), req.TemplateID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	cart, err := a.Cart.Add(userID, domain.CartItem{
		ID:            tpl.ID,
		Title:         tpl.Title,
		Price:         tpl.Price,
		Category:      string(tpl.Category),
		OriginalPrice: tpl.OriginalPrice,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCartResponse(cart))
}

func (a *App) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	cart, err := a.Cart.Remove(userID, chi.URLParam(r, "itemId"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCartResponse(cart))
}

func (a *App) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	if err := a.Cart.Clear(userID); err != nil {
		a.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type libraryResponse struct {
	TemplateIDs []string `json:"template_ids"`
}

func (a *App) GetLibrary(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	ids, err := a.Cart.Library(userID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	a.json(w, http.StatusOK, libraryResponse{TemplateIDs: ids})
}

func (a *App) SaveToLibrary(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	tpl, err := a.Templates.GetByID(r.Context(), chi.URLParam(r, "templateId"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	if err := a.Cart.SaveToLibrary(userID, tpl.ID); err != nil {
		a.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) RemoveFromLibrary(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	if err := a.Cart.RemoveFromLibrary(userID, chi.URLParam(r, "templateId")); err != nil {
		a.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

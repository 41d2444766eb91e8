package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"celora/internal/catalog"
	"celora/internal/domain"
	"celora/internal/entitlement"
	"celora/internal/middleware"
	"celora/internal/pricing"
)

const (
	defaultPageSize      = 12
	featuredCount        = 3
	defaultTrendingCount = 4
)

// templateDTO is a catalog record plus its display-currency projection.
type templateDTO struct {
	domain.TemplateSummary
	DisplayPrice    int    `json:"display_price"`
	DisplayCurrency string `json:"display_currency"`
	FormattedPrice  string `json:"formatted_price"`
}

type pageResponse struct {
	Items      []templateDTO `json:"items"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	HasMore    bool          `json:"has_more"`
}

func displayTemplate(t domain.TemplateSummary, cur string) templateDTO {
	if cur == "" {
		cur = pricing.DefaultCurrency
	}
	return templateDTO{
		TemplateSummary: t,
		DisplayPrice:    pricing.Convert(t.Price, cur),
		DisplayCurrency: cur,
		FormattedPrice:  pricing.Format(t.Price, cur),
	}
}

func displayTemplates(ts []domain.TemplateSummary, cur string) []templateDTO {
	out := make([]templateDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, displayTemplate(t, cur))
	}
	return out
}

// parseCriteria builds query criteria from the URL query string. Absent
// paging parameters default to the first page; malformed values are rejected
// rather than corrected.
func parseCriteria(r *http.Request) (catalog.Criteria, error) {
	q := r.URL.Query()
	c := catalog.Criteria{
		Category:   q.Get("category"),
		SearchText: q.Get("search"),
		SortKey:    catalog.SortKey(q.Get("sort")),
		Page:       1,
		PageSize:   defaultPageSize,
	}
	for name, dst := range map[string]*int{"page": &c.Page, "page_size": &c.PageSize} {
		if raw := q.Get(name); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return c, domain.NewValidationError(name, "must be an integer")
			}
			*dst = n
		}
	}
	for name, dst := range map[string]**bool{"premium": &c.IsPremium, "free": &c.IsFree, "trending": &c.IsTrending} {
		if raw := q.Get(name); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return c, domain.NewValidationError(name, "must be a boolean")
			}
			*dst = &v
		}
	}
	return c, nil
}

func (a *App) ListTemplates(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		a.domainError(w, err)
		return
	}
	collection, err := a.Templates.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	page, err := catalog.Query(collection, criteria)
	if err != nil {
		a.domainError(w, err)
		return
	}
	cur := middleware.CurrencyFromContext(r.Context())
	a.json(w, http.StatusOK, pageResponse{
		Items:      displayTemplates(page.Items, cur),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		HasMore:    page.HasMore,
	})
}

func (a *App) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := a.Templates.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, displayTemplate(*tpl, middleware.CurrencyFromContext(r.Context())))
}

// FeaturedTemplates returns the featured slice of the catalog: trending
// records in source order.
func (a *App) FeaturedTemplates(w http.ResponseWriter, r *http.Request) {
	collection, err := a.Templates.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, displayTemplates(catalog.Featured(collection, featuredCount), middleware.CurrencyFromContext(r.Context())))
}

func (a *App) TrendingTemplates(w http.ResponseWriter, r *http.Request) {
	limit := defaultTrendingCount
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	collection, err := a.Templates.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, displayTemplates(catalog.Trending(collection, limit), middleware.CurrencyFromContext(r.Context())))
}

type entitlementResponse struct {
	TemplateID string               `json:"template_id"`
	Decision   entitlement.Decision `json:"decision"`
}

func (a *App) TemplateEntitlement(w http.ResponseWriter, r *http.Request) {
	session := a.currentSession(w, r)
	if session == nil {
		return
	}
	tpl, err := a.Templates.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	decision, err := a.Checker.Check(r.Context(), session, *tpl)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, entitlementResponse{TemplateID: tpl.ID, Decision: decision})
}

type downloadResponse struct {
	TemplateID string               `json:"template_id"`
	Decision   entitlement.Decision `json:"decision"`
	Template   *templateDTO         `json:"template,omitempty"`
}

// DownloadTemplate gates the download on the entitlement decision and records
// usage only when the download is allowed.
func (a *App) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	session := a.currentSession(w, r)
	if session == nil {
		return
	}
	tpl, err := a.Templates.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	decision, err := a.Checker.Check(r.Context(), session, *tpl)
	if err != nil {
		a.domainError(w, err)
		return
	}
	resp := downloadResponse{TemplateID: tpl.ID, Decision: decision}
	if derr := decision.Err(); derr != nil {
		if errors.Is(derr, domain.ErrDailyCapReached) {
			a.json(w, http.StatusTooManyRequests, resp)
			return
		}
		a.json(w, http.StatusPaymentRequired, resp)
		return
	}
	if err := a.Checker.Record(r.Context(), session, *tpl); err != nil {
		a.domainError(w, err)
		return
	}
	dto := displayTemplate(*tpl, middleware.CurrencyFromContext(r.Context()))
	resp.Template = &dto
	a.json(w, http.StatusOK, resp)
}

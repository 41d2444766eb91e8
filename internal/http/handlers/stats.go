package handlers

import (
	"net/http"

	"celora/internal/catalog"
)

// StatsOverview aggregates catalog counters for the storefront dashboard.
func (a *App) StatsOverview(w http.ResponseWriter, r *http.Request) {
	collection, err := a.Templates.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, catalog.Summarize(collection))
}

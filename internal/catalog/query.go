// Package catalog implements the query engine over the in-memory template
// collection: filtering, stable sorting and pagination.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"celora/internal/domain"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// Criteria is one catalog query request. Nil boolean filters impose no
// constraint; explicit values must match exactly. An empty SortKey preserves
// source order.
type Criteria struct {
	Category   string
	SearchText string
	IsPremium  *bool
	IsFree     *bool
	IsTrending *bool
	SortKey    SortKey
	Page       int
	PageSize   int
}

// Page is one slice of query results.
type Page struct {
	Items      []domain.TemplateSummary `json:"items"`
	TotalCount int                      `json:"total_count"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	HasMore    bool                     `json:"has_more"`
}

func (c Criteria) validate() error {
	if c.Page < 1 {
		return domain.NewValidationError("page", "must be >= 1")
	}
	if c.PageSize < 1 {
		return domain.NewValidationError("page_size", "must be >= 1")
	}
	switch c.SortKey {
	case "", SortNewest, SortPopular, SortRating, SortPriceAsc, SortPriceDesc:
		return nil
	}
	return domain.NewValidationError("sort", fmt.Sprintf("unknown sort key %q", c.SortKey))
}

// Query filters, sorts and paginates the collection. The collection itself is
// never mutated; sorting is stable, so records with equal sort keys keep their
// source order. Malformed criteria fail with a ValidationError rather than
// being silently defaulted.
func Query(collection []domain.TemplateSummary, c Criteria) (*Page, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	filtered := make([]domain.TemplateSummary, 0, len(collection))
	search := strings.ToLower(strings.TrimSpace(c.SearchText))
	for _, t := range collection {
		if !matchCategory(t, c.Category) {
			continue
		}
		if search != "" && !matchSearch(t, search) {
			continue
		}
		if c.IsPremium != nil && t.IsPremium != *c.IsPremium {
			continue
		}
		if c.IsFree != nil && t.IsFree != *c.IsFree {
			continue
		}
		if c.IsTrending != nil && t.IsTrending != *c.IsTrending {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTemplates(filtered, c.SortKey)

	total := len(filtered)
	start := (c.Page - 1) * c.PageSize
	end := start + c.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &Page{
		Items:      filtered[start:end],
		TotalCount: total,
		Page:       c.Page,
		PageSize:   c.PageSize,
		HasMore:    c.Page*c.PageSize < total,
	}, nil
}

func matchCategory(t domain.TemplateSummary, category string) bool {
	if category == "" || strings.EqualFold(category, domain.CategoryAll) {
		return true
	}
	return strings.EqualFold(string(t.Category), category)
}

func matchSearch(t domain.TemplateSummary, search string) bool {
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), search) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func sortTemplates(ts []domain.TemplateSummary, key SortKey) {
	switch key {
	case SortNewest:
		sort.SliceStable(ts, func(i, j int) bool { return ts[i].CreatedAt.After(ts[j].CreatedAt) })
	case SortPopular:
		sort.SliceStable(ts, func(i, j int) bool { return ts[i].Downloads > ts[j].Downloads })
	case SortRating:
		sort.SliceStable(ts, func(i, j int) bool { return ts[i].Rating > ts[j].Rating })
	case SortPriceAsc:
		sort.SliceStable(ts, func(i, j int) bool { return ts[i].Price < ts[j].Price })
	case SortPriceDesc:
		sort.SliceStable(ts, func(i, j int) bool { return ts[i].Price > ts[j].Price })
	}
}

// Featured returns the storefront's featured slice. Featured is defined as
// the trending templates in source order, capped at limit; rating plays no
// part in the selection.
func Featured(collection []domain.TemplateSummary, limit int) []domain.TemplateSummary {
	return Trending(collection, limit)
}

// Trending returns up to limit trending templates in source order.
func Trending(collection []domain.TemplateSummary, limit int) []domain.TemplateSummary {
	out := make([]domain.TemplateSummary, 0, limit)
	for _, t := range collection {
		if !t.IsTrending {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Overview aggregates display counters for the dashboard endpoint.
type Overview struct {
	TemplateCount  int            `json:"template_count"`
	TotalDownloads int            `json:"total_downloads"`
	ByCategory     map[string]int `json:"by_category"`
	TrendingCount  int            `json:"trending_count"`
	FreeCount      int            `json:"free_count"`
}

// Summarize computes catalog overview counters in one pass.
func Summarize(collection []domain.TemplateSummary) Overview {
	ov := Overview{ByCategory: make(map[string]int)}
	for _, t := range collection {
		ov.TemplateCount++
		ov.TotalDownloads += t.Downloads
		ov.ByCategory[string(t.Category)]++
		if t.IsTrending {
			ov.TrendingCount++
		}
		if t.IsFree {
			ov.FreeCount++
		}
	}
	return ov
}

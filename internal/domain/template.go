package domain

import (
	"fmt"
	"time"
)

// TemplateCategory enumerates supported catalog categories.
type TemplateCategory string

const (
	CategoryWeb     TemplateCategory = "Web"
	CategoryFlutter TemplateCategory = "Flutter"
	CategoryAndroid TemplateCategory = "Android"
	CategoryUIKit   TemplateCategory = "UI Kit"
)

// CategoryAll is the sentinel criteria value meaning "no category filter".
const CategoryAll = "all"

// Valid reports whether the category is one of the known values.
func (c TemplateCategory) Valid() bool {
	switch c {
	case CategoryWeb, CategoryFlutter, CategoryAndroid, CategoryUIKit:
		return true
	}
	return false
}

// TemplateSummary is an immutable catalog record. The catalog engine only
// reads these; mutation belongs to the seller upload workflow.
type TemplateSummary struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Price         int              `json:"price"` // whole units in the reference currency
	OriginalPrice int              `json:"original_price,omitempty"`
	Category      TemplateCategory `json:"category"`
	Rating        float64          `json:"rating"`
	Downloads     int              `json:"downloads"`
	Tags          []string         `json:"tags"`
	IsPremium     bool             `json:"is_premium"`
	IsFree        bool             `json:"is_free"`
	IsTrending    bool             `json:"is_trending"`
	IsNew         bool             `json:"is_new"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	OwnerID       string           `json:"owner_id"`
}

// Validate checks the record invariants. Records violating them must not
// enter the catalog.
func (t TemplateSummary) Validate() error {
	if t.ID == "" {
		return NewValidationError("id", "required")
	}
	if t.Price < 0 {
		return NewValidationError("price", "must be non-negative")
	}
	if t.OriginalPrice != 0 && t.OriginalPrice < t.Price {
		return NewValidationError("original_price", "must be >= price")
	}
	if !t.Category.Valid() {
		return NewValidationError("category", fmt.Sprintf("unknown category %q", t.Category))
	}
	if t.Rating < 0 || t.Rating > 5 {
		return NewValidationError("rating", "must be within [0, 5]")
	}
	if t.Downloads < 0 {
		return NewValidationError("downloads", "must be non-negative")
	}
	if t.IsPremium && t.IsFree {
		return NewValidationError("is_premium", "premium and free are mutually exclusive")
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return NewValidationError("updated_at", "must not precede created_at")
	}
	return nil
}

// Package memory provides in-process repository implementations used when the
// service runs without a database, and as seams in tests.
package memory

import (
	"context"
	"sync"

	"celora/internal/domain"
)

var _ domain.TemplateRepository = (*TemplateRepository)(nil)

// TemplateRepository serves a fixed collection from memory.
type TemplateRepository struct {
	mu        sync.RWMutex
	templates []domain.TemplateSummary
}

// NewTemplateRepository creates a repository over the given collection.
func NewTemplateRepository(templates []domain.TemplateSummary) *TemplateRepository {
	return &TemplateRepository{templates: templates}
}

// List returns a copy of the collection so callers cannot mutate it.
func (r *TemplateRepository) List(ctx context.Context) ([]domain.TemplateSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.TemplateSummary, len(r.templates))
	copy(out, r.templates)
	return out, nil
}

// GetByID fetches a single record.
func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*domain.TemplateSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.templates {
		if t.ID == id {
			tpl := t
			return &tpl, nil
		}
	}
	return nil, domain.ErrNotFound
}

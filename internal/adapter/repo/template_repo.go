package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"celora/internal/domain"
	"celora/internal/infra"
	"celora/internal/sqlinline"
)

var _ domain.TemplateRepository = (*TemplateRepositoryPG)(nil)

// TemplateRepositoryPG implements domain.TemplateRepository backed by PostgreSQL.
type TemplateRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewTemplateRepository creates a new TemplateRepositoryPG.
func NewTemplateRepository(sql infra.SQLExecutor) *TemplateRepositoryPG {
	return &TemplateRepositoryPG{sql: sql}
}

// List returns the full collection in stored position order, which the query
// engine relies on for stable tie-breaks.
func (r *TemplateRepositoryPG) List(ctx context.Context) ([]domain.TemplateSummary, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListTemplates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TemplateSummary
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *tpl)
	}
	return out, rows.Err()
}

// GetByID fetches a single record.
func (r *TemplateRepositoryPG) GetByID(ctx context.Context, id string) (*domain.TemplateSummary, error) {
	return scanTemplate(r.sql.QueryRow(ctx, sqlinline.QSelectTemplateByID, id))
}

// Upsert writes one record at the given collection position. Used by the
// seed command.
func (r *TemplateRepositoryPG) Upsert(ctx context.Context, tpl domain.TemplateSummary, position int) error {
	_, err := r.sql.Exec(ctx, sqlinline.QUpsertTemplate,
		tpl.ID, tpl.Title, tpl.Description, tpl.Price, tpl.OriginalPrice, tpl.Category,
		tpl.Rating, tpl.Downloads, tpl.Tags, tpl.IsPremium, tpl.IsFree, tpl.IsTrending,
		tpl.IsNew, tpl.CreatedAt, tpl.UpdatedAt, tpl.OwnerID, position,
	)
	return err
}

func scanTemplate(row pgx.Row) (*domain.TemplateSummary, error) {
	var t domain.TemplateSummary
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.OriginalPrice, &t.Category,
		&t.Rating, &t.Downloads, &t.Tags, &t.IsPremium, &t.IsFree, &t.IsTrending, &t.IsNew,
		&t.CreatedAt, &t.UpdatedAt, &t.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

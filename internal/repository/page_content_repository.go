package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rootandbloom/garden-center/internal/model"
)

// ErrPageContentNotFound indicates that a content block was not located.
var ErrPageContentNotFound = errors.New("page content not found")

// PageContentRepo manages persistence for per-page content blocks.
type PageContentRepo struct {
	db *sql.DB
}

// NewPageContentRepo constructs a PageContentRepo with the given DB handle.
func NewPageContentRepo(db *sql.DB) *PageContentRepo {
	return &PageContentRepo{db: db}
}

const pageContentColumns = `id, page, section, content_type, content, image_url, sort_order`

func scanPageContent(row interface{ Scan(...any) error }, p *model.PageContent) error {
	return row.Scan(&p.ID, &p.Page, &p.Section, &p.ContentType, &p.Content, &p.ImageURL, &p.Order)
}

// ListAll returns every content block grouped by page then sort order,
// which is how the admin dashboard presents them.
func (r *PageContentRepo) ListAll(ctx context.Context) ([]model.PageContent, error) {
	return r.list(ctx, `SELECT `+pageContentColumns+` FROM page_content ORDER BY page ASC, sort_order ASC, id ASC`)
}

// ListByPage returns the content blocks for a single page in sort order.
// An unknown page simply yields an empty slice; the storefront falls
// back to its static copy.
func (r *PageContentRepo) ListByPage(ctx context.Context, page string) ([]model.PageContent, error) {
	const q = `SELECT ` + pageContentColumns + ` FROM page_content WHERE page = ? ORDER BY sort_order ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.PageContent
	for rows.Next() {
		var p model.PageContent
		if err := scanPageContent(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PageContentRepo) list(ctx context.Context, q string) ([]model.PageContent, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.PageContent
	for rows.Next() {
		var p model.PageContent
		if err := scanPageContent(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new content block and assigns the generated ID.
func (r *PageContentRepo) Create(ctx context.Context, p *model.PageContent) error {
	const q = `INSERT INTO page_content (page, section, content_type, content, image_url, sort_order)
               VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Page, p.Section, p.ContentType, p.Content, p.ImageURL, p.Order)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// Update replaces all editable fields of a content block. It returns
// ErrPageContentNotFound when the row does not exist.
func (r *PageContentRepo) Update(ctx context.Context, p *model.PageContent) error {
	const q = `UPDATE page_content
               SET page = ?, section = ?, content_type = ?, content = ?, image_url = ?, sort_order = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, p.Page, p.Section, p.ContentType, p.Content, p.ImageURL, p.Order, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM page_content WHERE id = ? LIMIT 1`, p.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrPageContentNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a content block by ID, returning ErrPageContentNotFound
// when no row was deleted.
func (r *PageContentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM page_content WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPageContentNotFound
	}
	return nil
}

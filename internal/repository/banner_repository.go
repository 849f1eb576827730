package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rootandbloom/garden-center/internal/model"
)

// ErrBannerNotFound indicates that a banner was not located in the DB.
var ErrBannerNotFound = errors.New("banner not found")

// BannerRepo manages persistence for announcement banners.
type BannerRepo struct {
	db *sql.DB
}

// NewBannerRepo constructs a BannerRepo with the given DB handle.
func NewBannerRepo(db *sql.DB) *BannerRepo {
	return &BannerRepo{db: db}
}

const bannerColumns = `id, title, message, type, is_active, start_date, end_date, sort_order`

func scanBanner(row interface{ Scan(...any) error }, b *model.Banner) error {
	return row.Scan(&b.ID, &b.Title, &b.Message, &b.Type, &b.IsActive,
		&b.StartDate, &b.EndDate, &b.Order)
}

// ListAll returns every banner ordered by sort position. Visibility
// filtering is a derived property applied by callers, not the query, so
// the admin list and the public list share this method.
func (r *BannerRepo) ListAll(ctx context.Context) ([]model.Banner, error) {
	const q = `SELECT ` + bannerColumns + ` FROM banners ORDER BY sort_order ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Banner
	for rows.Next() {
		var b model.Banner
		if err := scanBanner(rows, &b); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a banner by its ID, returning ErrBannerNotFound when
// there is no matching row.
func (r *BannerRepo) GetByID(ctx context.Context, id uint64) (*model.Banner, error) {
	const q = `SELECT ` + bannerColumns + ` FROM banners WHERE id = ?`
	var b model.Banner
	if err := scanBanner(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a new banner and assigns the generated ID back to the
// struct.
func (r *BannerRepo) Create(ctx context.Context, b *model.Banner) error {
	const q = `INSERT INTO banners (title, message, type, is_active, start_date, end_date, sort_order)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		b.Title, b.Message, b.Type, b.IsActive, b.StartDate, b.EndDate, b.Order)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// Update replaces all editable fields of a banner. It returns
// ErrBannerNotFound when the row does not exist.
func (r *BannerRepo) Update(ctx context.Context, b *model.Banner) error {
	const q = `UPDATE banners
               SET title = ?, message = ?, type = ?, is_active = ?, start_date = ?, end_date = ?, sort_order = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		b.Title, b.Message, b.Type, b.IsActive, b.StartDate, b.EndDate, b.Order, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM banners WHERE id = ? LIMIT 1`, b.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBannerNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a banner by ID, returning ErrBannerNotFound when no row
// was deleted.
func (r *BannerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM banners WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBannerNotFound
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rootandbloom/garden-center/internal/model"
)

// SettingsRepo manages the singleton `settings` row. There is exactly one
// row with id=1; Get tolerates its absence by returning zero-value
// settings so a fresh database still serves the public site.
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo constructs a SettingsRepo with the given DB handle.
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

const settingsRowID = 1

// Get returns the store settings. A missing row is not an error: the
// caller receives empty settings, matching the read-side tolerance the
// storefront expects.
func (r *SettingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	const q = `SELECT id, store_name, tagline, address, phone, email, facebook, instagram,
                      use_picktime, picktime_url, updated_at
               FROM settings WHERE id = ?`
	var s model.Settings
	err := r.db.QueryRowContext(ctx, q, settingsRowID).Scan(
		&s.ID, &s.StoreName, &s.Tagline, &s.Address, &s.Phone, &s.Email,
		&s.Facebook, &s.Instagram, &s.UsePicktime, &s.PicktimeURL, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.Settings{ID: settingsRowID}, nil
		}
		return nil, err
	}
	return &s, nil
}

// Update writes the settings row, creating it when the database is fresh.
// The singleton is only ever read or replaced whole, so an upsert keeps
// the API a plain PUT.
func (r *SettingsRepo) Update(ctx context.Context, s *model.Settings) error {
	const q = `INSERT INTO settings
                 (id, store_name, tagline, address, phone, email, facebook, instagram, use_picktime, picktime_url)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
               ON DUPLICATE KEY UPDATE
                 store_name = VALUES(store_name), tagline = VALUES(tagline),
                 address = VALUES(address), phone = VALUES(phone), email = VALUES(email),
                 facebook = VALUES(facebook), instagram = VALUES(instagram),
                 use_picktime = VALUES(use_picktime), picktime_url = VALUES(picktime_url),
                 updated_at = CURRENT_TIMESTAMP`
	_, err := r.db.ExecContext(ctx, q,
		settingsRowID, s.StoreName, s.Tagline, s.Address, s.Phone, s.Email,
		s.Facebook, s.Instagram, s.UsePicktime, s.PicktimeURL,
	)
	if err != nil {
		return err
	}
	s.ID = settingsRowID
	return nil
}

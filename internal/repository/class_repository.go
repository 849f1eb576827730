// Package repository contains data access logic for the storefront
// entities. This file covers classes. A Class is a bookable workshop
// looked up publicly by slug; its available_seats column is maintained
// transactionally by the registration repository.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rootandbloom/garden-center/internal/model"
)

// ErrClassNotFound indicates that a class was not located in the DB.
var ErrClassNotFound = errors.New("class not found")

// ErrSlugExists indicates a create/update collided with an existing slug.
var ErrSlugExists = errors.New("slug already exists")

// ClassRepo manages persistence for classes.
type ClassRepo struct {
	db *sql.DB
}

// NewClassRepo constructs a ClassRepo with the given DB handle.
func NewClassRepo(db *sql.DB) *ClassRepo {
	return &ClassRepo{db: db}
}

const classColumns = `id, slug, title, description, long_description, instructor, image_url,
                      class_date, class_time, duration, price, max_seats, available_seats,
                      is_featured, is_active, materials, prerequisites, created_at, updated_at`

// scanClass reads one row into a Class, decoding the materials JSON
// column. An empty column yields a nil slice.
func scanClass(row interface{ Scan(...any) error }, c *model.Class) error {
	var materials string
	err := row.Scan(&c.ID, &c.Slug, &c.Title, &c.Description, &c.LongDescription,
		&c.Instructor, &c.ImageURL, &c.Date, &c.Time, &c.Duration, &c.Price,
		&c.MaxSeats, &c.AvailableSeats, &c.IsFeatured, &c.IsActive,
		&materials, &c.Prerequisites, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}
	if materials != "" && materials != "null" {
		if err := json.Unmarshal([]byte(materials), &c.Materials); err != nil {
			return err
		}
	}
	return nil
}

func encodeMaterials(m []string) (string, error) {
	if len(m) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ListAll returns every class ordered by date then title. The admin
// dashboard uses this; the public list filters with ListActive.
func (r *ClassRepo) ListAll(ctx context.Context) ([]model.Class, error) {
	return r.list(ctx, `SELECT `+classColumns+` FROM classes ORDER BY class_date ASC, title ASC`)
}

// ListActive returns classes visible to the public storefront.
func (r *ClassRepo) ListActive(ctx context.Context) ([]model.Class, error) {
	return r.list(ctx, `SELECT `+classColumns+` FROM classes WHERE is_active = 1 ORDER BY class_date ASC, title ASC`)
}

func (r *ClassRepo) list(ctx context.Context, q string) ([]model.Class, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Class
	for rows.Next() {
		var c model.Class
		if err := scanClass(rows, &c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a class by primary key, returning ErrClassNotFound
// when there is no matching row.
func (r *ClassRepo) GetByID(ctx context.Context, id uint64) (*model.Class, error) {
	const q = `SELECT ` + classColumns + ` FROM classes WHERE id = ?`
	var c model.Class
	if err := scanClass(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetBySlug retrieves a class by its public slug.
func (r *ClassRepo) GetBySlug(ctx context.Context, slug string) (*model.Class, error) {
	const q = `SELECT ` + classColumns + ` FROM classes WHERE slug = ?`
	var c model.Class
	if err := scanClass(r.db.QueryRowContext(ctx, q, slug), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new class and reads the row back so DB-default fields
// (timestamps) are populated. Slug collisions surface as ErrSlugExists.
func (r *ClassRepo) Create(ctx context.Context, c *model.Class) error {
	materials, err := encodeMaterials(c.Materials)
	if err != nil {
		return err
	}
	const q = `INSERT INTO classes
                 (slug, title, description, long_description, instructor, image_url,
                  class_date, class_time, duration, price, max_seats, available_seats,
                  is_featured, is_active, materials, prerequisites)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		c.Slug, c.Title, c.Description, c.LongDescription, c.Instructor, c.ImageURL,
		c.Date, c.Time, c.Duration, c.Price, c.MaxSeats, c.AvailableSeats,
		c.IsFeatured, c.IsActive, materials, c.Prerequisites)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrSlugExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	const sel = `SELECT ` + classColumns + ` FROM classes WHERE id = ?`
	return scanClass(r.db.QueryRowContext(ctx, sel, c.ID), c)
}

// Update replaces all editable fields of a class. AvailableSeats is
// included: staff may correct it manually, and the registration flow
// keeps it consistent otherwise. Returns ErrClassNotFound for a missing
// row and ErrSlugExists on a slug collision.
func (r *ClassRepo) Update(ctx context.Context, c *model.Class) error {
	materials, err := encodeMaterials(c.Materials)
	if err != nil {
		return err
	}
	const q = `UPDATE classes
               SET slug = ?, title = ?, description = ?, long_description = ?, instructor = ?,
                   image_url = ?, class_date = ?, class_time = ?, duration = ?, price = ?,
                   max_seats = ?, available_seats = ?, is_featured = ?, is_active = ?,
                   materials = ?, prerequisites = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		c.Slug, c.Title, c.Description, c.LongDescription, c.Instructor, c.ImageURL,
		c.Date, c.Time, c.Duration, c.Price, c.MaxSeats, c.AvailableSeats,
		c.IsFeatured, c.IsActive, materials, c.Prerequisites, c.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrSlugExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM classes WHERE id = ? LIMIT 1`, c.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrClassNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a class provided no registrations reference it. The
// check and delete run in one transaction so a registration arriving
// mid-delete cannot be orphaned. Returns ErrClassNotFound for a missing
// row and ErrConflict when registrations exist.
func (r *ClassRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM classes WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrClassNotFound
		}
		return err
	}
	var regCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE class_id = ?`, id).Scan(&regCount); err != nil {
		return err
	}
	if regCount > 0 {
		err = ErrConflict
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM classes WHERE id = ?`, id)
	return err
}

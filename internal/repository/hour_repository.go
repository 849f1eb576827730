package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rootandbloom/garden-center/internal/model"
)

// ErrHourNotFound indicates that an hours row was not located in the DB.
var ErrHourNotFound = errors.New("hour not found")

// HourRepo manages persistence for store hours. Regular weekday rows and
// special-date overrides share the `hours` table; the variant fields are
// stored as empty strings when unused so scanning stays simple.
type HourRepo struct {
	db *sql.DB
}

// NewHourRepo constructs an HourRepo with the given DB handle.
func NewHourRepo(db *sql.DB) *HourRepo {
	return &HourRepo{db: db}
}

const hourColumns = `id, day_of_week, open_time, close_time, is_closed, is_special, special_date, special_note`

func scanHour(row interface{ Scan(...any) error }, h *model.Hour) error {
	return row.Scan(&h.ID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime,
		&h.IsClosed, &h.IsSpecial, &h.SpecialDate, &h.SpecialNote)
}

// ListAll returns every hours row, regular rows first in weekday order,
// then special dates chronologically. The ordering is what the public
// hours page renders directly.
func (r *HourRepo) ListAll(ctx context.Context) ([]model.Hour, error) {
	const q = `SELECT ` + hourColumns + `
               FROM hours
               ORDER BY is_special ASC,
                        FIELD(day_of_week, 'Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'),
                        special_date ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Hour
	for rows.Next() {
		var h model.Hour
		if err := scanHour(rows, &h); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a single hours row. It returns ErrHourNotFound when
// no matching row exists.
func (r *HourRepo) GetByID(ctx context.Context, id uint64) (*model.Hour, error) {
	const q = `SELECT ` + hourColumns + ` FROM hours WHERE id = ?`
	var h model.Hour
	if err := scanHour(r.db.QueryRowContext(ctx, q, id), &h); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHourNotFound
		}
		return nil, err
	}
	return &h, nil
}

// Create inserts a new hours row and assigns the generated ID back to the
// struct.
func (r *HourRepo) Create(ctx context.Context, h *model.Hour) error {
	const q = `INSERT INTO hours (day_of_week, open_time, close_time, is_closed, is_special, special_date, special_note)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsClosed, h.IsSpecial, h.SpecialDate, h.SpecialNote)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	return nil
}

// Update replaces all editable fields of an hours row. It returns
// ErrHourNotFound when the row does not exist.
func (r *HourRepo) Update(ctx context.Context, h *model.Hour) error {
	const q = `UPDATE hours
               SET day_of_week = ?, open_time = ?, close_time = ?, is_closed = ?,
                   is_special = ?, special_date = ?, special_note = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsClosed, h.IsSpecial, h.SpecialDate, h.SpecialNote, h.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "row missing" from "values identical".
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM hours WHERE id = ? LIMIT 1`, h.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrHourNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes an hours row by ID. It returns ErrHourNotFound when no
// row was deleted.
func (r *HourRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hours WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHourNotFound
	}
	return nil
}

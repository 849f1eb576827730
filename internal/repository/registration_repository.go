package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rootandbloom/garden-center/internal/model"
)

// Sentinel errors for registration operations.
var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNoSeats              = errors.New("not enough seats available")
	ErrClassInactive        = errors.New("class is not open for registration")
)

// RegistrationRepo manages registrations and the seat accounting on the
// classes they book. Creation and status transitions run in transactions
// because they touch both tables: a registration reserves seats when it is
// created and releases them when it is cancelled.
type RegistrationRepo struct {
	db *sql.DB
}

// NewRegistrationRepo constructs a RegistrationRepo with the given DB handle.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo {
	return &RegistrationRepo{db: db}
}

const registrationColumns = `id, class_id, class_name, class_date, name, email, phone,
                             seats, notes, status, created_at, updated_at`

func scanRegistration(row interface{ Scan(...any) error }, reg *model.Registration) error {
	return row.Scan(&reg.ID, &reg.ClassID, &reg.ClassName, &reg.ClassDate,
		&reg.Name, &reg.Email, &reg.Phone, &reg.Seats, &reg.Notes, &reg.Status,
		&reg.CreatedAt, &reg.UpdatedAt)
}

// ListAll returns every registration, newest first, for the dashboard.
func (r *RegistrationRepo) ListAll(ctx context.Context) ([]model.Registration, error) {
	const q = `SELECT ` + registrationColumns + ` FROM registrations ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := scanRegistration(rows, &reg); err != nil {
			return nil, err
		}
		result = append(result, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a registration by its ID.
func (r *RegistrationRepo) GetByID(ctx context.Context, id uint64) (*model.Registration, error) {
	const q = `SELECT ` + registrationColumns + ` FROM registrations WHERE id = ?`
	var reg model.Registration
	if err := scanRegistration(r.db.QueryRowContext(ctx, q, id), &reg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// Create inserts a pending registration and decrements the class's
// available seats in one transaction. The guarded UPDATE makes the seat
// check atomic: if another registration takes the last seats first, zero
// rows are affected and the insert never happens.
func (r *RegistrationRepo) Create(ctx context.Context, reg *model.Registration) error {
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

	var (
		title    string
		date     string
		isActive bool
	)
	err = tx.QueryRowContext(ctx,
		`SELECT title, class_date, is_active FROM classes WHERE id = ?`, reg.ClassID,
	).Scan(&title, &date, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrClassNotFound
		}
		return err
	}
	if !isActive {
		err = ErrClassInactive
		return err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE classes SET available_seats = available_seats - ? WHERE id = ? AND available_seats >= ?`,
		reg.Seats, reg.ClassID, reg.Seats)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNoSeats
		return err
	}

	reg.ClassName = title
	reg.ClassDate = date
	reg.Status = model.RegistrationPending
	ins, err := tx.ExecContext(ctx,
		`INSERT INTO registrations (class_id, class_name, class_date, name, email, phone, seats, notes, status)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.ClassID, reg.ClassName, reg.ClassDate, reg.Name, reg.Email, reg.Phone,
		reg.Seats, reg.Notes, reg.Status)
	if err != nil {
		return err
	}
	id, err := ins.LastInsertId()
	if err != nil {
		return err
	}
	reg.ID = uint64(id)
	const sel = `SELECT ` + registrationColumns + ` FROM registrations WHERE id = ?`
	err = scanRegistration(tx.QueryRowContext(ctx, sel, reg.ID), reg)
	return err
}

// UpdateStatus transitions a registration's lifecycle state. Cancelling a
// registration releases its seats back to the class; moving out of
// cancelled takes them again, failing with ErrNoSeats when the class has
// since filled up.
func (r *RegistrationRepo) UpdateStatus(ctx context.Context, id uint64, status string) (*model.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var reg model.Registration
	const sel = `SELECT ` + registrationColumns + ` FROM registrations WHERE id = ? FOR UPDATE`
	if err := scanRegistration(tx.QueryRowContext(ctx, sel, id), &reg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	if reg.Status == status {
		committed = true
		_ = tx.Commit()
		return &reg, nil
	}

	wasCancelled := reg.Status == model.RegistrationCancelled
	willBeCancelled := status == model.RegistrationCancelled
	if !wasCancelled && willBeCancelled {
		if _, err := tx.ExecContext(ctx,
			`UPDATE classes SET available_seats = LEAST(available_seats + ?, max_seats) WHERE id = ?`,
			reg.Seats, reg.ClassID); err != nil {
			return nil, err
		}
	} else if wasCancelled && !willBeCancelled {
		res, err := tx.ExecContext(ctx,
			`UPDATE classes SET available_seats = available_seats - ? WHERE id = ? AND available_seats >= ?`,
			reg.Seats, reg.ClassID, reg.Seats)
		if err != nil {
			return nil, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, ErrNoSeats
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE registrations SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id); err != nil {
		return nil, err
	}
	const reread = `SELECT ` + registrationColumns + ` FROM registrations WHERE id = ?`
	if err := scanRegistration(tx.QueryRowContext(ctx, reread, id), &reg); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return &reg, nil
}

// Delete removes a registration. A non-cancelled registration still holds
// seats, so deleting it releases them, mirroring a cancellation.
func (r *RegistrationRepo) Delete(ctx context.Context, id uint64) error {
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

	var reg model.Registration
	const sel = `SELECT ` + registrationColumns + ` FROM registrations WHERE id = ? FOR UPDATE`
	if err = scanRegistration(tx.QueryRowContext(ctx, sel, id), &reg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrRegistrationNotFound
		}
		return err
	}
	if reg.Status != model.RegistrationCancelled {
		if _, err = tx.ExecContext(ctx,
			`UPDATE classes SET available_seats = LEAST(available_seats + ?, max_seats) WHERE id = ?`,
			reg.Seats, reg.ClassID); err != nil {
			return err
		}
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	return err
}

package repository

import (
	"context"
	"database/sql"

	"github.com/rootandbloom/garden-center/internal/model"
)

// ContactRepo stores public contact-form submissions for later review.
type ContactRepo struct {
	db *sql.DB
}

// NewContactRepo constructs a ContactRepo with the given DB handle.
func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Create inserts a contact message and assigns the generated ID.
func (r *ContactRepo) Create(ctx context.Context, m *model.ContactMessage) error {
	const q = `INSERT INTO contact_messages (name, email, phone, subject, message)
               VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Email, m.Phone, m.Subject, m.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

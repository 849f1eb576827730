package model

import "time"

// Staff roles. Both roles may use the dashboard; role is carried in the
// JWT so future endpoints can tighten access without schema changes.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User represents a dashboard account in the `users` table. The json
// tags cover only the fields that are safe to expose; the password hash
// is never serialized.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique login email.
//  Name         – display name shown in the dashboard.
//  PasswordHash – bcrypt hashed password.
//  Role         – ADMIN or STAFF.
//  IsActive     – whether the account may log in.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id,string"` // users.id
	Email        string    `json:"email"`     // users.email
	Name         string    `json:"name"`      // users.name
	PasswordHash string    `json:"-"`         // users.password_hash
	Role         string    `json:"role"`      // users.role
	IsActive     bool      `json:"-"`         // users.is_active
	CreatedAt    time.Time `json:"-"`         // users.created_at
	UpdatedAt    time.Time `json:"-"`         // users.updated_at
}

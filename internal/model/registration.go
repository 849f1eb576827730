package model

import (
	"errors"
	"time"
)

// Registration lifecycle states. New registrations start as pending;
// staff either confirm or cancel them from the dashboard.
const (
	RegistrationPending   = "pending"
	RegistrationConfirmed = "confirmed"
	RegistrationCancelled = "cancelled"
)

// Seat limits for a single registration.
const (
	MinSeatsPerRegistration = 1
	MaxSeatsPerRegistration = 10
)

// Registration records a seat reservation request against a Class. It is
// created by the public registration flow and afterwards only has its
// status changed (or is deleted) by staff. ClassName and ClassDate are
// denormalized from the class at creation time so the dashboard list and
// notification events survive later class edits.
//
// Fields:
//  ID        – primary key identifier.
//  ClassID   – class being booked.
//  ClassName – class title at the time of registration.
//  ClassDate – class date at the time of registration.
//  Name      – customer name.
//  Email     – customer email.
//  Phone     – customer phone.
//  Seats     – number of seats requested (1..10).
//  Notes     – free-text notes from the customer.
//  Status    – pending, confirmed or cancelled.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Registration struct {
	ID        uint64    `json:"id,string"`       // registrations.id
	ClassID   uint64    `json:"classId,string"`  // registrations.class_id
	ClassName string    `json:"className"`       // registrations.class_name
	ClassDate string    `json:"classDate"`       // registrations.class_date
	Name      string    `json:"name"`            // registrations.name
	Email     string    `json:"email"`           // registrations.email
	Phone     string    `json:"phone"`           // registrations.phone
	Seats     int       `json:"seats"`           // registrations.seats
	Notes     string    `json:"notes,omitempty"` // registrations.notes
	Status    string    `json:"status"`          // registrations.status
	CreatedAt time.Time `json:"createdAt"`       // registrations.created_at
	UpdatedAt time.Time `json:"updatedAt"`       // registrations.updated_at
}

// ErrBadSeatCount indicates the requested seat count is outside 1..10.
var ErrBadSeatCount = errors.New("seats must be between 1 and 10")

// ErrBadStatus indicates an unknown registration lifecycle state.
var ErrBadStatus = errors.New("status must be pending, confirmed or cancelled")

// ValidRegistrationStatus reports whether s is a known lifecycle state.
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationPending, RegistrationConfirmed, RegistrationCancelled:
		return true
	}
	return false
}

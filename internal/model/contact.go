package model

import (
	"errors"
	"strings"
	"time"
)

// ContactMessage is a submission from the public contact form, stored in
// the `contact_messages` table so staff can review them later. Honeypot
// is a hidden form field; bots that fill it are silently dropped.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – sender name.
//  Email     – sender email.
//  Phone     – optional phone number.
//  Subject   – message subject.
//  Message   – message body.
//  Honeypot  – spam trap; must be empty for real submissions.
//  CreatedAt – creation timestamp.
type ContactMessage struct {
	ID        uint64    `json:"id,string"`          // contact_messages.id
	Name      string    `json:"name"`               // contact_messages.name
	Email     string    `json:"email"`              // contact_messages.email
	Phone     string    `json:"phone,omitempty"`    // contact_messages.phone
	Subject   string    `json:"subject"`            // contact_messages.subject
	Message   string    `json:"message"`            // contact_messages.message
	Honeypot  string    `json:"honeypot,omitempty"` // never stored; spam trap
	CreatedAt time.Time `json:"createdAt"`          // contact_messages.created_at
}

// ErrContactIncomplete indicates a required contact form field is missing.
var ErrContactIncomplete = errors.New("name, email, subject and message are required")

// Validate checks required fields. The honeypot is checked separately by
// the handler so spam can be acknowledged without an error.
func (m *ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" ||
		strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Subject) == "" ||
		strings.TrimSpace(m.Message) == "" {
		return ErrContactIncomplete
	}
	return nil
}

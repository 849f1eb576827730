// Package queue defines message payloads exchanged over the message broker.
package queue

// RegistrationReceivedEvent is published when a class registration is
// created or has its status changed by staff. It carries enough context
// for downstream consumers to notify or log without querying the primary
// database.
type RegistrationReceivedEvent struct {
	RegistrationID uint64 `json:"registration_id"`
	ClassID        uint64 `json:"class_id"`
	ClassName      string `json:"class_name"`
	ClassDate      string `json:"class_date"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	Seats          int    `json:"seats"`
	Status         string `json:"status"`
	OccurredAt     string `json:"occurred_at"`
}

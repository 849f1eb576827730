package client

import "github.com/rootandbloom/garden-center/internal/model"

// The entity shapes on the wire are the shared model types; this file
// holds the request payloads that exist only on the client side.

// loginRequest is the body of POST /v1/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authPayload is the canonical shape of a login response, whether the
// server wrapped it in the envelope or answered flat.
type authPayload struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// RegistrationRequest is the public class booking payload. ClassID is the
// opaque string identifier from a fetched Class.
type RegistrationRequest struct {
	ClassID string `json:"classId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Seats   int    `json:"seats"`
	Notes   string `json:"notes,omitempty"`
}

// Admin collection paths used by the mutation stores.
const (
	bannersPath       = "/v1/admin/banners"
	classesPath       = "/v1/admin/classes"
	hoursPath         = "/v1/admin/hours"
	pageContentPath   = "/v1/admin/page-content"
	registrationsPath = "/v1/admin/registrations"
)

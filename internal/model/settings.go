package model

import (
	"errors"
	"net/url"
	"time"
)

// Settings represents the single store-wide configuration row in the
// `settings` table. It is a singleton resource: the server keeps exactly
// one row (id=1) and the API supports only reading and updating it,
// never creating or deleting it.
//
// The UsePicktime flag controls whether class booking delegates to an
// external booking widget. When it is set, PicktimeURL should contain an
// absolute URL; this is enforced when the settings are edited, not when
// they are read, so the public side must tolerate a missing URL.
//
// Fields:
//  ID          – primary key (always 1).
//  StoreName   – display name of the store.
//  Tagline     – short marketing line shown under the store name.
//  Address     – street address shown on the contact page.
//  Phone       – public phone number.
//  Email       – public contact email.
//  Facebook    – optional Facebook page URL.
//  Instagram   – optional Instagram profile URL.
//  UsePicktime – whether class booking goes through the Picktime widget.
//  PicktimeURL – absolute URL of the Picktime booking page.
//  UpdatedAt   – timestamp of the last update.
type Settings struct {
	ID          uint64    `json:"-"`                     // settings.id (always 1)
	StoreName   string    `json:"storeName"`             // settings.store_name
	Tagline     string    `json:"tagline"`               // settings.tagline
	Address     string    `json:"address"`               // settings.address
	Phone       string    `json:"phone"`                 // settings.phone
	Email       string    `json:"email"`                 // settings.email
	Facebook    string    `json:"facebook,omitempty"`    // settings.facebook
	Instagram   string    `json:"instagram,omitempty"`   // settings.instagram
	UsePicktime bool      `json:"usePicktime"`           // settings.use_picktime
	PicktimeURL string    `json:"picktimeUrl,omitempty"` // settings.picktime_url
	UpdatedAt   time.Time `json:"-"`                     // settings.updated_at
}

// ErrPicktimeURLRequired indicates that UsePicktime was enabled without a
// usable booking URL.
var ErrPicktimeURLRequired = errors.New("picktime url must be a valid absolute url when booking is delegated")

// Validate checks the edit-boundary invariant: delegated booking needs an
// absolute Picktime URL. Reads never call this; a missing URL on the read
// side simply falls back to empty.
func (s *Settings) Validate() error {
	if s.StoreName == "" {
		return errors.New("store name is required")
	}
	if s.UsePicktime {
		u, err := url.Parse(s.PicktimeURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return ErrPicktimeURLRequired
		}
	}
	return nil
}

package model

import "time"

// Banner types accepted by the API. Seasonal banners are styled
// differently by the storefront but behave the same otherwise.
const (
	BannerInfo     = "info"
	BannerWarning  = "warning"
	BannerSuccess  = "success"
	BannerSeasonal = "seasonal"
)

// Banner represents a timed announcement row in the `banners` table.
// Visibility is a derived property, never stored: a banner shows when it
// is active and the current date falls inside its optional window.
//
// Fields:
//  ID        – primary key identifier.
//  Title     – short headline.
//  Message   – body text of the announcement.
//  Type      – one of info, warning, success, seasonal.
//  IsActive  – master switch; inactive banners never show.
//  StartDate – optional first day the banner shows ("2006-01-02").
//  EndDate   – optional last day the banner shows ("2006-01-02").
//  Order     – sort position among simultaneously visible banners.
type Banner struct {
	ID        uint64 `json:"id,string"`           // banners.id
	Title     string `json:"title"`               // banners.title
	Message   string `json:"message"`             // banners.message
	Type      string `json:"type"`                // banners.type
	IsActive  bool   `json:"isActive"`            // banners.is_active
	StartDate string `json:"startDate,omitempty"` // banners.start_date
	EndDate   string `json:"endDate,omitempty"`   // banners.end_date
	Order     int    `json:"order"`               // banners.sort_order
}

// bannerDateLayout is how banner window bounds travel on the wire.
const bannerDateLayout = "2006-01-02"

// VisibleAt reports whether the banner should be shown at the given
// instant: active AND (no start date or start <= now) AND (no end date or
// end >= now). Malformed dates make their bound fail closed.
func (b *Banner) VisibleAt(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != "" {
		start, err := time.Parse(bannerDateLayout, b.StartDate)
		if err != nil || now.Before(start) {
			return false
		}
	}
	if b.EndDate != "" {
		end, err := time.Parse(bannerDateLayout, b.EndDate)
		if err != nil || now.After(end.Add(24*time.Hour-time.Nanosecond)) {
			return false
		}
	}
	return true
}

// ValidBannerType reports whether t is one of the accepted banner types.
func ValidBannerType(t string) bool {
	switch t {
	case BannerInfo, BannerWarning, BannerSuccess, BannerSeasonal:
		return true
	}
	return false
}

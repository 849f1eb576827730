package model

import "errors"

// Weekdays is the closed set of accepted values for Hour.DayOfWeek,
// ordered for display.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Hour represents one row of the `hours` table. A row is one of two
// mutually exclusive variants sharing a single table layout:
//
//   regular – IsSpecial false, DayOfWeek set to a weekday name. By
//             convention there is one row per weekday, though the server
//             does not enforce uniqueness.
//   special – IsSpecial true, SpecialDate set to a calendar date
//             ("2006-01-02") with SpecialNote explaining the exception
//             (e.g. a holiday closure).
//
// IsClosed suppresses the meaning of OpenTime/CloseTime in either variant.
//
// Fields:
//  ID          – primary key identifier.
//  DayOfWeek   – weekday name for regular rows ("Monday".."Sunday").
//  OpenTime    – opening time as "15:04"; meaningless when closed.
//  CloseTime   – closing time as "15:04"; meaningless when closed.
//  IsClosed    – the store does not open on this day/date.
//  IsSpecial   – marks the special-date variant.
//  SpecialDate – calendar date of the override ("2006-01-02").
//  SpecialNote – human-readable reason for the override.
type Hour struct {
	ID          uint64 `json:"id,string"`             // hours.id
	DayOfWeek   string `json:"dayOfWeek,omitempty"`   // hours.day_of_week
	OpenTime    string `json:"openTime"`              // hours.open_time
	CloseTime   string `json:"closeTime"`             // hours.close_time
	IsClosed    bool   `json:"isClosed"`              // hours.is_closed
	IsSpecial   bool   `json:"isSpecial,omitempty"`   // hours.is_special
	SpecialDate string `json:"specialDate,omitempty"` // hours.special_date
	SpecialNote string `json:"specialNote,omitempty"` // hours.special_note
}

// Errors returned by Hour.Validate. The variant rules deliberately reject
// rows that claim to be both regular and special, or neither.
var (
	ErrHourVariantAmbiguous = errors.New("hour must set exactly one of dayOfWeek or specialDate")
	ErrHourBadWeekday       = errors.New("dayOfWeek must be a weekday name Monday through Sunday")
	ErrHourTimesRequired    = errors.New("openTime and closeTime are required unless the day is closed")
)

// Validate enforces the variant exclusivity: a regular row carries a
// weekday and no special date, a special row carries a date and no
// weekday. Open/close times are required only when the day is open.
func (h *Hour) Validate() error {
	hasDay := h.DayOfWeek != ""
	hasDate := h.SpecialDate != ""
	if h.IsSpecial {
		if !hasDate || hasDay {
			return ErrHourVariantAmbiguous
		}
	} else {
		if !hasDay || hasDate {
			return ErrHourVariantAmbiguous
		}
		ok := false
		for _, d := range Weekdays {
			if h.DayOfWeek == d {
				ok = true
				break
			}
		}
		if !ok {
			return ErrHourBadWeekday
		}
	}
	if !h.IsClosed && (h.OpenTime == "" || h.CloseTime == "") {
		return ErrHourTimesRequired
	}
	return nil
}

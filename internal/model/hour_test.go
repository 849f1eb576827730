package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourValidate(t *testing.T) {
	cases := []struct {
		name string
		hour Hour
		want error
	}{
		{
			name: "regular open day",
			hour: Hour{DayOfWeek: "Monday", OpenTime: "09:00", CloseTime: "17:00"},
		},
		{
			name: "regular closed day needs no times",
			hour: Hour{DayOfWeek: "Sunday", IsClosed: true},
		},
		{
			name: "special date closure",
			hour: Hour{IsSpecial: true, SpecialDate: "2026-12-25", SpecialNote: "Christmas", IsClosed: true},
		},
		{
			name: "special date with hours",
			hour: Hour{IsSpecial: true, SpecialDate: "2026-12-24", OpenTime: "09:00", CloseTime: "13:00"},
		},
		{
			name: "both weekday and special date rejected",
			hour: Hour{IsSpecial: true, DayOfWeek: "Friday", SpecialDate: "2026-12-24", IsClosed: true},
			want: ErrHourVariantAmbiguous,
		},
		{
			name: "special without a date rejected",
			hour: Hour{IsSpecial: true, IsClosed: true},
			want: ErrHourVariantAmbiguous,
		},
		{
			name: "regular without a weekday rejected",
			hour: Hour{OpenTime: "09:00", CloseTime: "17:00"},
			want: ErrHourVariantAmbiguous,
		},
		{
			name: "regular carrying a special date rejected",
			hour: Hour{DayOfWeek: "Monday", SpecialDate: "2026-12-24", IsClosed: true},
			want: ErrHourVariantAmbiguous,
		},
		{
			name: "unknown weekday rejected",
			hour: Hour{DayOfWeek: "Funday", IsClosed: true},
			want: ErrHourBadWeekday,
		},
		{
			name: "open day missing times rejected",
			hour: Hour{DayOfWeek: "Tuesday", OpenTime: "09:00"},
			want: ErrHourTimesRequired,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.hour.Validate()
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

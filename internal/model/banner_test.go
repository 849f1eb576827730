package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBannerVisibleAt(t *testing.T) {
	cases := []struct {
		name   string
		banner Banner
		now    time.Time
		want   bool
	}{
		{
			name:   "inactive never visible",
			banner: Banner{IsActive: false, StartDate: "2020-01-01", EndDate: "2099-12-31"},
			now:    date("2024-06-01"),
			want:   false,
		},
		{
			name:   "no dates and active is always visible",
			banner: Banner{IsActive: true},
			now:    date("2024-06-01"),
			want:   true,
		},
		{
			name:   "future start date not yet visible",
			banner: Banner{IsActive: true, StartDate: "2099-01-01"},
			now:    date("2024-06-01"),
			want:   false,
		},
		{
			name:   "past end date no longer visible",
			banner: Banner{IsActive: true, StartDate: "2020-01-01", EndDate: "2020-12-31"},
			now:    date("2024-06-01"),
			want:   false,
		},
		{
			name:   "inside window visible",
			banner: Banner{IsActive: true, StartDate: "2024-01-01", EndDate: "2024-12-31"},
			now:    date("2024-06-01"),
			want:   true,
		},
		{
			name:   "end date is inclusive through the whole day",
			banner: Banner{IsActive: true, EndDate: "2024-06-01"},
			now:    date("2024-06-01").Add(23 * time.Hour),
			want:   true,
		},
		{
			name:   "malformed start date fails closed",
			banner: Banner{IsActive: true, StartDate: "yesterday"},
			now:    date("2024-06-01"),
			want:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.banner.VisibleAt(tc.now))
		})
	}
}

func TestValidBannerType(t *testing.T) {
	assert.True(t, ValidBannerType(BannerInfo))
	assert.True(t, ValidBannerType(BannerSeasonal))
	assert.False(t, ValidBannerType("urgent"))
	assert.False(t, ValidBannerType(""))
}

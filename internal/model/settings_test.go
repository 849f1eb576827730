package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	s := Settings{StoreName: "Root & Bloom"}
	require.NoError(t, s.Validate())

	// Delegated booking requires an absolute URL.
	s.UsePicktime = true
	assert.ErrorIs(t, s.Validate(), ErrPicktimeURLRequired)

	s.PicktimeURL = "booking-page"
	assert.ErrorIs(t, s.Validate(), ErrPicktimeURLRequired)

	s.PicktimeURL = "https://www.picktime.com/rootandbloom"
	require.NoError(t, s.Validate())

	// The flag off tolerates any leftover URL value.
	s.UsePicktime = false
	s.PicktimeURL = ""
	require.NoError(t, s.Validate())

	assert.Error(t, (&Settings{}).Validate(), "store name is required")
}

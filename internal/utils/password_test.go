package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("garden-gnome", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "garden-gnome", hash)

	assert.True(t, VerifyPassword(hash, "garden-gnome"))
	assert.False(t, VerifyPassword(hash, "garden-gnome "))
	assert.False(t, VerifyPassword("", "garden-gnome"))
}

func TestRandomHexLengthAndUniqueness(t *testing.T) {
	a, err := RandomHex(16)
	require.NoError(t, err)
	b, err := RandomHex(16)
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data. Used to name stored uploads so
// filenames never collide or leak the original name.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

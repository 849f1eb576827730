package utils // package utils provides helpers for token issuing and password hashing

import (
	"time" // time utilities for computing expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string. Exp stores the UTC
// expiration timestamp. Access tokens are the only credential in this
// system: the dashboard persists the string and presents it as a Bearer
// header on every protected call until it expires.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a staff user. It takes
// the signing secret, the user ID, the user's role, and a TTL in minutes.
// The JWT includes standard claims: subject (sub), role, expiration (exp)
// and issued at (iat).
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

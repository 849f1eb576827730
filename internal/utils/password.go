package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash of a staff password. Cost is passed
// in from config so the admin seeder and tests can pick a cheap one.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	return string(b), err
}

// VerifyPassword reports whether plain matches the stored hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password at the default bcrypt cost.
// The result is what gets stored in users.password_hash.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// ComparePassword returns a non-nil error when the plaintext does not match
// the stored hash.
func ComparePassword(hashed string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

package util

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hash strength for login latency; editor accounts hold no
// secrets beyond their own schedules.
const bcryptCost = 8

// HashPassword turns a plaintext password into a bcrypt hash for the users
// table.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a login attempt against the stored hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

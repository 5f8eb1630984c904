package bloglist

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// decoyHash is a throwaway bcrypt hash. When a login identifier matches no
// stored user we still run one comparison against it so the unknown-user
// path does comparable work to the wrong-password path.
const decoyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword will generate a password hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext
// password matches the hashed password
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return err
	}
	return nil
}

func compareDecoy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(decoyHash), []byte(password))
}

package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

// HashFormatError reports a stored hash that bcrypt cannot parse.
type HashFormatError struct {
	Err error
}

func (e *HashFormatError) Error() string {
	return fmt.Sprintf("malformed password hash: %v", e.Err)
}

func (e *HashFormatError) Unwrap() error {
	return e.Err
}

// HashPassword hashes a plaintext password with configured cost. A fresh salt
// is embedded in every result.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches hashed. A mismatch is not an
// error; an unparsable hash is a *HashFormatError.
func VerifyPassword(hashed, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, &HashFormatError{Err: err}
	}
}

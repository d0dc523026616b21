package password

import (
	"golang.org/x/crypto/bcrypt"

	"supplier-marketplace/internal/pkg/errs"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrTooLong  = errs.New("password is longer than 72 bytes")
	ErrMismatch = errs.New("password does not match")
)

const Cost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash stored in users.password_hash.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		if errs.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// ComparePassword reports ErrMismatch for a wrong password and for empty input; anything else
// is a malformed stored hash.
func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "compare password")
	}
}

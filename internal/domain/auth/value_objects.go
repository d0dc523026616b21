package auth

import (
	"strings"

	"supplier-marketplace/internal/domain/user"
)

// Credentials is what a login presents. The email is only checked for presence, so a malformed
// address fails the same way as an unknown one.
type Credentials struct {
	email    string
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email := strings.TrimSpace(emailStr)
	if email == "" {
		return Credentials{}, user.ErrInvalidEmail
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() string {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

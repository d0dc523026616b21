package user

import (
	"net/mail"
	"strings"

	"supplier-marketplace/internal/pkg/errs"
)

var (
	ErrInvalidEmail  = errs.New("invalid email format")
	ErrInvalidRole   = errs.New("invalid role")
	ErrEmptyPassword = errs.New("password is required")
)

// maxEmailLength is the longest address SMTP can deliver to.
const maxEmailLength = 254

// Email is a bare address ("a@x.com"). Display names and addresses without a dot in the domain
// are rejected.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxEmailLength {
		return Email{}, ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return Email{}, ErrInvalidEmail
	}

	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

// Password holds the plaintext only until it is hashed; no strength policy is enforced.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

package request

import (
	"strings"

	"supplier-marketplace/internal/domain/auth"
	"supplier-marketplace/internal/domain/user"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (user.Email, user.Password, user.Role, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Password{}, "", err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Password{}, "", err
	}
	role, err := user.NewRole(strings.TrimSpace(r.Role))
	if err != nil {
		return user.Email{}, user.Password{}, "", err
	}
	return email, pw, role, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

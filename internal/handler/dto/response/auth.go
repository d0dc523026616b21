package response

import (
	"time"

	"github.com/google/uuid"

	"supplier-marketplace/internal/usecase/commands"
	"supplier-marketplace/internal/usecase/queries"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LoginUser struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

func FromUserView(message string, v *queries.UserView) RegisterResponse {
	return RegisterResponse{
		Message: message,
		User: UserResponse{
			ID:        v.ID,
			Email:     v.Email,
			Role:      v.Role,
			CreatedAt: v.CreatedAt,
		},
	}
}

func FromLoginResult(message string, r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		Message: message,
		Token:   r.Token,
		User: LoginUser{
			ID:   r.UserID,
			Role: r.Role.String(),
		},
	}
}

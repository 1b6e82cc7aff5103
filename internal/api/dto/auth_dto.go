package dto

import (
	"time"

	"github.com/spec-kit/socialdev/internal/auth"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	User        LoginUser `json:"user"`
}

// LoginUser is the caller summary included in LoginResponse.
type LoginUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewLoginResponse builds the response body.
func NewLoginResponse(token string, identity auth.Identity) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		User: LoginUser{
			ID:        identity.ID,
			Email:     identity.Email,
			Name:      identity.Name,
			CreatedAt: identity.CreatedAt,
		},
	}
}

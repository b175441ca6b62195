package auth

import (
	"github.com/JRGCaponde/peixaria-backend/internal/store"
)

// LoginRequest captures the credentials sent to the login endpoint. Profile
// selects which identity tab is being used, mirroring the login screen.
type LoginRequest struct {
	Profile  string `json:"profile" validate:"required,oneof=admin staff customer"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the customer self-service sign-up.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse contains the bearer token and the active identity.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Session     store.Session `json:"session"`
}

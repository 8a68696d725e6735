package dto

import "time"

// SignupRequest entrada para registro (password en texto, se hashea en use case).
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email,max=128"`
	Password string `json:"password" validate:"required,min=6,max=64"`
}

// SigninRequest entrada para login.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse usuario + access token; va en content con meta.access_token.
type AuthResponse struct {
	User  UserResponse
	Token string
}

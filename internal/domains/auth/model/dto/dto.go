package dto

import (
	"buslink/infras/jwt"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	UserID   string        `json:"user_id"`
	Username string        `json:"username"`
	Role     string        `json:"role"`
	Tokens   jwt.TokenPair `json:"tokens"`
}

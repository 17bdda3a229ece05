package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest é o corpo do POST /v1/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Claims identifica o operador autenticado no token JWT
type Claims struct {
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}

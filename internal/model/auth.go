package model

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleParticipant Role = "participant"
)

// UserClaims are the JWT claims carried by every authenticated request
type UserClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

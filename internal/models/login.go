package models

import "github.com/google/uuid"

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: ada@example.com
	Email string `json:"email" validate:"required,max=255"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,max=72"`
}

// LoginUser is the public part of the user returned on login
type LoginUser struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// example: success
	Status string `json:"status"`

	// example: Login successful
	Message string `json:"message"`

	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`

	User LoginUser `json:"user"`
}

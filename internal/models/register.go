package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// example: Ada Lovelace
	Name string `json:"name" validate:"required,max=100"`

	// Email
	// required: true
	// example: ada@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,max=72"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// example: success
	Status string `json:"status"`

	// Success message
	// example: User registered successfully
	Message string `json:"message"`

	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

package models

// StatusSuccess and StatusError are the values of the status marker carried by every response.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: error
	Status string `json:"status"`

	// Error message
	// example: Mission not found
	Error string `json:"error"`
}

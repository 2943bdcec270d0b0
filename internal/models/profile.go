package models

import "github.com/google/uuid"

// ProfileResponse wraps the caller's profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// example: success
	Status  string  `json:"status"`
	Profile Profile `json:"profile"`
}

// ProfileUpdateRequest represents the JSON body for a partial profile update.
// Omitted fields are left unchanged.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// example: Ada King
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`

	// example: ada.king@example.com
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`

	// example: n3w-secret
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=72"`
}

// IsEmpty reports whether no field is set.
func (r ProfileUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Password == nil
}

// PublicUser is a user without credentials.
type PublicUser struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// Public strips the credentials from u.
func (u UserDB) Public() PublicUser {
	return PublicUser{UserID: u.ID, Name: u.Name, Email: u.Email}
}

// ProfileUpdateResponse represents a successful profile update
// swagger:model ProfileUpdateResponse
type ProfileUpdateResponse struct {
	// example: success
	Status string `json:"status"`

	// example: Profile updated successfully
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// ProfileDeleteResponse represents a successful account deletion
// swagger:model ProfileDeleteResponse
type ProfileDeleteResponse struct {
	// example: success
	Status string `json:"status"`

	// example: Account deleted successfully
	Message     string     `json:"message"`
	DeletedUser PublicUser `json:"deleted_user"`
}

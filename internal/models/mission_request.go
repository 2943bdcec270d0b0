package models

// MissionCreateRequest represents the JSON body for creating a mission
// swagger:model MissionCreateRequest
type MissionCreateRequest struct {
	// required: true
	// example: Read
	Title string `json:"title" validate:"required,max=200"`

	// required: true
	// example: Read one chapter of a book
	Description string `json:"description" validate:"required"`

	// Defaults to General
	// example: Study
	Category string `json:"category" validate:"max=100"`

	// XP granted on completion
	// required: true
	// example: 50
	RewardPoints int `json:"reward_points" validate:"required,gt=0"`
}

// MissionUpdateRequest represents the JSON body for a partial mission update.
// Completion cannot be changed here.
// swagger:model MissionUpdateRequest
type MissionUpdateRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Category     *string `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	RewardPoints *int    `json:"reward_points,omitempty" validate:"omitempty,gt=0"`
}

// Patch converts r into a repository patch.
func (r MissionUpdateRequest) Patch() MissionPatch {
	return MissionPatch{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		RewardPoints: r.RewardPoints,
	}
}

// MissionSyncRequest is the body of a bulk mission sync. The payload is the
// complete desired mission list of the caller, so the missions field must
// be present. An empty array clears the list.
// swagger:model MissionSyncRequest
type MissionSyncRequest struct {
	Missions []MissionSyncItem `json:"missions" validate:"required,dive"`
}

// MissionResponse wraps a single mission
// swagger:model MissionResponse
type MissionResponse struct {
	// example: success
	Status string `json:"status"`

	// example: Mission created successfully
	Message string    `json:"message,omitempty"`
	Mission MissionDB `json:"mission"`
}

// MissionListResponse wraps the caller's missions
// swagger:model MissionListResponse
type MissionListResponse struct {
	// example: success
	Status   string      `json:"status"`
	Missions []MissionDB `json:"missions"`
}

// MissionCompleteResponse represents a successful completion
// swagger:model MissionCompleteResponse
type MissionCompleteResponse struct {
	// example: success
	Status string `json:"status"`

	// example: Mission completed! You earned 50 XP.
	Message  string    `json:"message"`
	Mission  MissionDB `json:"updated_mission"`
	XPEarned int       `json:"xp_earned"`
}

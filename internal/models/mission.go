package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is used when a mission is created without a category.
const DefaultCategory = "General"

// Column limits of the missions table, in characters.
const (
	MaxTitleLength    = 200
	MaxCategoryLength = 100
)

// MissionDB represents a mission row in the database
type MissionDB struct {
	ID           uuid.UUID  `json:"id" db:"id"`                       // Unique mission identifier
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`             // Owner
	Title        string     `json:"title" db:"title"`                 // Short title
	Description  string     `json:"description" db:"description"`     // Free text
	Category     string     `json:"category" db:"category"`           // Grouping label
	RewardPoints int        `json:"reward_points" db:"reward_points"` // XP granted on completion
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`       // Creation timestamp
	CompletedAt  *time.Time `json:"completed_at" db:"completed_at"`   // Null while pending
}

// IsCompleted reports whether the mission reached its terminal state.
func (m MissionDB) IsCompleted() bool {
	return m.CompletedAt != nil
}

// MissionPatch carries the editable mission fields of a partial update.
// Completion is reachable only through Complete.
type MissionPatch struct {
	Title        *string
	Description  *string
	Category     *string
	RewardPoints *int
}

// IsEmpty reports whether no field is set.
func (p MissionPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.RewardPoints == nil
}

// Changes reports whether applying p to m would modify it.
func (p MissionPatch) Changes(m MissionDB) bool {
	return (p.Title != nil && *p.Title != m.Title) ||
		(p.Description != nil && *p.Description != m.Description) ||
		(p.Category != nil && *p.Category != m.Category) ||
		(p.RewardPoints != nil && *p.RewardPoints != m.RewardPoints)
}

// MissionSyncItem is one entry of a bulk sync payload.
// swagger:model MissionSyncItem
type MissionSyncItem struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"required"`
	Category     string     `json:"category" validate:"max=100"`
	RewardPoints int        `json:"reward_points" validate:"required,gt=0"`
	Completed    bool       `json:"completed"`
	CreatedAt    *time.Time `json:"created_at,omitempty"` // Kept for new missions
}

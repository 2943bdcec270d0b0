package models

import (
	"time"

	"github.com/google/uuid"
)

// CompletionDB is the immutable proof that a mission was completed.
type CompletionDB struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	MissionID   uuid.UUID `json:"mission_id" db:"mission_id"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
	XPEarned    int       `json:"xp_earned" db:"xp_earned"`
}

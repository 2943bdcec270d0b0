package models

import "github.com/google/uuid"

// XPPerLevel is the amount of XP needed to advance one level.
const XPPerLevel = 500

// StatsDB is the per-user stats aggregate.
type StatsDB struct {
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	TotalXP           int       `json:"total_xp" db:"total_xp"`
	MissionsCompleted int       `json:"missions_completed" db:"missions_completed"`
}

// Level returns the level reached with totalXP and the XP accumulated inside that level.
func Level(totalXP int) (level, experience int) {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/XPPerLevel + 1, totalXP % XPPerLevel
}

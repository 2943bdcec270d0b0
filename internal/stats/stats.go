// Package stats derives the dashboard summary from a user's missions.
package stats

import (
	"math"

	"github.com/sbilibin2017/gw-missions/internal/models"
)

// Summary is the dashboard view of a mission set.
// swagger:model Summary
type Summary struct {
	TotalMissions     int `json:"total_missions"`
	CompletedMissions int `json:"completed_missions"`
	CompletionRate    int `json:"completion_rate"` // percent, 0..100
	Sequence          int `json:"sequence"`        // streak proxy, not consecutive days
	Conquests         int `json:"conquests"`
	TotalPoints       int `json:"total_points"` // reward points of completed missions
	Level             int `json:"level"`
	Experience        int `json:"experience"` // XP inside the current level
}

// Compute derives the summary of missions. Level and Experience are
// computed from the total points; use WithXP to base them on the
// server side stats aggregate instead.
func Compute(missions []models.MissionDB) Summary {
	var s Summary
	s.TotalMissions = len(missions)
	for _, m := range missions {
		if !m.IsCompleted() {
			continue
		}
		s.CompletedMissions++
		s.TotalPoints += m.RewardPoints
	}

	s.CompletionRate = CompletionRate(s.CompletedMissions, s.TotalMissions)
	s.Sequence = Sequence(s.CompletedMissions)
	s.Conquests = s.CompletedMissions / 2
	return s.WithXP(s.TotalPoints)
}

// WithXP returns a copy of s with level fields derived from totalXP.
func (s Summary) WithXP(totalXP int) Summary {
	s.Level, s.Experience = models.Level(totalXP)
	return s
}

// CompletionRate returns round(100*completed/total), 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	rate := int(math.Round(100 * float64(completed) / float64(total)))
	switch {
	case rate < 0:
		return 0
	case rate > 100:
		return 100
	}
	return rate
}

// Sequence is completed*10+2 once anything is completed, 0 otherwise.
func Sequence(completed int) int {
	if completed <= 0 {
		return 0
	}
	return completed*10 + 2
}

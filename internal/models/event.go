package models

// Mission event operations.
const (
	OperationMissionCreated   = "mission_created"
	OperationMissionCompleted = "mission_completed"
	OperationMissionDeleted   = "mission_deleted"
	OperationMissionsSynced   = "missions_synced"
	OperationUserDeleted      = "user_deleted"
)

// MissionEvent is published to Kafka after a committed mission or account change.
type MissionEvent struct {
	EventID   string `json:"event_id"`             // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`            // Timestamp is the Unix timestamp (in seconds) of the change.
	UserID    string `json:"user_id"`              // UserID is the owner of the mission.
	MissionID string `json:"mission_id,omitempty"` // MissionID is empty for account level events.
	Operation string `json:"operation"`            // Operation is one of the Operation* constants.
	XP        int    `json:"xp,omitempty"`         // XP earned, set on completion.
}

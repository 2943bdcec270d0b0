package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/logger"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/stats"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// StatsCache caches the derived statistics of a user. SetSummary stores
// nothing once Invalidate has run after the version was read.
type StatsCache interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*stats.Summary, error)
	Version(ctx context.Context, userID uuid.UUID) (int64, error)
	SetSummary(ctx context.Context, userID uuid.UUID, version int64, summary stats.Summary) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// newEvent builds an event stamped with a fresh id and the current time.
func newEvent(operation string, userID uuid.UUID) models.MissionEvent {
	return models.MissionEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Operation: operation,
	}
}

// publishEvent publishes ev to Kafka. Failures are logged, not returned.
func publishEvent(ctx context.Context, w KafkaWriter, ev models.MissionEvent) {
	log := logger.FromContext(ctx)
	if w == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "event_id", ev.EventID, "operation", ev.Operation)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.UserID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event_id", ev.EventID, "operation", ev.Operation, "error", err)
	} else {
		log.Infow("Event published to Kafka", "event_id", ev.EventID, "operation", ev.Operation, "mission_id", ev.MissionID)
	}
}

// invalidateStats drops the cached summary of userID, logging failures.
func invalidateStats(ctx context.Context, cache StatsCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		logger.FromContext(ctx).Errorw("failed to invalidate stats cache", "user_id", userID, "error", err)
	}
}

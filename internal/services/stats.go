package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/logger"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/repositories"
	"github.com/sbilibin2017/gw-missions/internal/stats"
)

//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=services

// MissionLister lists the missions of a user.
type MissionLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MissionDB, error)
}

// StatsReader reads the stats aggregate of a user.
type StatsReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StatsDB, error)
}

// StatsService serves the dashboard summary.
type StatsService struct {
	missions  MissionLister
	statsRepo StatsReader
	cache     StatsCache
}

// NewStatsService creates a new StatsService.
func NewStatsService(missions MissionLister, statsRepo StatsReader, cache StatsCache) *StatsService {
	return &StatsService{
		missions:  missions,
		statsRepo: statsRepo,
		cache:     cache,
	}
}

// Summary returns the statistics of userID, reading through the cache.
// Level and experience follow the stats aggregate, which keeps the XP of
// deleted missions.
func (s *StatsService) Summary(ctx context.Context, userID uuid.UUID) (stats.Summary, error) {
	log := logger.FromContext(ctx)

	// The version is read before the database so that an invalidation
	// racing with this computation keeps its result out of the cache.
	cacheable := false
	var version int64
	if s.cache != nil {
		cached, err := s.cache.GetSummary(ctx, userID)
		if err == nil {
			return *cached, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			log.Warnw("failed to read stats cache", "user_id", userID, "error", err)
		}
		if version, err = s.cache.Version(ctx, userID); err != nil {
			log.Warnw("failed to read stats cache version", "user_id", userID, "error", err)
		} else {
			cacheable = true
		}
	}

	missions, err := s.missions.ListByUser(ctx, userID)
	if err != nil {
		log.Errorw("failed to list missions", "user_id", userID, "error", err)
		return stats.Summary{}, err
	}
	summary := stats.Compute(missions)

	aggregate, err := s.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Errorw("failed to read stats aggregate", "user_id", userID, "error", err)
		return stats.Summary{}, err
	}
	if aggregate != nil {
		summary = summary.WithXP(aggregate.TotalXP)
	}

	if cacheable {
		if err := s.cache.SetSummary(ctx, userID, version, summary); err != nil {
			log.Warnw("failed to cache stats summary", "user_id", userID, "error", err)
		}
	}
	return summary, nil
}

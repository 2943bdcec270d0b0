package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/logger"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/repositories"
)

//go:generate mockgen -source=mission.go -destination=mission_mock.go -package=services

// MissionReader reads the missions of a user.
type MissionReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MissionDB, error)
	LockByUser(ctx context.Context, userID uuid.UUID) ([]models.MissionDB, error)
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.MissionDB, error)
	GetByIDForUpdate(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.MissionDB, error)
}

// MissionWriter writes the missions of a user.
type MissionWriter interface {
	Save(ctx context.Context, m *models.MissionDB) error
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, patch models.MissionPatch) (*models.MissionDB, error)
	MarkCompleted(ctx context.Context, userID uuid.UUID, id uuid.UUID, at time.Time) (*models.MissionDB, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.MissionDB, error)
}

// CompletionWriter records completions.
type CompletionWriter interface {
	Save(ctx context.Context, c *models.CompletionDB) error
}

// StatsWriter credits completions to the stats aggregate.
type StatsWriter interface {
	ApplyCompletion(ctx context.Context, userID uuid.UUID, xp int) error
}

// MissionService implements mission CRUD and the completion state machine.
type MissionService struct {
	reader      MissionReader
	writer      MissionWriter
	completions CompletionWriter
	statsRepo   StatsWriter
	tx          Transactor
	cache       StatsCache
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewMissionService creates a new MissionService.
func NewMissionService(
	reader MissionReader,
	writer MissionWriter,
	completions CompletionWriter,
	statsRepo StatsWriter,
	tx Transactor,
	cache StatsCache,
	kafkaWriter KafkaWriter,
) *MissionService {
	return &MissionService{
		reader:      reader,
		writer:      writer,
		completions: completions,
		statsRepo:   statsRepo,
		tx:          tx,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Create stores a new pending mission owned by userID.
func (s *MissionService) Create(ctx context.Context, userID uuid.UUID, req models.MissionCreateRequest) (*models.MissionDB, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	m := &models.MissionDB{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     categoryOrDefault(req.Category),
		RewardPoints: req.RewardPoints,
	}
	if err := s.writer.Save(ctx, m); err != nil {
		logger.FromContext(ctx).Errorw("failed to save mission", "user_id", userID, "error", err)
		return nil, err
	}

	invalidateStats(ctx, s.cache, userID)
	s.publish(ctx, models.OperationMissionCreated, m, 0)

	return m, nil
}

// List returns the missions of userID, newest first.
func (s *MissionService) List(ctx context.Context, userID uuid.UUID) ([]models.MissionDB, error) {
	missions, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list missions", "user_id", userID, "error", err)
		return nil, err
	}
	return missions, nil
}

// Get returns mission id of userID.
func (s *MissionService) Get(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error) {
	m, err := s.reader.GetByID(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get mission", "mission_id", id, "error", err)
		return nil, err
	}
	if m == nil {
		return nil, ErrMissionNotFound
	}
	return m, nil
}

// Update edits the details of mission id. Completion is not editable.
func (s *MissionService) Update(ctx context.Context, userID, id uuid.UUID, req models.MissionUpdateRequest) (*models.MissionDB, error) {
	patch := req.Patch()
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	m, err := s.writer.Update(ctx, userID, id, patch)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update mission", "mission_id", id, "error", err)
		return nil, err
	}
	if m == nil {
		return nil, ErrMissionNotFound
	}

	invalidateStats(ctx, s.cache, userID)
	return m, nil
}

// Complete moves mission id from pending to completed, records the
// completion and credits its reward to the stats aggregate, all in one
// transaction. Completing a completed mission fails with
// ErrMissionAlreadyCompleted and changes nothing.
func (s *MissionService) Complete(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error) {
	var completed *models.MissionDB
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		m, err := s.reader.GetByIDForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrMissionNotFound
		}
		completed, err = s.complete(ctx, m)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrMissionNotFound) && !errors.Is(err, ErrMissionAlreadyCompleted) {
			logger.FromContext(ctx).Errorw("failed to complete mission", "mission_id", id, "error", err)
		}
		return nil, err
	}

	invalidateStats(ctx, s.cache, userID)
	s.publish(ctx, models.OperationMissionCompleted, completed, completed.RewardPoints)

	logger.FromContext(ctx).Infow("mission completed", "mission_id", id, "xp", completed.RewardPoints)
	return completed, nil
}

// complete runs the completion path for m. It must be called inside a
// transaction holding the row lock of m.
func (s *MissionService) complete(ctx context.Context, m *models.MissionDB) (*models.MissionDB, error) {
	if m.IsCompleted() {
		return nil, ErrMissionAlreadyCompleted
	}

	at := s.now().UTC()
	completion := &models.CompletionDB{
		UserID:      m.UserID,
		MissionID:   m.ID,
		CompletedAt: at,
		XPEarned:    m.RewardPoints,
	}
	if err := s.completions.Save(ctx, completion); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrMissionAlreadyCompleted
		}
		return nil, err
	}

	if err := s.statsRepo.ApplyCompletion(ctx, m.UserID, m.RewardPoints); err != nil {
		return nil, err
	}

	updated, err := s.writer.MarkCompleted(ctx, m.UserID, m.ID, at)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrMissionAlreadyCompleted
	}
	return updated, nil
}

// Delete removes mission id of userID. XP already earned is kept.
func (s *MissionService) Delete(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error) {
	m, err := s.writer.Delete(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete mission", "mission_id", id, "error", err)
		return nil, err
	}
	if m == nil {
		return nil, ErrMissionNotFound
	}

	invalidateStats(ctx, s.cache, userID)
	s.publish(ctx, models.OperationMissionDeleted, m, 0)

	return m, nil
}

// Sync replaces the mission set of userID with items, last write wins.
// Known ids are updated, unknown ones created and missing ones deleted.
// completed=true runs the completion path on pending missions while
// completed=false never reopens a completed one.
func (s *MissionService) Sync(ctx context.Context, userID uuid.UUID, req models.MissionSyncRequest) ([]models.MissionDB, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var (
		missions  []models.MissionDB
		completed []models.MissionDB
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		completed = completed[:0]

		existing, err := s.reader.LockByUser(ctx, userID)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]models.MissionDB, len(existing))
		for _, m := range existing {
			byID[m.ID] = m
		}

		seen := make(map[uuid.UUID]bool, len(req.Missions))
		for i, item := range req.Missions {
			if item.ID != nil {
				if seen[*item.ID] {
					return fmt.Errorf("%w: duplicate mission id %s", ErrValidation, item.ID)
				}
				seen[*item.ID] = true
			}

			m, err := s.syncItem(ctx, userID, item, byID)
			if err != nil {
				return fmt.Errorf("mission %d: %w", i, err)
			}
			if item.Completed && !m.IsCompleted() {
				done, err := s.complete(ctx, m)
				if err != nil {
					return fmt.Errorf("mission %d: %w", i, err)
				}
				completed = append(completed, *done)
			}
		}

		for _, m := range existing {
			if seen[m.ID] {
				continue
			}
			if _, err := s.writer.Delete(ctx, userID, m.ID); err != nil {
				return err
			}
		}

		missions, err = s.reader.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrMissionConflict
		}
		if !errors.Is(err, ErrValidation) {
			logger.FromContext(ctx).Errorw("failed to sync missions", "user_id", userID, "error", err)
		}
		return nil, err
	}

	invalidateStats(ctx, s.cache, userID)
	for i := range completed {
		s.publish(ctx, models.OperationMissionCompleted, &completed[i], completed[i].RewardPoints)
	}
	publishEvent(ctx, s.kafkaWriter, newEvent(models.OperationMissionsSynced, userID))

	logger.FromContext(ctx).Infow("missions synced", "user_id", userID, "count", len(missions), "completed", len(completed))
	return missions, nil
}

// syncItem updates the known mission matching item, or creates it.
func (s *MissionService) syncItem(ctx context.Context, userID uuid.UUID, item models.MissionSyncItem, byID map[uuid.UUID]models.MissionDB) (*models.MissionDB, error) {
	category := categoryOrDefault(item.Category)

	if item.ID != nil {
		if cur, ok := byID[*item.ID]; ok {
			patch := models.MissionPatch{
				Title:        &item.Title,
				Description:  &item.Description,
				Category:     &category,
				RewardPoints: &item.RewardPoints,
			}
			if !patch.Changes(cur) {
				return &cur, nil
			}
			updated, err := s.writer.Update(ctx, userID, cur.ID, patch)
			if err != nil {
				return nil, err
			}
			if updated == nil {
				return nil, ErrMissionNotFound
			}
			return updated, nil
		}
	}

	m := &models.MissionDB{
		UserID:       userID,
		Title:        item.Title,
		Description:  item.Description,
		Category:     category,
		RewardPoints: item.RewardPoints,
	}
	if item.ID != nil {
		m.ID = *item.ID
	}
	if item.CreatedAt != nil {
		m.CreatedAt = *item.CreatedAt
	}
	if err := s.writer.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MissionService) publish(ctx context.Context, operation string, m *models.MissionDB, xp int) {
	ev := newEvent(operation, m.UserID)
	ev.MissionID = m.ID.String()
	ev.XP = xp
	publishEvent(ctx, s.kafkaWriter, ev)
}

func categoryOrDefault(category string) string {
	if c := strings.TrimSpace(category); c != "" {
		return c
	}
	return models.DefaultCategory
}

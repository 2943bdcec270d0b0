package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/repositories"
	"github.com/sbilibin2017/gw-missions/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type missionMocks struct {
	reader      *services.MockMissionReader
	writer      *services.MockMissionWriter
	completions *services.MockCompletionWriter
	stats       *services.MockStatsWriter
	tx          *services.MockTransactor
	cache       *services.MockStatsCache
	kafka       *services.MockKafkaWriter
}

func newMissionService(t *testing.T) (*services.MissionService, missionMocks) {
	ctrl := gomock.NewController(t)
	m := missionMocks{
		reader:      services.NewMockMissionReader(ctrl),
		writer:      services.NewMockMissionWriter(ctrl),
		completions: services.NewMockCompletionWriter(ctrl),
		stats:       services.NewMockStatsWriter(ctrl),
		tx:          services.NewMockTransactor(ctrl),
		cache:       services.NewMockStatsCache(ctrl),
		kafka:       services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewMissionService(m.reader, m.writer, m.completions, m.stats, m.tx, m.cache, m.kafka)
	return svc, m
}

func pendingMission(userID uuid.UUID, title string, reward int) models.MissionDB {
	return models.MissionDB{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		Description:  title + " description",
		Category:     models.DefaultCategory,
		RewardPoints: reward,
		CreatedAt:    time.Now(),
	}
}

func markDone(m models.MissionDB) *models.MissionDB {
	now := time.Now()
	m.CompletedAt = &now
	return &m
}

func TestMissionService_Create(t *testing.T) {
	svc, m := newMissionService(t)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("defaults the category", func(t *testing.T) {
		m.writer.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, mission *models.MissionDB) error {
				assert.Equal(t, models.DefaultCategory, mission.Category)
				assert.Equal(t, userID, mission.UserID)
				assert.Nil(t, mission.CompletedAt)
				mission.ID = uuid.New()
				return nil
			})
		m.cache.EXPECT().Invalidate(ctx, userID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		mission, err := svc.Create(ctx, userID, models.MissionCreateRequest{Title: "Read", Description: "Read a book", RewardPoints: 50})
		require.NoError(t, err)
		assert.False(t, mission.IsCompleted())
	})

	tests := []struct {
		name string
		req  models.MissionCreateRequest
	}{
		{"missing title", models.MissionCreateRequest{Description: "d", RewardPoints: 10}},
		{"missing description", models.MissionCreateRequest{Title: "t", RewardPoints: 10}},
		{"zero reward", models.MissionCreateRequest{Title: "t", Description: "d"}},
		{"negative reward", models.MissionCreateRequest{Title: "t", Description: "d", RewardPoints: -5}},
		{"title too long", models.MissionCreateRequest{Title: strings.Repeat("t", 201), Description: "d", RewardPoints: 10}},
		{"category too long", models.MissionCreateRequest{Title: "t", Description: "d", Category: strings.Repeat("c", 101), RewardPoints: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, userID, tt.req)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestMissionService_Get(t *testing.T) {
	svc, m := newMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	mission := pendingMission(userID, "Read", 50)

	m.reader.EXPECT().GetByID(ctx, userID, mission.ID).Return(&mission, nil)
	got, err := svc.Get(ctx, userID, mission.ID)
	require.NoError(t, err)
	assert.Equal(t, mission.ID, got.ID)

	other := uuid.New()
	m.reader.EXPECT().GetByID(ctx, other, mission.ID).Return(nil, nil)
	_, err = svc.Get(ctx, other, mission.ID)
	assert.ErrorIs(t, err, services.ErrMissionNotFound)
}

func TestMissionService_Update(t *testing.T) {
	svc, m := newMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	mission := pendingMission(userID, "Read", 50)

	_, err := svc.Update(ctx, userID, mission.ID, models.MissionUpdateRequest{})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Update(ctx, userID, mission.ID, models.MissionUpdateRequest{RewardPoints: ptr(0)})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Update(ctx, userID, mission.ID, models.MissionUpdateRequest{Title: ptr(strings.Repeat("t", 201))})
	assert.ErrorIs(t, err, services.ErrValidation)

	updated := mission
	updated.Title = "Read twice"
	m.writer.EXPECT().Update(ctx, userID, mission.ID, models.MissionPatch{Title: ptr("Read twice")}).Return(&updated, nil)
	m.cache.EXPECT().Invalidate(ctx, userID).Return(nil)

	got, err := svc.Update(ctx, userID, mission.ID, models.MissionUpdateRequest{Title: ptr("Read twice")})
	require.NoError(t, err)
	assert.Equal(t, "Read twice", got.Title)

	m.writer.EXPECT().Update(ctx, userID, mission.ID, gomock.Any()).Return(nil, nil)
	_, err = svc.Update(ctx, userID, mission.ID, models.MissionUpdateRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, services.ErrMissionNotFound)
}

func TestMissionService_Complete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("pending mission earns its reward", func(t *testing.T) {
		svc, m := newMissionService(t)
		mission := pendingMission(userID, "Read", 50)

		runInTx(m.tx)
		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID, mission.ID).Return(&mission, nil)
		m.completions.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *models.CompletionDB) error {
				assert.Equal(t, mission.ID, c.MissionID)
				assert.Equal(t, 50, c.XPEarned)
				return nil
			})
		m.stats.EXPECT().ApplyCompletion(gomock.Any(), userID, 50).Return(nil)
		m.writer.EXPECT().MarkCompleted(gomock.Any(), userID, mission.ID, gomock.Any()).Return(markDone(mission), nil)
		m.cache.EXPECT().Invalidate(ctx, userID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Complete(ctx, userID, mission.ID)
		require.NoError(t, err)
		assert.True(t, got.IsCompleted())
		assert.Equal(t, 50, got.RewardPoints)
	})

	t.Run("completed mission is rejected without side effects", func(t *testing.T) {
		svc, m := newMissionService(t)
		mission := markDone(pendingMission(userID, "Read", 50))

		runInTx(m.tx)
		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID, mission.ID).Return(mission, nil)
		m.completions.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
		m.stats.EXPECT().ApplyCompletion(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Complete(ctx, userID, mission.ID)
		assert.ErrorIs(t, err, services.ErrMissionAlreadyCompleted)
		assert.Contains(t, err.Error(), "already completed")
	})

	t.Run("missing mission", func(t *testing.T) {
		svc, m := newMissionService(t)
		id := uuid.New()

		runInTx(m.tx)
		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID, id).Return(nil, nil)

		_, err := svc.Complete(ctx, userID, id)
		assert.ErrorIs(t, err, services.ErrMissionNotFound)
	})

	t.Run("duplicate completion record", func(t *testing.T) {
		svc, m := newMissionService(t)
		mission := pendingMission(userID, "Read", 50)

		runInTx(m.tx)
		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID, mission.ID).Return(&mission, nil)
		m.completions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrUniqueViolation)

		_, err := svc.Complete(ctx, userID, mission.ID)
		assert.ErrorIs(t, err, services.ErrMissionAlreadyCompleted)
	})

	t.Run("stats failure aborts", func(t *testing.T) {
		svc, m := newMissionService(t)
		mission := pendingMission(userID, "Read", 50)

		runInTx(m.tx)
		m.reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID, mission.ID).Return(&mission, nil)
		m.completions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.stats.EXPECT().ApplyCompletion(gomock.Any(), userID, 50).Return(errors.New("db down"))

		_, err := svc.Complete(ctx, userID, mission.ID)
		assert.EqualError(t, err, "db down")
	})
}

func TestMissionService_Delete(t *testing.T) {
	svc, m := newMissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	mission := pendingMission(userID, "Read", 50)

	m.writer.EXPECT().Delete(ctx, userID, mission.ID).Return(&mission, nil)
	m.cache.EXPECT().Invalidate(ctx, userID).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, err := svc.Delete(ctx, userID, mission.ID)
	require.NoError(t, err)
	assert.Equal(t, mission.ID, got.ID)

	m.writer.EXPECT().Delete(ctx, userID, mission.ID).Return(nil, nil)
	_, err = svc.Delete(ctx, userID, mission.ID)
	assert.ErrorIs(t, err, services.ErrMissionNotFound)
}

func TestMissionService_Sync(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates, creates, completes and deletes", func(t *testing.T) {
		svc, m := newMissionService(t)

		kept := pendingMission(userID, "Read", 50)
		toComplete := pendingMission(userID, "Run", 30)
		done := markDone(pendingMission(userID, "Write", 20))
		dropped := pendingMission(userID, "Old", 10)
		newID := uuid.New()
		newCreated := time.Date(2025, 10, 1, 9, 30, 0, 0, time.UTC)

		runInTx(m.tx)
		m.reader.EXPECT().LockByUser(gomock.Any(), userID).
			Return([]models.MissionDB{kept, toComplete, *done, dropped}, nil)

		// kept: title edited
		edited := kept
		edited.Title = "Read more"
		m.writer.EXPECT().Update(gomock.Any(), userID, kept.ID, gomock.Any()).Return(&edited, nil)

		// toComplete: unchanged fields, completion requested
		m.completions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.stats.EXPECT().ApplyCompletion(gomock.Any(), userID, 30).Return(nil)
		m.writer.EXPECT().MarkCompleted(gomock.Any(), userID, toComplete.ID, gomock.Any()).Return(markDone(toComplete), nil)

		// new mission keeps the client id
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, mission *models.MissionDB) error {
				assert.Equal(t, newID, mission.ID)
				assert.Equal(t, "Study", mission.Category)
				assert.Equal(t, newCreated, mission.CreatedAt)
				return nil
			})

		// dropped is absent from the payload
		m.writer.EXPECT().Delete(gomock.Any(), userID, dropped.ID).Return(&dropped, nil)

		final := []models.MissionDB{edited, *markDone(toComplete), *done}
		m.reader.EXPECT().ListByUser(gomock.Any(), userID).Return(final, nil)
		m.cache.EXPECT().Invalidate(ctx, userID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		got, err := svc.Sync(ctx, userID, models.MissionSyncRequest{Missions: []models.MissionSyncItem{
			{ID: &kept.ID, Title: "Read more", Description: kept.Description, Category: kept.Category, RewardPoints: 50},
			{ID: &toComplete.ID, Title: toComplete.Title, Description: toComplete.Description, Category: toComplete.Category, RewardPoints: 30, Completed: true},
			// completed=false never reopens a mission
			{ID: &done.ID, Title: done.Title, Description: done.Description, Category: done.Category, RewardPoints: 20, Completed: false},
			{ID: &newID, Title: "Learn", Description: "Learn Go", Category: "Study", RewardPoints: 40, CreatedAt: &newCreated},
		}})
		require.NoError(t, err)
		assert.Equal(t, final, got)
	})

	t.Run("invalid item", func(t *testing.T) {
		svc, _ := newMissionService(t)

		_, err := svc.Sync(ctx, userID, models.MissionSyncRequest{Missions: []models.MissionSyncItem{
			{Title: "Read", Description: "Read a book", RewardPoints: 0},
		}})
		assert.ErrorIs(t, err, services.ErrValidation)

		_, err = svc.Sync(ctx, userID, models.MissionSyncRequest{Missions: []models.MissionSyncItem{
			{Title: strings.Repeat("t", 201), Description: "Read a book", RewardPoints: 10},
		}})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("missing missions field deletes nothing", func(t *testing.T) {
		svc, _ := newMissionService(t)

		_, err := svc.Sync(ctx, userID, models.MissionSyncRequest{})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Contains(t, err.Error(), "missions is required")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		svc, m := newMissionService(t)
		id := uuid.New()

		runInTx(m.tx)
		m.reader.EXPECT().LockByUser(gomock.Any(), userID).Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Sync(ctx, userID, models.MissionSyncRequest{Missions: []models.MissionSyncItem{
			{ID: &id, Title: "A", Description: "a", RewardPoints: 1},
			{ID: &id, Title: "B", Description: "b", RewardPoints: 1},
		}})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("foreign id conflicts", func(t *testing.T) {
		svc, m := newMissionService(t)
		id := uuid.New()

		runInTx(m.tx)
		m.reader.EXPECT().LockByUser(gomock.Any(), userID).Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrUniqueViolation)

		_, err := svc.Sync(ctx, userID, models.MissionSyncRequest{Missions: []models.MissionSyncItem{
			{ID: &id, Title: "A", Description: "a", RewardPoints: 1},
		}})
		assert.ErrorIs(t, err, services.ErrMissionConflict)
	})

	t.Run("empty payload clears the list", func(t *testing.T) {
		svc, m := newMissionService(t)
		a, b := pendingMission(userID, "A", 1), pendingMission(userID, "B", 2)

		runInTx(m.tx)
		m.reader.EXPECT().LockByUser(gomock.Any(), userID).Return([]models.MissionDB{a, b}, nil)
		m.writer.EXPECT().Delete(gomock.Any(), userID, a.ID).Return(&a, nil)
		m.writer.EXPECT().Delete(gomock.Any(), userID, b.ID).Return(&b, nil)
		m.reader.EXPECT().ListByUser(gomock.Any(), userID).Return([]models.MissionDB{}, nil)
		m.cache.EXPECT().Invalidate(ctx, userID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Sync(ctx, userID, models.MissionSyncRequest{Missions: []models.MissionSyncItem{}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

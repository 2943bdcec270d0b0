package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestMirror(t *testing.T, opts ...MirrorOpt) (*Mirror, *MockMissionAPI, *fakeClock) {
	ctrl := gomock.NewController(t)
	api := NewMockMissionAPI(ctrl)
	clock := &fakeClock{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}

	opts = append([]MirrorOpt{WithDebounce(time.Hour), WithClock(clock.Now)}, opts...)
	m := NewMirror(api, opts...)
	t.Cleanup(m.Close)
	return m, api, clock
}

func readMission() models.MissionCreateRequest {
	return models.MissionCreateRequest{Title: "Read", Description: "Read 10 pages", Category: "Study", RewardPoints: 50}
}

func TestMirror_Load(t *testing.T) {
	m, api, _ := newTestMirror(t)
	ctx := context.Background()

	done := time.Now()
	api.EXPECT().ListMissions(ctx).Return([]models.MissionDB{
		{ID: uuid.New(), Title: "Run", RewardPoints: 30, CompletedAt: &done},
		{ID: uuid.New(), Title: "Swim", RewardPoints: 70},
	}, nil)
	api.EXPECT().Profile(ctx).Return(&models.Profile{Name: "Ada Lovelace", Initials: "AL"}, nil)

	require.NoError(t, m.Load(ctx))

	assert.Len(t, m.Missions(), 2)
	assert.Equal(t, "AL", m.Profile().Initials)
	s := m.Summary()
	assert.Equal(t, 50, s.CompletionRate)
	assert.Equal(t, 30, s.TotalPoints)
}

func TestMirror_LoadError(t *testing.T) {
	m, api, _ := newTestMirror(t)
	ctx := context.Background()

	api.EXPECT().ListMissions(ctx).Return(nil, ErrConnection)

	assert.ErrorIs(t, m.Load(ctx), ErrConnection)
	notices := m.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeError, notices[0].Kind)
}

func TestMirror_AddMission_Validation(t *testing.T) {
	m, _, _ := newTestMirror(t)

	tests := []struct {
		name string
		req  models.MissionCreateRequest
	}{
		{"missing title", models.MissionCreateRequest{Description: "d", RewardPoints: 10}},
		{"blank description", models.MissionCreateRequest{Title: "t", Description: "  ", RewardPoints: 10}},
		{"zero reward", models.MissionCreateRequest{Title: "t", Description: "d"}},
		{"negative reward", models.MissionCreateRequest{Title: "t", Description: "d", RewardPoints: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.AddMission(tt.req)
			assert.ErrorIs(t, err, ErrInvalidMission)
		})
	}
	assert.Empty(t, m.Missions())
}

func TestMirror_LengthLimits(t *testing.T) {
	m, _, _ := newTestMirror(t)

	long := strings.Repeat("x", models.MaxTitleLength+1)
	_, err := m.AddMission(models.MissionCreateRequest{Title: long, Description: "d", RewardPoints: 10})
	assert.ErrorIs(t, err, ErrMissionTooLong)

	category := strings.Repeat("é", models.MaxCategoryLength+1)
	_, err = m.AddMission(models.MissionCreateRequest{Title: "t", Description: "d", Category: category, RewardPoints: 10})
	assert.ErrorIs(t, err, ErrMissionTooLong)
	assert.Empty(t, m.Missions())

	// multi-byte characters count once
	title := strings.Repeat("é", models.MaxTitleLength)
	mission, err := m.AddMission(models.MissionCreateRequest{Title: title, Description: "d", RewardPoints: 10})
	require.NoError(t, err)

	_, err = m.UpdateMission(mission.ID, models.MissionUpdateRequest{Title: &long})
	assert.ErrorIs(t, err, ErrMissionTooLong)
	assert.Equal(t, title, m.Missions()[0].Title)
}

func TestMirror_AddMission_DefaultCategory(t *testing.T) {
	m, _, _ := newTestMirror(t)

	mission, err := m.AddMission(models.MissionCreateRequest{Title: "Walk", Description: "Walk the dog", RewardPoints: 10})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategory, mission.Category)
	assert.NotEqual(t, uuid.Nil, mission.ID)
	assert.False(t, mission.IsCompleted())
}

func TestMirror_AddMission_Duplicate(t *testing.T) {
	m, _, clock := newTestMirror(t)

	_, err := m.AddMission(readMission())
	require.NoError(t, err)

	clock.Advance(4 * time.Minute)
	_, err = m.AddMission(readMission())
	assert.ErrorIs(t, err, ErrDuplicateMission)

	other := readMission()
	other.Category = "Leisure"
	_, err = m.AddMission(other)
	assert.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = m.AddMission(readMission())
	assert.NoError(t, err)
	assert.Len(t, m.Missions(), 3)
}

func TestMirror_Complete(t *testing.T) {
	m, _, _ := newTestMirror(t)

	mission, err := m.AddMission(readMission())
	require.NoError(t, err)

	done, err := m.Complete(mission.ID)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted())

	s := m.Summary()
	assert.Equal(t, 50, s.TotalPoints)
	assert.Equal(t, 100, s.CompletionRate)

	_, err = m.Complete(mission.ID)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, 50, m.Summary().TotalPoints)

	_, err = m.Complete(uuid.New())
	assert.ErrorIs(t, err, ErrMissionNotFound)
}

func TestMirror_UpdateAndDelete(t *testing.T) {
	m, _, _ := newTestMirror(t)

	mission, err := m.AddMission(readMission())
	require.NoError(t, err)

	_, err = m.UpdateMission(mission.ID, models.MissionUpdateRequest{})
	assert.ErrorIs(t, err, ErrInvalidMission)

	reward := 80
	updated, err := m.UpdateMission(mission.ID, models.MissionUpdateRequest{RewardPoints: &reward})
	require.NoError(t, err)
	assert.Equal(t, 80, updated.RewardPoints)
	assert.Equal(t, "Read", updated.Title)

	_, err = m.UpdateMission(uuid.New(), models.MissionUpdateRequest{RewardPoints: &reward})
	assert.ErrorIs(t, err, ErrMissionNotFound)

	require.NoError(t, m.DeleteMission(mission.ID))
	assert.Empty(t, m.Missions())
	assert.ErrorIs(t, m.DeleteMission(mission.ID), ErrMissionNotFound)
}

func TestMirror_DebouncedSaveSendsLatestState(t *testing.T) {
	m, api, _ := newTestMirror(t)
	ctx := context.Background()
	serverUser := uuid.New()

	var sent models.MissionSyncRequest
	api.EXPECT().
		SyncMissions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.MissionSyncRequest) ([]models.MissionDB, error) {
			sent = req
			out := make([]models.MissionDB, 0, len(req.Missions))
			for _, item := range req.Missions {
				out = append(out, models.MissionDB{ID: *item.ID, UserID: serverUser, Title: item.Title, RewardPoints: item.RewardPoints})
			}
			return out, nil
		}).
		Times(1)

	first, err := m.AddMission(readMission())
	require.NoError(t, err)
	_, err = m.AddMission(models.MissionCreateRequest{Title: "Run", Description: "5k", RewardPoints: 30})
	require.NoError(t, err)
	_, err = m.Complete(first.ID)
	require.NoError(t, err)

	require.NoError(t, m.Flush(ctx))

	require.Len(t, sent.Missions, 2)
	for _, item := range sent.Missions {
		assert.Equal(t, item.Title == "Read", item.Completed)
	}
	for _, mission := range m.Missions() {
		assert.Equal(t, serverUser, mission.UserID)
	}

	// Nothing pending: a second flush does not call the API again.
	require.NoError(t, m.Flush(ctx))
}

func TestMirror_SaveSendsCreationTimes(t *testing.T) {
	m, api, clock := newTestMirror(t)
	start := clock.Now()

	var sent models.MissionSyncRequest
	api.EXPECT().
		SyncMissions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.MissionSyncRequest) ([]models.MissionDB, error) {
			sent = req
			return nil, nil
		})

	_, err := m.AddMission(readMission())
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = m.AddMission(models.MissionCreateRequest{Title: "Run", Description: "5k", RewardPoints: 30})
	require.NoError(t, err)

	require.NoError(t, m.Flush(context.Background()))

	require.Len(t, sent.Missions, 2)
	created := map[string]time.Time{}
	for _, item := range sent.Missions {
		require.NotNil(t, item.CreatedAt)
		created[item.Title] = *item.CreatedAt
	}
	assert.Equal(t, start, created["Read"])
	assert.Equal(t, start.Add(time.Minute), created["Run"])
}

func TestMirror_TimerFiresSave(t *testing.T) {
	m, api, _ := newTestMirror(t, WithDebounce(5*time.Millisecond))

	saved := make(chan models.MissionSyncRequest, 1)
	api.EXPECT().
		SyncMissions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.MissionSyncRequest) ([]models.MissionDB, error) {
			saved <- req
			return nil, nil
		})

	_, err := m.AddMission(readMission())
	require.NoError(t, err)

	select {
	case req := <-saved:
		assert.Len(t, req.Missions, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced save never ran")
	}
}

func TestMirror_NewerMutationCancelsInflightSave(t *testing.T) {
	m, api, _ := newTestMirror(t, WithDebounce(time.Millisecond))
	serverUser := uuid.New()

	started := make(chan struct{})
	gomock.InOrder(
		api.EXPECT().
			SyncMissions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ models.MissionSyncRequest) ([]models.MissionDB, error) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			}),
		api.EXPECT().
			SyncMissions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.MissionSyncRequest) ([]models.MissionDB, error) {
				out := make([]models.MissionDB, 0, len(req.Missions))
				for _, item := range req.Missions {
					out = append(out, models.MissionDB{ID: *item.ID, UserID: serverUser, Title: item.Title})
				}
				return out, nil
			}),
	)

	_, err := m.AddMission(readMission())
	require.NoError(t, err)
	<-started

	_, err = m.AddMission(models.MissionCreateRequest{Title: "Run", Description: "5k", RewardPoints: 30})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		missions := m.Missions()
		return len(missions) == 2 && missions[0].UserID == serverUser && missions[1].UserID == serverUser
	}, 2*time.Second, 5*time.Millisecond)

	for _, n := range m.Notices() {
		assert.NotEqual(t, NoticeError, n.Kind, n.Message)
	}
}

func TestMirror_FlushWaitsForFiredTimer(t *testing.T) {
	m, api, _ := newTestMirror(t, WithDebounce(time.Millisecond))
	serverUser := uuid.New()

	api.EXPECT().
		SyncMissions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.MissionSyncRequest) ([]models.MissionDB, error) {
			time.Sleep(20 * time.Millisecond)
			return []models.MissionDB{{ID: *req.Missions[0].ID, UserID: serverUser, Title: "Read"}}, nil
		})

	_, err := m.AddMission(readMission())
	require.NoError(t, err)

	// The timer fires while the lock is held, so its save has not started
	// when Flush looks at the mirror.
	m.mu.Lock()
	time.Sleep(20 * time.Millisecond)
	flushed := make(chan error, 1)
	go func() { flushed <- m.Flush(context.Background()) }()
	time.Sleep(5 * time.Millisecond)
	m.mu.Unlock()

	select {
	case err := <-flushed:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("flush never returned")
	}
	missions := m.Missions()
	require.Len(t, missions, 1)
	assert.Equal(t, serverUser, missions[0].UserID)
}

func TestMirror_FlushAfterClose(t *testing.T) {
	m, _, _ := newTestMirror(t)

	_, err := m.AddMission(readMission())
	require.NoError(t, err)
	m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, m.Flush(ctx))
}

func TestMirror_SaveErrorBecomesNotice(t *testing.T) {
	m, api, _ := newTestMirror(t)
	ctx := context.Background()

	apiErr := &APIError{Status: http.StatusConflict, Message: "Mission id already in use"}
	api.EXPECT().SyncMissions(gomock.Any(), gomock.Any()).Return(nil, apiErr)

	_, err := m.AddMission(readMission())
	require.NoError(t, err)

	err = m.Flush(ctx)
	assert.True(t, errors.Is(err, apiErr))

	// The local state is kept.
	assert.Len(t, m.Missions(), 1)

	var messages []string
	for _, n := range m.Notices() {
		if n.Kind == NoticeError {
			messages = append(messages, n.Message)
		}
	}
	assert.Equal(t, []string{"Mission id already in use"}, messages)
}

func TestMirror_NoticesExpire(t *testing.T) {
	m, _, clock := newTestMirror(t, WithNoticeTTL(3*time.Second))

	_, err := m.AddMission(readMission())
	require.NoError(t, err)
	require.Len(t, m.Notices(), 1)
	assert.Equal(t, "Mission added", m.Notices()[0].Message)

	clock.Advance(2 * time.Second)
	assert.Len(t, m.Notices(), 1)

	clock.Advance(time.Second)
	assert.Empty(t, m.Notices())
}

func TestMirror_Clear(t *testing.T) {
	m, api, _ := newTestMirror(t)

	api.EXPECT().
		SyncMissions(gomock.Any(), models.MissionSyncRequest{Missions: []models.MissionSyncItem{}}).
		Return(nil, nil)

	_, err := m.AddMission(readMission())
	require.NoError(t, err)
	m.Clear()

	assert.Empty(t, m.Missions())
	assert.Equal(t, 0, m.Summary().TotalMissions)
	require.NoError(t, m.Flush(context.Background()))
}

package client

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/logger"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/stats"
)

//go:generate mockgen -source=mirror.go -destination=mirror_mock.go -package=client

var (
	ErrInvalidMission   = errors.New("title, description and a positive reward are required")
	ErrMissionTooLong   = errors.New("title or category is too long")
	ErrDuplicateMission = errors.New("a similar mission was added recently, edit it instead")
	ErrMissionNotFound  = errors.New("mission not found")
	ErrAlreadyCompleted = errors.New("mission already completed")
)

const (
	DefaultDebounce  = 500 * time.Millisecond
	DefaultNoticeTTL = 3 * time.Second

	// duplicateWindow is how long a title and category pair stays blocked after creation.
	duplicateWindow = 5 * time.Minute
)

// MissionAPI is the part of the API the mirror needs.
type MissionAPI interface {
	ListMissions(ctx context.Context) ([]models.MissionDB, error)
	Profile(ctx context.Context) (*models.Profile, error)
	SyncMissions(ctx context.Context, req models.MissionSyncRequest) ([]models.MissionDB, error)
}

// NoticeKind tells info notices from error notices.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is a short-lived message for the user.
type Notice struct {
	Kind      NoticeKind
	Message   string
	ExpiresAt time.Time
}

// Mirror holds a local copy of the caller's missions. Mutations apply
// locally at once and reach the server through a debounced bulk sync.
type Mirror struct {
	api       MissionAPI
	debounce  time.Duration
	noticeTTL time.Duration
	now       func() time.Time

	mu       sync.Mutex
	missions []models.MissionDB
	profile  *models.Profile
	summary  stats.Summary
	notices  []Notice

	gen      uint64
	timer    *time.Timer
	cancel   context.CancelFunc
	inflight chan struct{}
	lastErr  error
}

// MirrorOpt configures a Mirror.
type MirrorOpt func(*Mirror)

// WithDebounce sets the delay between the last mutation and the save.
func WithDebounce(d time.Duration) MirrorOpt {
	return func(m *Mirror) {
		m.debounce = d
	}
}

// WithNoticeTTL sets how long notices stay visible.
func WithNoticeTTL(d time.Duration) MirrorOpt {
	return func(m *Mirror) {
		m.noticeTTL = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MirrorOpt {
	return func(m *Mirror) {
		m.now = now
	}
}

// NewMirror creates an empty mirror backed by api.
func NewMirror(api MissionAPI, opts ...MirrorOpt) *Mirror {
	m := &Mirror{
		api:       api,
		debounce:  DefaultDebounce,
		noticeTTL: DefaultNoticeTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.summary = stats.Compute(nil)
	return m
}

// Load replaces the mirror with the server state.
func (m *Mirror) Load(ctx context.Context) error {
	missions, err := m.api.ListMissions(ctx)
	if err != nil {
		m.notifyError(err)
		return err
	}
	profile, err := m.api.Profile(ctx)
	if err != nil {
		m.notifyError(err)
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.missions = missions
	m.profile = profile
	m.recompute()
	return nil
}

// AddMission validates req and appends a pending mission. A mission
// with the same title and category created within the last five
// minutes is rejected with ErrDuplicateMission.
func (m *Mirror) AddMission(req models.MissionCreateRequest) (models.MissionDB, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)
	if req.Title == "" || req.Description == "" || req.RewardPoints <= 0 {
		return models.MissionDB{}, ErrInvalidMission
	}
	if tooLong(&req.Title, &req.Category) {
		return models.MissionDB{}, ErrMissionTooLong
	}
	if req.Category == "" {
		req.Category = models.DefaultCategory
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for _, existing := range m.missions {
		if existing.Title == req.Title && existing.Category == req.Category &&
			now.Sub(existing.CreatedAt) < duplicateWindow {
			return models.MissionDB{}, ErrDuplicateMission
		}
	}

	mission := models.MissionDB{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		RewardPoints: req.RewardPoints,
		CreatedAt:    now,
	}
	if m.profile != nil {
		mission.UserID = m.profile.UserID
	}
	m.missions = append([]models.MissionDB{mission}, m.missions...)
	m.mutated("Mission added")
	return mission, nil
}

// Complete moves a pending mission to completed. Completion is final.
func (m *Mirror) Complete(id uuid.UUID) (models.MissionDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return models.MissionDB{}, ErrMissionNotFound
	}
	if m.missions[i].IsCompleted() {
		return models.MissionDB{}, ErrAlreadyCompleted
	}
	at := m.now()
	m.missions[i].CompletedAt = &at
	m.mutated("Mission completed")
	return m.missions[i], nil
}

// UpdateMission applies the set fields of req.
func (m *Mirror) UpdateMission(id uuid.UUID, req models.MissionUpdateRequest) (models.MissionDB, error) {
	patch := req.Patch()
	if patch.IsEmpty() ||
		(patch.RewardPoints != nil && *patch.RewardPoints <= 0) ||
		(patch.Title != nil && strings.TrimSpace(*patch.Title) == "") ||
		(patch.Description != nil && strings.TrimSpace(*patch.Description) == "") {
		return models.MissionDB{}, ErrInvalidMission
	}
	if tooLong(patch.Title, patch.Category) {
		return models.MissionDB{}, ErrMissionTooLong
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return models.MissionDB{}, ErrMissionNotFound
	}
	mission := &m.missions[i]
	if patch.Title != nil {
		mission.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		mission.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Category != nil {
		mission.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.RewardPoints != nil {
		mission.RewardPoints = *patch.RewardPoints
	}
	m.mutated("Mission updated")
	return *mission, nil
}

// DeleteMission removes a mission.
func (m *Mirror) DeleteMission(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return ErrMissionNotFound
	}
	m.missions = slices.Delete(m.missions, i, i+1)
	m.mutated("Mission deleted")
	return nil
}

// Clear removes every mission.
func (m *Mirror) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.missions = nil
	m.mutated("All missions cleared")
}

// Missions returns a copy of the mirrored missions.
func (m *Mirror) Missions() []models.MissionDB {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.missions)
}

// Summary returns the summary derived from the mirrored missions.
func (m *Mirror) Summary() stats.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary
}

// Profile returns the profile fetched by Load, or nil.
func (m *Mirror) Profile() *models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil
	}
	p := *m.profile
	return &p
}

// Notices returns the notices that have not expired yet.
func (m *Mirror) Notices() []Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.notices = slices.DeleteFunc(m.notices, func(n Notice) bool {
		return !now.Before(n.ExpiresAt)
	})
	return slices.Clone(m.notices)
}

// Flush runs a pending save at once and waits for the current save to
// finish. It returns the error of that save.
func (m *Mirror) Flush(ctx context.Context) error {
	m.mu.Lock()
	pending := m.timer != nil && m.timer.Stop()
	gen := m.gen
	done := m.inflight
	m.mu.Unlock()

	if pending {
		m.save(ctx, gen, done)
	} else if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Close stops the pending save and cancels the one in flight.
func (m *Mirror) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.stopTimer()
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Mirror) index(id uuid.UUID) int {
	return slices.IndexFunc(m.missions, func(mission models.MissionDB) bool {
		return mission.ID == id
	})
}

func (m *Mirror) recompute() {
	m.summary = stats.Compute(m.missions)
}

// mutated recomputes the summary and schedules a save. A newer
// mutation supersedes the pending save and cancels the one in flight.
// Callers hold m.mu.
func (m *Mirror) mutated(msg string) {
	m.recompute()
	m.addNotice(NoticeInfo, msg)

	m.gen++
	gen := m.gen
	m.stopTimer()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	done := make(chan struct{})
	m.inflight = done
	m.timer = time.AfterFunc(m.debounce, func() {
		m.save(context.Background(), gen, done)
	})
}

// stopTimer stops the armed save. A save whose timer was stopped never
// runs, so its done channel is closed here. Callers hold m.mu.
func (m *Mirror) stopTimer() {
	if m.timer != nil && m.timer.Stop() {
		close(m.inflight)
	}
}

// save sends the mirror state of generation gen and closes done when it
// returns.
func (m *Mirror) save(parent context.Context, gen uint64, done chan struct{}) {
	defer close(done)

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(parent)
	m.cancel = cancel
	req := m.syncRequest()
	m.mu.Unlock()

	defer cancel()

	missions, err := m.api.SyncMissions(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		logger.Log.Debugw("discarding superseded save", "generation", gen)
		return
	}
	m.lastErr = err
	if err != nil {
		m.notifyErrorLocked(err)
		return
	}
	m.missions = missions
	m.recompute()
}

func (m *Mirror) syncRequest() models.MissionSyncRequest {
	items := make([]models.MissionSyncItem, 0, len(m.missions))
	for _, mission := range m.missions {
		id, createdAt := mission.ID, mission.CreatedAt
		items = append(items, models.MissionSyncItem{
			ID:           &id,
			CreatedAt:    &createdAt,
			Title:        mission.Title,
			Description:  mission.Description,
			Category:     mission.Category,
			RewardPoints: mission.RewardPoints,
			Completed:    mission.IsCompleted(),
		})
	}
	return models.MissionSyncRequest{Missions: items}
}

func (m *Mirror) addNotice(kind NoticeKind, msg string) {
	m.notices = append(m.notices, Notice{
		Kind:      kind,
		Message:   msg,
		ExpiresAt: m.now().Add(m.noticeTTL),
	})
}

func (m *Mirror) notifyError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifyErrorLocked(err)
}

func (m *Mirror) notifyErrorLocked(err error) {
	logger.Log.Warnw("mirror request failed", "error", err)
	m.addNotice(NoticeError, ErrorMessage(err))
}

// tooLong reports whether title or category exceed their column limits.
// Nil values are not checked.
func tooLong(title, category *string) bool {
	return (title != nil && utf8.RuneCountInString(strings.TrimSpace(*title)) > models.MaxTitleLength) ||
		(category != nil && utf8.RuneCountInString(strings.TrimSpace(*category)) > models.MaxCategoryLength)
}

// ErrorMessage turns an API error into text for the user.
func ErrorMessage(err error) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrConnection):
		return "Server unreachable, changes are kept locally"
	case errors.Is(err, context.Canceled):
		return "Save cancelled"
	default:
		return err.Error()
	}
}

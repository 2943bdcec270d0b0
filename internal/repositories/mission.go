package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-missions/internal/models"
)

const missionColumns = `id, user_id, title, description, category, reward_points, created_at, completed_at`

// MissionReadRepository handles mission read operations.
// Every query is scoped to the owning user.
type MissionReadRepository struct {
	db *sqlx.DB
}

func NewMissionReadRepository(db *sqlx.DB) *MissionReadRepository {
	return &MissionReadRepository{db: db}
}

// ListByUser returns the missions of userID, newest first.
func (r *MissionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MissionDB, error) {
	const query = `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`
	return r.list(ctx, query, userID)
}

// LockByUser is ListByUser taking row locks; it must run inside a transaction.
func (r *MissionReadRepository) LockByUser(ctx context.Context, userID uuid.UUID) ([]models.MissionDB, error) {
	const query = `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		FOR UPDATE
	`
	return r.list(ctx, query, userID)
}

func (r *MissionReadRepository) list(ctx context.Context, query string, userID uuid.UUID) ([]models.MissionDB, error) {
	missions := []models.MissionDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &missions, query, userID)

	logQuery(ctx, query, []any{userID}, len(missions), err)

	if err != nil {
		return nil, err
	}
	return missions, nil
}

// GetByID returns mission id owned by userID, or nil when missing or owned by someone else.
func (r *MissionReadRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error) {
	const query = `SELECT ` + missionColumns + ` FROM missions WHERE id = $1 AND user_id = $2`
	return r.getOne(ctx, query, id, userID)
}

// GetByIDForUpdate is GetByID taking a row lock; it must run inside a transaction.
// Concurrent completions of the same mission serialize on this lock.
func (r *MissionReadRepository) GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error) {
	const query = `SELECT ` + missionColumns + ` FROM missions WHERE id = $1 AND user_id = $2 FOR UPDATE`
	return r.getOne(ctx, query, id, userID)
}

func (r *MissionReadRepository) getOne(ctx context.Context, query string, id, userID uuid.UUID) (*models.MissionDB, error) {
	var m models.MissionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &m, query, id, userID)

	logQuery(ctx, query, []any{id, userID}, m.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MissionWriteRepository handles mission write operations
type MissionWriteRepository struct {
	db *sqlx.DB
}

func NewMissionWriteRepository(db *sqlx.DB) *MissionWriteRepository {
	return &MissionWriteRepository{db: db}
}

// Save inserts m as a pending mission and fills its creation time.
// A zero CreatedAt is set to the statement time, so missions saved in
// one transaction keep their insertion order.
func (r *MissionWriteRepository) Save(ctx context.Context, m *models.MissionDB) error {
	const query = `
		INSERT INTO missions (id, user_id, title, description, category, reward_points, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7::timestamptz, clock_timestamp()), NULL)
		RETURNING created_at
	`
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	var createdAt *time.Time
	if !m.CreatedAt.IsZero() {
		createdAt = &m.CreatedAt
	}
	args := []any{m.ID, m.UserID, m.Title, m.Description, m.Category, m.RewardPoints, createdAt}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&m.CreatedAt)
	m.CompletedAt = nil

	logQuery(ctx, query, args, m.CreatedAt, err)

	return translate(err)
}

// Update applies the non-nil fields of patch to mission id of userID and
// returns the result, or nil when the mission is missing or not owned.
func (r *MissionWriteRepository) Update(ctx context.Context, userID, id uuid.UUID, patch models.MissionPatch) (*models.MissionDB, error) {
	const query = `
		UPDATE missions
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    category = COALESCE($5, category),
		    reward_points = COALESCE($6, reward_points)
		WHERE id = $1 AND user_id = $2
		RETURNING ` + missionColumns
	args := []any{id, userID, patch.Title, patch.Description, patch.Category, patch.RewardPoints}
	return r.returning(ctx, query, args)
}

// MarkCompleted stamps completed_at on a pending mission. It returns nil
// when the mission is missing, not owned or already completed.
func (r *MissionWriteRepository) MarkCompleted(ctx context.Context, userID, id uuid.UUID, at time.Time) (*models.MissionDB, error) {
	const query = `
		UPDATE missions
		SET completed_at = $3
		WHERE id = $1 AND user_id = $2 AND completed_at IS NULL
		RETURNING ` + missionColumns
	return r.returning(ctx, query, []any{id, userID, at})
}

// Delete removes mission id of userID and returns it, or nil when missing or not owned.
func (r *MissionWriteRepository) Delete(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error) {
	const query = `DELETE FROM missions WHERE id = $1 AND user_id = $2 RETURNING ` + missionColumns
	return r.returning(ctx, query, []any{id, userID})
}

func (r *MissionWriteRepository) returning(ctx context.Context, query string, args []any) (*models.MissionDB, error) {
	var m models.MissionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &m, query, args...)

	logQuery(ctx, query, args, m.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// CompletionWriteRepository records mission completions.
type CompletionWriteRepository struct {
	db *sqlx.DB
}

func NewCompletionWriteRepository(db *sqlx.DB) *CompletionWriteRepository {
	return &CompletionWriteRepository{db: db}
}

// Save inserts c. A second record for the same mission yields ErrUniqueViolation.
func (r *CompletionWriteRepository) Save(ctx context.Context, c *models.CompletionDB) error {
	const query = `
		INSERT INTO mission_completions (id, user_id, mission_id, completed_at, xp_earned)
		VALUES ($1, $2, $3, $4, $5)
	`
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	args := []any{c.ID, c.UserID, c.MissionID, c.CompletedAt, c.XPEarned}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	return translate(err)
}

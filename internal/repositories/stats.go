package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-missions/internal/models"
)

// StatsRepository maintains the per-user stats aggregate.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Create inserts an empty aggregate for userID. Existing rows are left untouched.
func (r *StatsRepository) Create(ctx context.Context, userID uuid.UUID) error {
	const query = `
		INSERT INTO user_stats (user_id, total_xp, missions_completed)
		VALUES ($1, 0, 0)
		ON CONFLICT (user_id) DO NOTHING
	`
	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{userID}, rowsAffected, err)

	return err
}

// ApplyCompletion adds xp and one completed mission to the aggregate of userID,
// creating the row when missing.
func (r *StatsRepository) ApplyCompletion(ctx context.Context, userID uuid.UUID, xp int) error {
	const query = `
		INSERT INTO user_stats (user_id, total_xp, missions_completed)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id)
		DO UPDATE SET total_xp = user_stats.total_xp + EXCLUDED.total_xp,
		              missions_completed = user_stats.missions_completed + 1
		RETURNING total_xp
	`
	var totalXP int
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &totalXP, query, userID, xp)

	logQuery(ctx, query, []any{userID, xp}, totalXP, err)

	return err
}

// GetByUserID returns the aggregate of userID, or nil when there is none.
func (r *StatsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StatsDB, error) {
	const query = `
		SELECT user_id, total_xp, missions_completed
		FROM user_stats
		WHERE user_id = $1
	`
	var s models.StatsDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &s, query, userID)

	logQuery(ctx, query, []any{userID}, s, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

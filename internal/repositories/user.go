package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-missions/internal/models"
)

const userColumns = `id, name, email, password_hash, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, arg)

	logQuery(ctx, query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile returns the user joined with its stats aggregate, or nil when the user does not exist.
func (r *UserReadRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	const query = `
		SELECT u.id AS user_id, u.name, u.email,
		       COALESCE(s.total_xp, 0) AS total_xp,
		       COALESCE(s.missions_completed, 0) AS missions_completed
		FROM users u
		LEFT JOIN user_stats s ON s.user_id = u.id
		WHERE u.id = $1
	`

	var profile models.Profile
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &profile, query, id)

	logQuery(ctx, query, []any{id}, profile, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	profile.Fill()
	return &profile, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts user and fills its timestamps. A taken email yields ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	row := executor(ctx, r.db).QueryRowxContext(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash)
	err := row.Scan(&user.CreatedAt, &user.UpdatedAt)

	// password hash is never logged
	logQuery(ctx, query, []any{user.ID, user.Name, user.Email}, user.ID, err)

	return translate(err)
}

// Update applies the non-nil fields of patch and returns the updated user,
// or nil when the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET name = COALESCE($2, name),
		    email = COALESCE($3, email),
		    password_hash = COALESCE($4, password_hash),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, id, patch.Name, patch.Email, patch.PasswordHash)

	logQuery(ctx, query, []any{id, patch.Name, patch.Email, patch.PasswordHash != nil}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Delete removes the user; stats, missions and completions go with it
// through ON DELETE CASCADE. Returns nil when the user does not exist.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, id)

	logQuery(ctx, query, []any{id}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

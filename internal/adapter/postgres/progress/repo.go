// Package progress implements the UserProgress repository using PostgreSQL.
// Writes are guarded by a version column.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Repo provides user progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `user_id, timezone, current_streak, last_activity_date, xp, level, completed_lessons, version, updated_at`

const getSQL = `SELECT ` + columns + ` FROM user_progress WHERE user_id = $1`

const createSQL = `
INSERT INTO user_progress (user_id, timezone, current_streak, last_activity_date, xp, level, completed_lessons, version, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8)
RETURNING ` + columns

const updateSQL = `
UPDATE user_progress
SET timezone = $3, current_streak = $4, last_activity_date = $5, xp = $6, level = $7,
    completed_lessons = $8, version = version + 1, updated_at = $9
WHERE user_id = $1 AND version = $2
RETURNING ` + columns

const setTimezoneSQL = `
INSERT INTO user_progress (user_id, timezone, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE
SET timezone = EXCLUDED.timezone, version = user_progress.version + 1, updated_at = EXCLUDED.updated_at`

const resetSQL = `
UPDATE user_progress
SET current_streak = 0, last_activity_date = NULL, xp = 0, level = 1,
    completed_lessons = '{}', version = version + 1, updated_at = $2
WHERE user_id = $1`

// Get returns the user's progress or domain.ErrNotFound if the user never
// reviewed anything nor set a timezone.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	p, err := scanProgress(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "user_progress", userID)
	}
	return &p, nil
}

// Create stores the first progress row of a user with version 1.
func (r *Repo) Create(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		p.UserID, p.Timezone, p.CurrentStreak, utcPtr(p.LastActivityDate), p.XP, p.Level,
		completedOrEmpty(p.CompletedLessons), time.Now().UTC(),
	)
	created, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_progress", p.UserID)
	}
	return &created, nil
}

// Update writes p if the stored version still equals p.Version.
// A stale version yields domain.ErrConflict.
func (r *Repo) Update(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		p.UserID, p.Version, p.Timezone, p.CurrentStreak, utcPtr(p.LastActivityDate), p.XP, p.Level,
		completedOrEmpty(p.CompletedLessons), time.Now().UTC(),
	)
	updated, err := scanProgress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user_progress %s version %d: %w", p.UserID, p.Version, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "user_progress", p.UserID)
	}
	return &updated, nil
}

// SetTimezone stores the user's timezone, creating the progress row if needed.
func (r *Repo) SetTimezone(ctx context.Context, userID uuid.UUID, timezone string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, setTimezoneSQL, userID, timezone, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "user_progress", userID)
	}
	return nil
}

// Reset zeroes streak, XP, level and completed lessons. The timezone is kept.
// A user without a progress row is left untouched.
func (r *Repo) Reset(ctx context.Context, userID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, resetSQL, userID, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "user_progress", userID)
	}
	return nil
}

func scanProgress(row pgx.Row) (domain.UserProgress, error) {
	var p domain.UserProgress
	err := row.Scan(
		&p.UserID, &p.Timezone, &p.CurrentStreak, &p.LastActivityDate, &p.XP, &p.Level,
		&p.CompletedLessons, &p.Version, &p.UpdatedAt,
	)
	if err != nil {
		return domain.UserProgress{}, err
	}
	p.LastActivityDate = utcPtr(p.LastActivityDate)
	p.CompletedLessons = completedOrEmpty(p.CompletedLessons)
	return p, nil
}

func completedOrEmpty(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

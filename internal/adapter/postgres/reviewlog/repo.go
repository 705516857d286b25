// Package reviewlog implements the append-only ReviewLog repository using PostgreSQL.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO review_logs (id, user_id, lesson_id, rating, reviewed_at)
VALUES ($1, $2, $3, $4, $5)`

const countSinceSQL = `SELECT count(*) FROM review_logs WHERE user_id = $1 AND reviewed_at >= $2`

const deleteByUserSQL = `DELETE FROM review_logs WHERE user_id = $1`

// Create appends a review log.
func (r *Repo) Create(ctx context.Context, rl domain.ReviewLog) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, createSQL,
		rl.ID, rl.UserID, rl.LessonID, rl.Rating, rl.ReviewedAt.UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "review_log", rl.ID)
	}
	return nil
}

// History returns the user's review logs matching filter, newest first.
func (r *Repo) History(ctx context.Context, userID uuid.UUID, filter domain.ReviewHistoryFilter) ([]domain.ReviewLog, error) {
	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	q := postgres.Builder().
		Select("id", "user_id", "lesson_id", "rating", "reviewed_at").
		From("review_logs").
		Where(squirrel.Eq{"user_id": userID})

	if filter.LessonID != nil {
		q = q.Where(squirrel.Eq{"lesson_id": *filter.LessonID})
	}
	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"reviewed_at": filter.From.UTC()})
	}
	if filter.To != nil {
		q = q.Where(squirrel.Lt{"reviewed_at": filter.To.UTC()})
	}

	sql, args, err := q.OrderBy("reviewed_at DESC", "id").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get review history: %w", err)
	}
	defer rows.Close()

	logs := []domain.ReviewLog{}
	for rows.Next() {
		var rl domain.ReviewLog
		if err := rows.Scan(&rl.ID, &rl.UserID, &rl.LessonID, &rl.Rating, &rl.ReviewedAt); err != nil {
			return nil, fmt.Errorf("scan review_log: %w", err)
		}
		rl.ReviewedAt = rl.ReviewedAt.UTC()
		logs = append(logs, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review_logs: %w", err)
	}

	return logs, nil
}

// CountSince returns the number of reviews the user made at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countSinceSQL, userID, since.UTC()).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews since: %w", err)
	}
	return count, nil
}

// DeleteByUser removes the user's whole review history.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteByUserSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "review_logs of user", userID)
	}
	return int(tag.RowsAffected()), nil
}

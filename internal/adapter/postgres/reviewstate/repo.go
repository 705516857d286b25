// Package reviewstate implements the ReviewState repository using PostgreSQL.
// Each row also carries the flat card record as JSONB for readers outside
// this service.
package reviewstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/review/fsrs"
)

const defaultDueLimit = 100

// Repo provides review state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, user_id, lesson_id, state, step, stability, difficulty, due, last_review,
       reps, lapses, version, created_at, updated_at`

const getSQL = `SELECT ` + columns + `
FROM review_states
WHERE user_id = $1 AND lesson_id = $2`

const listByUserSQL = `SELECT ` + columns + `
FROM review_states
WHERE user_id = $1
ORDER BY due ASC, lesson_id`

const countDueSQL = `SELECT count(*) FROM review_states WHERE user_id = $1 AND due <= $2`

const overdueByUserSQL = `
SELECT user_id, count(*), min(due)
FROM review_states
WHERE due <= $1
GROUP BY user_id
ORDER BY user_id`

const insertSQL = `
INSERT INTO review_states (id, user_id, lesson_id, state, step, stability, difficulty, due, last_review,
                           reps, lapses, card_record, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, $13, $13)
RETURNING ` + columns

// updateSQL only matches when the stored version equals the caller's snapshot.
const updateSQL = `
UPDATE review_states
SET state = $3, step = $4, stability = $5, difficulty = $6, due = $7, last_review = $8,
    reps = $9, lapses = $10, card_record = $11, version = version + 1, updated_at = $12
WHERE id = $1 AND version = $2
RETURNING ` + columns

const deleteByUserSQL = `DELETE FROM review_states WHERE user_id = $1`

// Get returns the review state of a (user, lesson) pair.
// Returns domain.ErrNotFound if the lesson was never reviewed by the user.
func (r *Repo) Get(ctx context.Context, userID, lessonID uuid.UUID) (*domain.ReviewState, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, userID, lessonID)

	rs, err := scanState(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_state", lessonID)
	}
	return &rs, nil
}

// ListByUser returns every review state of the user, earliest due first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReviewState, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list review_states: %w", err)
	}
	return collectStates(rows)
}

// ListDue returns the states due at or before now, earliest first.
// A non-positive limit uses the default.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.ReviewState, error) {
	if limit <= 0 {
		limit = defaultDueLimit
	}

	sql, args, err := postgres.Builder().
		Select(columns).
		From("review_states").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.LtOrEq{"due": now}).
		OrderBy("due ASC", "lesson_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list due review_states: %w", err)
	}
	return collectStates(rows)
}

// CountDue returns how many of the user's lessons are due at or before now.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countDueSQL, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due review_states: %w", err)
	}
	return count, nil
}

// OverdueByUser returns, for every user with at least one due lesson, the
// number of due lessons and the oldest due time.
func (r *Repo) OverdueByUser(ctx context.Context, now time.Time) ([]domain.OverdueSummary, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, overdueByUserSQL, now)
	if err != nil {
		return nil, fmt.Errorf("overdue review_states: %w", err)
	}
	defer rows.Close()

	summaries := []domain.OverdueSummary{}
	for rows.Next() {
		var s domain.OverdueSummary
		if err := rows.Scan(&s.UserID, &s.DueCount, &s.OldestDue); err != nil {
			return nil, fmt.Errorf("scan overdue summary: %w", err)
		}
		s.OldestDue = s.OldestDue.UTC()
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overdue summaries: %w", err)
	}

	return summaries, nil
}

// Create inserts the first review state of a (user, lesson) pair with version 1.
// A concurrent first review of the same pair surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rs domain.ReviewState) (*domain.ReviewState, error) {
	record, err := cardRecord(rs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertSQL,
		rs.ID, rs.UserID, rs.LessonID, string(rs.State), rs.Step, rs.Stability, rs.Difficulty,
		rs.Due.UTC(), utcPtr(rs.LastReview), rs.Reps, rs.Lapses, record, now,
	)

	created, err := scanState(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_state", rs.LessonID)
	}
	return &created, nil
}

// Update writes rs if the stored version still equals rs.Version and returns
// the row with the incremented version. A stale version yields domain.ErrConflict.
func (r *Repo) Update(ctx context.Context, rs domain.ReviewState) (*domain.ReviewState, error) {
	record, err := cardRecord(rs)
	if err != nil {
		return nil, err
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		rs.ID, rs.Version, string(rs.State), rs.Step, rs.Stability, rs.Difficulty,
		rs.Due.UTC(), utcPtr(rs.LastReview), rs.Reps, rs.Lapses, record, time.Now().UTC(),
	)

	updated, err := scanState(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("review_state %s version %d: %w", rs.ID, rs.Version, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "review_state", rs.ID)
	}
	return &updated, nil
}

// DeleteByUser removes all review states of the user and returns how many were removed.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteByUserSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "review_states of user", userID)
	}
	return int(tag.RowsAffected()), nil
}

func cardRecord(rs domain.ReviewState) ([]byte, error) {
	card := fsrs.Card{
		State:      rs.State,
		Step:       rs.Step,
		Stability:  rs.Stability,
		Difficulty: rs.Difficulty,
		Due:        rs.Due,
		LastReview: rs.LastReview,
		Reps:       rs.Reps,
		Lapses:     rs.Lapses,
	}
	b, err := json.Marshal(card.ToRecord())
	if err != nil {
		return nil, fmt.Errorf("marshal card_record: %w", err)
	}
	return b, nil
}

func scanState(row pgx.Row) (domain.ReviewState, error) {
	var (
		rs    domain.ReviewState
		state string
	)
	err := row.Scan(
		&rs.ID, &rs.UserID, &rs.LessonID, &state, &rs.Step, &rs.Stability, &rs.Difficulty,
		&rs.Due, &rs.LastReview, &rs.Reps, &rs.Lapses, &rs.Version, &rs.CreatedAt, &rs.UpdatedAt,
	)
	if err != nil {
		return domain.ReviewState{}, err
	}

	rs.State = domain.CardState(state)
	rs.Due = rs.Due.UTC()
	rs.LastReview = utcPtr(rs.LastReview)
	return rs, nil
}

func collectStates(rows pgx.Rows) ([]domain.ReviewState, error) {
	defer rows.Close()

	states := []domain.ReviewState{}
	for rows.Next() {
		rs, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review_state: %w", err)
		}
		states = append(states, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review_states: %w", err)
	}
	return states, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

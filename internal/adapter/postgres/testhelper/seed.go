package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// SeedLesson inserts a lesson with the given category.
func SeedLesson(t *testing.T, pool *pgxpool.Pool, category domain.LessonCategory) domain.Lesson {
	t.Helper()

	lesson := domain.Lesson{
		ID:        uuid.New(),
		Title:     "Lesson " + uuid.New().String()[:8],
		Category:  category,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lessons (id, title, category, section_id, order_index, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		lesson.ID, lesson.Title, string(lesson.Category), lesson.SectionID, lesson.OrderIndex, lesson.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLesson: %v", err)
	}

	return lesson
}

// SeedReviewState inserts a review state for (userID, lessonID) due at due.
func SeedReviewState(t *testing.T, pool *pgxpool.Pool, userID, lessonID uuid.UUID, due time.Time) domain.ReviewState {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	last := due.Add(-24 * time.Hour).UTC().Truncate(time.Microsecond)
	rs := domain.ReviewState{
		ID:         uuid.New(),
		UserID:     userID,
		LessonID:   lessonID,
		State:      domain.CardStateReview,
		Stability:  3.173,
		Difficulty: 5.28,
		Due:        due.UTC().Truncate(time.Microsecond),
		LastReview: &last,
		Reps:       1,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_states (id, user_id, lesson_id, state, step, stability, difficulty, due, last_review,
		                            reps, lapses, card_record, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9, 0, '{}'::jsonb, 1, $10, $10)`,
		rs.ID, rs.UserID, rs.LessonID, string(rs.State), rs.Stability, rs.Difficulty, rs.Due, rs.LastReview, rs.Reps, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewState: %v", err)
	}

	return rs
}

// Package lesson implements read access to the lesson catalog.
package lesson

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Repo reads lessons from PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lesson repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, title, category, section_id, order_index, created_at
FROM lessons
WHERE id = $1`

// GetByID returns a lesson or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	l, err := scanLesson(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "lesson", id)
	}
	return &l, nil
}

func scanLesson(row pgx.Row) (domain.Lesson, error) {
	var (
		l        domain.Lesson
		category string
	)
	if err := row.Scan(&l.ID, &l.Title, &category, &l.SectionID, &l.OrderIndex, &l.CreatedAt); err != nil {
		return domain.Lesson{}, err
	}
	l.Category = domain.NormalizeCategory(category)
	return l, nil
}

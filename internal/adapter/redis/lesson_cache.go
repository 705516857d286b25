package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

const lessonKeyPrefix = "lesson:"

type lessonSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
}

// LessonCache is a read-through cache in front of the lesson catalog.
// Redis failures degrade to reading the source directly.
type LessonCache struct {
	rdb    goredis.Cmdable
	source lessonSource
	ttl    time.Duration
	log    *slog.Logger
}

// NewLessonCache creates a lesson cache over source.
func NewLessonCache(log *slog.Logger, rdb goredis.Cmdable, source lessonSource, ttl time.Duration) *LessonCache {
	return &LessonCache{
		rdb:    rdb,
		source: source,
		ttl:    ttl,
		log:    log.With("component", "lesson_cache"),
	}
}

// GetByID returns the lesson from the cache, loading and storing it on a miss.
// Missing lessons are not cached.
func (c *LessonCache) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	key := lessonKey(id)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var l domain.Lesson
		if err := json.Unmarshal(raw, &l); err == nil {
			return &l, nil
		}
		c.log.WarnContext(ctx, "bad cached lesson", slog.String("lesson_id", id.String()))
	case !errors.Is(err, goredis.Nil):
		c.log.WarnContext(ctx, "lesson cache get", slog.String("lesson_id", id.String()), slog.String("error", err.Error()))
	}

	l, err := c.source.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(l); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.WarnContext(ctx, "lesson cache set", slog.String("lesson_id", id.String()), slog.String("error", err.Error()))
		}
	}

	return l, nil
}

func lessonKey(id uuid.UUID) string {
	return lessonKeyPrefix + id.String()
}

package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)
	Create(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error)
	Update(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error)
	SetTimezone(ctx context.Context, userID uuid.UUID, timezone string) error
	Reset(ctx context.Context, userID uuid.UUID) error
}

type reviewStateRepo interface {
	Get(ctx context.Context, userID, lessonID uuid.UUID) (*domain.ReviewState, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReviewState, error)
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.ReviewState, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	Create(ctx context.Context, rs domain.ReviewState) (*domain.ReviewState, error)
	Update(ctx context.Context, rs domain.ReviewState) (*domain.ReviewState, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, rl domain.ReviewLog) error
	History(ctx context.Context, userID uuid.UUID, filter domain.ReviewHistoryFilter) ([]domain.ReviewLog, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type lessonReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service applies review events to the memory model, streak and XP state of
// a user and exposes the resulting state.
type Service struct {
	progress progressRepo
	states   reviewStateRepo
	logs     reviewLogRepo
	lessons  lessonReader
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	states reviewStateRepo,
	logs reviewLogRepo,
	lessons lessonReader,
	tx txManager,
) *Service {
	return &Service{
		progress: progress,
		states:   states,
		logs:     logs,
		lessons:  lessons,
		tx:       tx,
		log:      log.With("service", "review"),
		now:      time.Now,
	}
}

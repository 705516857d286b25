package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/lesson"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/reviewstate"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/redis"
	"github.com/heartmarshall/kotoba-backend/internal/auth"
	"github.com/heartmarshall/kotoba-backend/internal/config"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/reminder"
	"github.com/heartmarshall/kotoba-backend/internal/service/review"
	"github.com/heartmarshall/kotoba-backend/internal/transport/middleware"
	"github.com/heartmarshall/kotoba-backend/internal/transport/rest"
)

// Run loads configuration, connects to Postgres and (optionally) Redis,
// starts the HTTP server and background jobs, and blocks until ctx is
// cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("redis", cfg.Redis.Enabled()),
		slog.Bool("jobs", cfg.Jobs.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var rdb *goredis.Client
	if cfg.Redis.Enabled() {
		rdb, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	router, reminders := newHandler(*cfg, logger, pool, rdb)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if cfg.Jobs.Enabled && reminders != nil {
		jobs := NewJobs(logger, reminders, cfg.Jobs.ReminderInterval)
		if err := jobs.Start(ctx); err != nil {
			return err
		}
		defer jobs.Stop()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// newHandler wires repositories, services and transport. rdb may be nil, in
// which case lessons are read straight from Postgres and reminders are
// unavailable (the returned service is nil).
func newHandler(cfg config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *goredis.Client) (http.Handler, *reminder.Service) {
	health := map[string]rest.Pinger{"database": rest.PingFunc(pool.Ping)}

	var (
		lessons   lessonSource = lesson.New(pool)
		reminders *reminder.Service
	)

	if rdb != nil {
		health["redis"] = rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		lessons = redis.NewLessonCache(logger, rdb, lessons, cfg.Redis.LessonTTL)
		reminders = reminder.NewService(logger, reviewstate.New(pool), redis.NewReminderPublisher(rdb, cfg.Redis.ReminderChannel))
	}

	reviewSvc := review.NewService(
		logger,
		progress.New(pool),
		reviewstate.New(pool),
		reviewlog.New(pool),
		lessons,
		postgres.NewTxManager(pool),
	)

	admin := rest.NewAdminHandler(nil, logger)
	if reminders != nil {
		admin = rest.NewAdminHandler(reminders, logger)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Review:   rest.NewReviewHandler(reviewSvc, logger),
		Progress: rest.NewProgressHandler(reviewSvc, logger),
		Admin:    admin,
		Health:   rest.NewHealthHandler(health, BuildVersion()),
	}, middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	))

	return router, reminders
}

// lessonSource is satisfied by both the Postgres repo and the Redis cache.
type lessonSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
}

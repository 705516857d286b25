// Command remind-overdue publishes one overdue reminder per user with due
// reviews and exits. It is meant for an external cron when the in-process
// job scheduler is disabled.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/reviewstate"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/redis"
	"github.com/heartmarshall/kotoba-backend/internal/app"
	"github.com/heartmarshall/kotoba-backend/internal/config"
	"github.com/heartmarshall/kotoba-backend/internal/service/reminder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Redis.Enabled() {
		logger.Error("redis.addr is required to publish reminders")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer rdb.Close()

	svc := reminder.NewService(logger, reviewstate.New(pool), redis.NewReminderPublisher(rdb, cfg.Redis.ReminderChannel))

	notified, err := svc.CheckOverdue(ctx)
	if err != nil {
		logger.Error("overdue check failed",
			slog.String("error", err.Error()),
			slog.Int("notified", notified),
		)
		os.Exit(1)
	}

	logger.Info("overdue check completed", slog.Int("notified", notified))
}

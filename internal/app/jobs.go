package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type overdueChecker interface {
	CheckOverdue(ctx context.Context) (int, error)
}

// Jobs runs periodic background work on a UTC scheduler.
type Jobs struct {
	scheduler *gocron.Scheduler
	reminders overdueChecker
	interval  time.Duration
	log       *slog.Logger
}

// NewJobs creates the scheduler. Nothing runs until Start.
func NewJobs(log *slog.Logger, reminders overdueChecker, interval time.Duration) *Jobs {
	return &Jobs{
		scheduler: gocron.NewScheduler(time.UTC),
		reminders: reminders,
		interval:  interval,
		log:       log.With("component", "jobs"),
	}
}

// Start schedules the overdue reminder check every interval. The first run
// happens one interval after Start. Runs never overlap.
func (j *Jobs) Start(ctx context.Context) error {
	_, err := j.scheduler.
		Every(j.interval).
		WaitForSchedule().
		SingletonMode().
		Do(j.checkOverdue, ctx)
	if err != nil {
		return fmt.Errorf("schedule overdue reminders: %w", err)
	}

	j.scheduler.StartAsync()
	j.log.Info("jobs started", slog.Duration("reminder_interval", j.interval))
	return nil
}

// Stop waits for running jobs and stops the scheduler.
func (j *Jobs) Stop() {
	j.scheduler.Stop()
	j.log.Info("jobs stopped")
}

func (j *Jobs) checkOverdue(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := j.reminders.CheckOverdue(ctx); err != nil {
		j.log.ErrorContext(ctx, "overdue reminder check failed", slog.String("error", err.Error()))
	}
}

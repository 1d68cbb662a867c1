// Package scheduler runs recurring background jobs on cron schedules.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/application/usecase/reminder"
)

// Scheduler owns the cron runner and the jobs registered on it.
type Scheduler struct {
	cron *cron.Cron
}

// Config holds scheduler configuration.
type Config struct {
	ReminderCronSpec   string
	LeadDays           int
	ExpiryNoticeDays   int
	CleanupCronSpec    string
	EmailRetentionDays int
}

// New creates a scheduler with the reminder sweep and the sent-mail
// cleanup registered. The sweep queues rent due reminders and lease
// expiry notices; it is idempotent, so an overlapping or repeated run
// queues nothing twice.
func New(cfg Config, reminders *reminder.SendRemindersUseCase, emailQueue adapter.EmailQueueRepository) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(cfg.ReminderCronSpec, func() {
		output, err := reminders.Execute(context.Background(), reminder.SendRemindersInput{
			LeadDays:   cfg.LeadDays,
			ExpiryDays: cfg.ExpiryNoticeDays,
		})
		if err != nil {
			slog.Error("Reminder sweep failed", "error", err)
			return
		}
		slog.Info("Reminder sweep completed",
			"rent_reminders_queued", output.RentRemindersQueued,
			"expiry_notices_queued", output.ExpiryNoticesQueued,
		)
	})
	if err != nil {
		return nil, err
	}

	_, err = c.AddFunc(cfg.CleanupCronSpec, func() {
		deleted, err := emailQueue.DeleteOldSentJobs(context.Background(), cfg.EmailRetentionDays)
		if err != nil {
			slog.Error("Email queue cleanup failed", "error", err)
			return
		}
		if deleted > 0 {
			slog.Info("Email queue cleanup completed", "deleted", deleted)
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

// Start begins running scheduled jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tax_deadline_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DailyScheduler triggers the deadline check once per day at a fixed
// wall-clock time. Manual /check invocations share the same service call, so
// the per-day guard inside the service prevents double-sends either way.
type DailyScheduler struct {
	cronEngine *cron.Cron
	reminders  *app.ReminderService
	logger     *logrus.Entry
	checkTime  string // HH:MM
}

func NewDailyScheduler(reminders *app.ReminderService, logger *logrus.Entry, checkTime string) *DailyScheduler {
	return &DailyScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // server's local time
		reminders:  reminders,
		logger:     logger,
		checkTime:  checkTime,
	}
}

func (s *DailyScheduler) Start() error {
	spec, err := cronSpecForTime(s.checkTime)
	if err != nil {
		return err
	}

	if _, err := s.cronEngine.AddFunc(spec, func() {
		s.logger.Info("Cron job triggered for daily deadline check")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		switch err := s.reminders.CheckDeadlines(ctx); {
		case errors.Is(err, app.ErrAlreadyEvaluated):
			s.logger.Info("Deadline check already completed for today, skipping")
		case err != nil:
			s.logger.WithError(err).Error("Daily deadline check failed")
		}
	}); err != nil {
		return fmt.Errorf("could not add daily deadline check cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("check_time", s.checkTime).Info("Daily scheduler started")
	return nil
}

func (s *DailyScheduler) Stop() {
	s.logger.Info("Stopping daily scheduler...")
	ctx := s.cronEngine.Stop() // waits for a running job to finish
	<-ctx.Done()
	s.logger.Info("Daily scheduler gracefully stopped")
}

// cronSpecForTime converts an HH:MM wall-clock time into a daily cron spec.
func cronSpecForTime(checkTime string) (string, error) {
	t, err := time.Parse("15:04", checkTime)
	if err != nil {
		return "", fmt.Errorf("invalid daily check time %q, expected HH:MM: %w", checkTime, err)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tax_deadline_bot/internal/domain/catalog"
	"tax_deadline_bot/internal/domain/deadline"
	"tax_deadline_bot/internal/domain/subscriber"
	domainTelegram "tax_deadline_bot/internal/domain/telegram"
	"tax_deadline_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// ErrAlreadyEvaluated is returned when a deadline check already completed for
// the current calendar day.
var ErrAlreadyEvaluated = errors.New("deadline check already completed for today")

// ReminderService runs the daily evaluation: every active subscriber with a
// chosen category is checked against the rule catalog and due reminders are
// sent. Runs are serialized and deduplicated per calendar day so a manual
// /check overlapping the scheduled run cannot double-send.
type ReminderService struct {
	rules          *catalog.Catalog
	subscriberRepo subscriber.Repository
	telegramClient domainTelegram.Client
	stats          *metrics.Metrics
	logger         *logrus.Entry
	now            func() time.Time

	mu            sync.Mutex
	lastEvaluated time.Time // date of the last completed run, zero before the first
}

func NewReminderService(
	rules *catalog.Catalog,
	subscriberRepo subscriber.Repository,
	tc domainTelegram.Client,
	stats *metrics.Metrics,
	logger *logrus.Entry,
) *ReminderService {
	return &ReminderService{
		rules:          rules,
		subscriberRepo: subscriberRepo,
		telegramClient: tc,
		stats:          stats,
		logger:         logger,
		now:            time.Now,
	}
}

// CheckDeadlines evaluates all subscribers once for the current day. A
// delivery failure for one subscriber/obligation pair is logged and never
// aborts the rest of the batch.
func (s *ReminderService) CheckDeadlines(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if s.lastEvaluated.Equal(todayDate) {
		return ErrAlreadyEvaluated
	}

	s.logger.WithField("date", todayDate.Format("2006-01-02")).Info("Running deadline check")

	subs, err := s.subscriberRepo.All(ctx)
	if err != nil {
		// Degrade to an empty cycle but leave the day unmarked so a later
		// manual trigger can retry.
		s.logger.WithError(err).Error("Failed to load subscribers, skipping this cycle")
		return nil
	}
	s.logger.WithField("subscriber_count", len(subs)).Info("Checking deadlines for subscribers")

	for _, sub := range subs {
		if !sub.Active || !sub.Category.Valid {
			s.logger.WithField("chat_id", sub.ChatID).Debug("Skipping inactive or uncategorized subscriber")
			continue
		}

		cat, err := s.rules.Category(sub.Category.String)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"chat_id":  sub.ChatID,
				"category": sub.Category.String,
			}).Warn("Subscriber has unknown category, skipping")
			continue
		}

		for _, rem := range deadline.DueReminders(today, cat) {
			if err := s.sendReminder(sub.ChatID, rem); err != nil {
				s.stats.DeliveryErrorsTotal.Inc()
				s.logger.WithError(err).WithFields(logrus.Fields{
					"chat_id":    sub.ChatID,
					"obligation": rem.Obligation.Title,
				}).Error("Failed to send reminder")
				continue
			}
			s.stats.RemindersSentTotal.Inc()
			s.logger.WithFields(logrus.Fields{
				"chat_id":        sub.ChatID,
				"obligation":     rem.Obligation.Title,
				"days_remaining": rem.DaysRemaining,
			}).Info("Reminder sent")
		}
	}

	s.lastEvaluated = todayDate
	s.stats.ChecksTotal.Inc()
	return nil
}

func (s *ReminderService) sendReminder(chatID int64, rem deadline.Reminder) error {
	text := formatReminderMessage(rem.Obligation, rem.DaysRemaining)
	return s.telegramClient.SendMessage(chatID, text, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func formatReminderMessage(ob catalog.Obligation, daysRemaining int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: Tax Deadline Approaching!\n\n", urgencyLabel(deadline.UrgencyFor(daysRemaining))))
	b.WriteString(fmt.Sprintf("*%s*\n", ob.Title))
	b.WriteString(fmt.Sprintf("📋 Tax Type: %s\n", ob.TaxType))
	b.WriteString(fmt.Sprintf("📅 Due: %s\n", ob.DueDateText))
	b.WriteString(fmt.Sprintf("⏰ Deadline: %s\n", strings.ToUpper(deadlinePhrase(daysRemaining))))
	if ob.Description != "" {
		b.WriteString("\n" + ob.Description + "\n")
	}
	b.WriteString("\n⚠️ *Penalty for Late Compliance:*\n")
	b.WriteString(ob.PenaltyText + "\n")
	b.WriteString("\nDon't miss this deadline! ⏱️")
	return b.String()
}

func urgencyLabel(u deadline.Urgency) string {
	switch u {
	case deadline.UrgencyUrgent:
		return "🚨 URGENT"
	case deadline.UrgencyImportant:
		return "⚠️ IMPORTANT"
	default:
		return "📢 REMINDER"
	}
}

func deadlinePhrase(daysRemaining int) string {
	switch daysRemaining {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", daysRemaining)
	}
}

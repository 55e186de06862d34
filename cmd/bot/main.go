package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tax_deadline_bot/internal/app"
	"tax_deadline_bot/internal/domain/catalog"
	"tax_deadline_bot/internal/infra/config"
	idb "tax_deadline_bot/internal/infra/database"
	httpx "tax_deadline_bot/internal/infra/http"
	"tax_deadline_bot/internal/infra/logger"
	"tax_deadline_bot/internal/infra/metrics"
	"tax_deadline_bot/internal/infra/scheduler"
	"tax_deadline_bot/internal/infra/telegram"

	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func runMigrations(databaseURL string) error {
	db, err := goose.OpenDBWithDriver("postgres", databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return goose.Up(db, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get().WithField("component", "main")
	log.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"check_time":  cfg.DailyCheckTime,
	}).Info("Configuration loaded")

	// Load the rule catalog once; it stays immutable for the rest of the run.
	rules, err := catalog.New()
	if err != nil {
		log.WithError(err).Fatal("Could not load tax deadline catalog")
	}
	log.WithField("categories", len(rules.Categories())).Info("Tax deadline catalog loaded")

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		log.WithError(err).Fatal("Could not apply database migrations")
	}
	log.Info("Database migrations applied")

	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()
	log.Info("Database connection established")

	subscriberRepo := idb.NewPostgresSubscriberRepository(db)
	stats := metrics.New(prometheus.DefaultRegisterer)

	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			entry := logger.Get().WithField("component", "telebot").WithError(err)
			if c != nil && c.Sender() != nil {
				entry = entry.WithField("sender_id", c.Sender().ID)
			}
			entry.Error("Telegram handler error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.WithError(err).Fatal("Could not create Telegram bot")
	}

	telegramClient := telegram.NewTelebotAdapter(bot)

	reminderService := app.NewReminderService(
		rules,
		subscriberRepo,
		telegramClient,
		stats,
		logger.Get().WithField("component", "reminder_service"),
	)
	subscriptionService := app.NewSubscriptionService(
		rules,
		subscriberRepo,
		logger.Get().WithField("component", "subscription_service"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telegram.RegisterBotCommands(ctx, bot, rules, subscriptionService, reminderService,
		logger.Get().WithField("component", "telegram"))
	log.Info("Bot command handlers registered")

	dailyScheduler := scheduler.NewDailyScheduler(
		reminderService,
		logger.Get().WithField("component", "scheduler"),
		cfg.DailyCheckTime,
	)
	if err := dailyScheduler.Start(); err != nil {
		log.WithError(err).Fatal("Could not start daily scheduler")
	}

	srv := httpx.New(cfg.HTTPAddr, cfg.MetricsEnabled)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get().WithField("component", "http").WithError(err).Error("HTTP server error")
		}
	}()
	log.WithField("addr", cfg.HTTPAddr).Info("HTTP server started")

	go bot.Start()
	log.Info("Application setup complete, bot is polling")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down application...")
	cancel()
	dailyScheduler.Stop()
	bot.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("Application shut down gracefully")
}

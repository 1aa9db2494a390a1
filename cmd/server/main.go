package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/http/handlers"
	"github.com/just-nibble/cycle-tracker/internal/http/middleware"
	"github.com/just-nibble/cycle-tracker/internal/repository"
	"github.com/just-nibble/cycle-tracker/internal/routes"
	"github.com/just-nibble/cycle-tracker/internal/scheduler"
	"github.com/just-nibble/cycle-tracker/internal/seeder"
	"github.com/just-nibble/cycle-tracker/internal/storage"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/cache"
	"github.com/just-nibble/cycle-tracker/pkg/config"
	"github.com/just-nibble/cycle-tracker/pkg/discord"
	"github.com/just-nibble/cycle-tracker/pkg/github"
	applog "github.com/just-nibble/cycle-tracker/pkg/log"
	"github.com/just-nibble/cycle-tracker/pkg/tracing"
)

func main() {
	cfg, err := config.Load(os.Getenv("CYCLE_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applog.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, "cycle-tracker", cfg.Tracing, logger)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}

	db, err := storage.InitDB(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to init database", zap.Error(err))
	}

	// redis is optional; reminders fall back to an in-process ledger and webhooks go unthrottled
	var (
		ledger  scheduler.Ledger = cache.NewMemoryLedger()
		limiter middleware.RateLimiter
	)
	rdb, err := cache.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, running without it", zap.Error(err))
	} else {
		ledger = rdb
		limiter = rdb
	}

	location, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		logger.Fatal("invalid timezone", zap.String("timezone", cfg.Database.Timezone), zap.Error(err))
	}

	generationStore := repository.NewGormGenerationStore(db)
	cycleStore := repository.NewGormCycleStore(db)
	memberStore := repository.NewGormMemberStore(db)
	submissionStore := repository.NewGormSubmissionStore(db)

	parser := github.NewWebhookParser(location)
	githubClient := github.NewClient(cfg.Github.Token, cfg.Github.Timeout)
	githubClient.BaseURL = cfg.Github.APIURL
	notifier := discord.NewWebhookNotifier(cfg.Discord.WebhookURL, cfg.Discord.Timeout, logger)

	deadlinesUsecase := usecases.NewFindUpcomingDeadlinesUsecase(generationStore, cycleStore)
	reminderUsecase := usecases.NewSendReminderNotificationUsecase(cycleStore, memberStore, submissionStore, notifier)
	recordUsecase := usecases.NewRecordSubmissionUsecase(cycleStore, memberStore, submissionStore, parser, notifier, logger)
	createCycleUsecase := usecases.NewCreateCycleFromIssueUsecase(generationStore, cycleStore, parser, logger)
	statusUsecase := usecases.NewGetCycleStatusUsecase(generationStore, cycleStore, memberStore, submissionStore, notifier)
	generationUsecase := usecases.NewGenerationUsecase(generationStore)
	memberUsecase := usecases.NewMemberUsecase(memberStore, generationStore)
	cycleUsecase := usecases.NewCycleUsecase(cycleStore, generationStore)
	syncUsecase := usecases.NewSyncSubmissionsUsecase(cycleStore, memberStore, submissionStore, githubClient, logger)

	if err := seeder.SeedGeneration(ctx, generationUsecase, cfg.Seed.GenerationName, logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	h := &handlers.Handlers{
		Webhook:    handlers.NewWebhookHandler(recordUsecase, createCycleUsecase, cfg.Github.WebhookSecret, logger),
		Generation: handlers.NewGenerationHandler(generationUsecase),
		Member:     handlers.NewMemberHandler(memberUsecase),
		Cycle:      handlers.NewCycleHandler(cycleUsecase, statusUsecase, reminderUsecase),
		Submission: handlers.NewSubmissionHandler(recordUsecase, logger),
		Deadline:   handlers.NewDeadlineHandler(deadlinesUsecase, cfg.Reminder.HoursBefore),
		Sync:       handlers.NewSyncHandler(syncUsecase),
	}

	router := routes.NewRouter(cfg.Server, h, limiter, logger)

	monitor := scheduler.NewReminderMonitor(deadlinesUsecase, reminderUsecase, ledger, cfg.Reminder.HoursBefore, logger)
	go monitor.Start(ctx, cfg.Reminder.Interval)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server is running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info("server stopped")
}

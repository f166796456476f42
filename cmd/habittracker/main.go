package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"habit-tracker/internal/config"
	"habit-tracker/internal/diff"
	"habit-tracker/internal/observer"
	"habit-tracker/internal/repository"
	"habit-tracker/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := repository.NewDB(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	provider := service.NewProvider(db, logger)
	defer provider.Close()

	if err := provider.Bootstrap(cfg.SeedDemoData); err != nil {
		logger.Fatal("bootstrap", zap.Error(err))
	}

	obs := provider.Observer()
	cancelTrackers := obs.Trackers.SubscribeTrackers(func(changes []diff.Change) {
		logger.Info("tracker list changed", zap.Int("ops", len(changes)))
	})
	defer cancelTrackers()
	cancelRecords := obs.Trackers.SubscribeRecords(func(ev observer.RecordEvent) {
		logger.Info("record changed",
			zap.Int32("tracker_id", ev.Record.TrackerID),
			zap.String("day", ev.Record.Day),
			zap.Stringer("kind", ev.Kind))
	})
	defer cancelRecords()

	summary := service.NewSummaryService(provider)
	if text, err := summary.DailySummary(time.Now()); err != nil {
		logger.Error("daily summary", zap.Error(err))
	} else {
		fmt.Println(text)
	}

	if cfg.SummaryTime != "" {
		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleDaily(cfg.SummaryTime, func() {
			text, err := summary.DailySummary(time.Now())
			if err != nil {
				logger.Error("daily summary", zap.Error(err))
				return
			}
			fmt.Println(text)
		}); err != nil {
			logger.Fatal("schedule summary", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	logger.Info("habit tracker started", zap.String("db", cfg.DatabaseURL))
	<-ctx.Done()
	logger.Info("shutdown complete")
}

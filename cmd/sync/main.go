package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/config"
	"github.com/ptaljaard1985/health-dashboard/internal/db"
	"github.com/ptaljaard1985/health-dashboard/internal/garmin"
	"github.com/ptaljaard1985/health-dashboard/internal/health"
	"github.com/ptaljaard1985/health-dashboard/internal/importer"
	"github.com/ptaljaard1985/health-dashboard/internal/logging"

	log "github.com/sirupsen/logrus"
)

// garmin connect sync cmd, run from cron after the morning activities land

func main() {
	fmt.Println("starting ...")

	logsPath := flag.String("logs-path", "", "logs file path, overrides HEALTH_LOGS_PATH (empty for stdout only)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	if *logsPath != "" {
		cfg.LogsPath = *logsPath
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        cfg.SentryDSN,
		SentryServerName: "health-sync",
	})

	log.Warnf("---->> running in [%s] environment", cfg.Environment)

	if err := cfg.ValidateGarmin(); err != nil {
		log.Fatalf("config: %s", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.DBHost,
		DBPort:         cfg.DBPort,
		DBName:         cfg.DBName,
		TracingEnabled: cfg.TracingEnabled,
	})
	if err != nil {
		log.Fatalf("create db pool: %s", err)
	}
	defer dbPool.Close()

	repo := health.NewRepo(dbPool)
	if err := repo.Setup(ctx); err != nil {
		log.Fatalf("setup db schema: %s", err)
	}

	client := garmin.NewClient(
		cfg.GarminAPIURL,
		cfg.GarminEmail,
		cfg.GarminPassword,
		&http.Client{Timeout: 30 * time.Second},
	)
	if err := client.Login(ctx); err != nil {
		log.Fatalf("garmin login: %s", err)
	}

	now := time.Now()
	log.Infof("syncing last %d days", cfg.SyncLookbackDays)

	activities, err := client.Activities(ctx, cfg.SyncLookbackDays, now)
	if err != nil {
		log.Fatalf("get garmin activities: %s", err)
	}
	log.Infof("got %d activities from garmin", len(activities))

	from := health.Day(now).AddDate(0, 0, -cfg.SyncLookbackDays)
	weights, err := client.BodyComposition(ctx, from, now)
	if err != nil {
		log.Fatalf("get garmin body composition: %s", err)
	}
	log.Infof("got %d weight entries from garmin", len(weights))

	imp := importer.New(garmin.NewClassifier(nil), repo)
	result, err := imp.Run(ctx, activities, weights)
	if err != nil {
		log.Fatalf("import: %s", err)
	}

	log.Infof(
		"sync done: activities %d created / %d skipped, weigh-ins %d created / %d skipped",
		result.ActivitiesCreated, result.ActivitiesSkipped,
		result.WeightsCreated, result.WeightsSkipped,
	)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/config"
	"github.com/ptaljaard1985/health-dashboard/internal/dashboard"
	"github.com/ptaljaard1985/health-dashboard/internal/db"
	"github.com/ptaljaard1985/health-dashboard/internal/health"
	"github.com/ptaljaard1985/health-dashboard/internal/healthstats"
	"github.com/ptaljaard1985/health-dashboard/internal/logging"

	log "github.com/sirupsen/logrus"
)

// html dashboard generator cmd, run after each sync

func main() {
	fmt.Println("starting ...")

	goalsPath := flag.String("goals", "", "path for the goals TOML file (empty for default goals)")
	logsPath := flag.String("logs-path", "", "logs file path, overrides HEALTH_LOGS_PATH (empty for stdout only)")
	outPath := flag.String("out", "./dashboard.html", "output path for the generated dashboard")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
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
		SentryServerName: "health-dashboard",
	})

	log.Warnf("---->> running in [%s] environment", cfg.Environment)

	goals, err := config.LoadGoals(*goalsPath)
	if err != nil {
		log.Fatalf("load goals: %s", err)
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

	activities, err := repo.Activities(ctx)
	if err != nil {
		log.Fatalf("get activities: %s", err)
	}
	weighIns, err := repo.WeighIns(ctx)
	if err != nil {
		log.Fatalf("get weigh-ins: %s", err)
	}
	log.Infof("loaded %d activities and %d weigh-ins", len(activities), len(weighIns))

	now := time.Now()
	stats := healthstats.Compute(activities, weighIns, now, goals)

	renderer, err := dashboard.New()
	if err != nil {
		log.Fatalf("create renderer: %s", err)
	}

	outFile, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create output file: %s", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			log.Errorf("close output file: %s", err)
		}
	}()

	if err := renderer.Render(outFile, dashboard.Input{
		Stats:      stats,
		Goals:      goals,
		Activities: activities,
		WeighIns:   weighIns,
		Now:        now,
	}); err != nil {
		log.Fatalf("render dashboard: %s", err)
	}

	log.Infof("dashboard saved to %s", *outPath)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/config"
	"github.com/ptaljaard1985/health-dashboard/internal/db"
	"github.com/ptaljaard1985/health-dashboard/internal/health"
	"github.com/ptaljaard1985/health-dashboard/internal/healthstats"
	"github.com/ptaljaard1985/health-dashboard/internal/logging"
	"github.com/ptaljaard1985/health-dashboard/internal/notifier"

	log "github.com/sirupsen/logrus"
)

// daily coaching summary cmd, cron-ed for 6am

func main() {
	fmt.Println("starting ...")

	goalsPath := flag.String("goals", "", "path for the goals TOML file (empty for default goals)")
	logsPath := flag.String("logs-path", "", "logs file path, overrides HEALTH_LOGS_PATH (empty for stdout only)")
	testMessage := flag.Bool("test", false, "send a connectivity probe message and exit")
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
		SentryServerName: "health-notify",
	})

	log.Warnf("---->> running in [%s] environment", cfg.Environment)

	if err := cfg.ValidateTelegram(); err != nil {
		log.Fatalf("config: %s", err)
	}

	telegram := notifier.NewTelegram(
		"", cfg.TelegramBotToken, cfg.TelegramChatID,
		&http.Client{Timeout: 30 * time.Second},
	)

	if *testMessage {
		if err := telegram.Send(ctx, "🤖 Health Coach connected. Daily summaries at 6am."); err != nil {
			log.Fatalf("send test message: %s", err)
		}
		log.Infoln("test message sent")
		return
	}

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

	stats := healthstats.Compute(activities, weighIns, time.Now(), goals)
	message := notifier.BuildDailyMessage(stats, goals)

	if err := telegram.Send(ctx, message); err != nil {
		log.Fatalf("send daily summary: %s", err)
	}

	log.Infoln("daily summary sent")
}

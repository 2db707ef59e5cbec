package main

import (
	"context"
	"flag"
	"time"

	"comms-dashboard/internal/config"
	"comms-dashboard/internal/database"
	"comms-dashboard/internal/logging"
	"comms-dashboard/internal/seed"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.Must(cfg.LogLevel)
	defer log.Sync()

	path := flag.String("fixtures", "configs/fixtures.yaml", "YAML fixture file to load")
	flag.Parse()

	fixture, err := seed.LoadFile(*path)
	if err != nil {
		log.Fatal("Failed to load fixtures", zap.String("path", *path), zap.Error(err))
	}

	database.InitGorm(cfg, log)
	res, err := fixture.Apply(context.Background(),
		database.NewIssueRepository(database.GormDB),
		database.NewMessageRepository(database.GormDB),
		time.Now(),
	)
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Seeded dashboard data",
		zap.Int("issues", res.Issues),
		zap.Int("attachments", res.Attachments),
		zap.Int("messages", res.Messages),
	)
}

package main

import (
	"context"
	"flag"

	"comms-dashboard/internal/config"
	"comms-dashboard/internal/database"
	"comms-dashboard/internal/logging"

	"go.uber.org/zap"
)

// Copies a local sqlite dashboard database into the configured postgres database.
func main() {
	cfg := config.LoadConfig()
	log := logging.Must(cfg.LogLevel)
	defer log.Sync()

	sourcePath := flag.String("from", cfg.DBPath, "sqlite database to copy from")
	flag.Parse()

	if cfg.DBDriver != "postgres" {
		log.Fatal("Destination must be postgres; set DB_DRIVER=postgres", zap.String("driver", cfg.DBDriver))
	}

	source := *cfg
	source.DBDriver = "sqlite"
	source.DBPath = *sourcePath
	sqliteDB, err := database.Open(&source)
	if err != nil {
		log.Fatal("Failed to open sqlite source", zap.String("path", *sourcePath), zap.Error(err))
	}
	log.Info("Connected to sqlite", zap.String("path", *sourcePath))

	database.InitGorm(cfg, log)

	ctx := context.Background()
	copied, err := database.CopyAll(ctx, sqliteDB, database.GormDB, log)
	if err != nil {
		log.Fatal("Migration failed", zap.Any("copied", copied), zap.Error(err))
	}
	if err := database.ResyncSequences(ctx, database.GormDB, log); err != nil {
		log.Fatal("Failed to resync sequences", zap.Error(err))
	}
	log.Info("Migration completed", zap.Any("copied", copied))
}

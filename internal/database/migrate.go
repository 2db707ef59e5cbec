package database

import (
	"context"
	"fmt"

	"comms-dashboard/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// serialTables have an auto-increment id whose sequence must follow copied rows.
var serialTables = []string{"issues", "attachments", "messages"}

// CopyAll copies every model from src into dst, parents before children.
// Rows keep their ids. Each table is written in its own transaction.
func CopyAll(ctx context.Context, src, dst *gorm.DB, log *zap.Logger) (map[string]int, error) {
	copied := make(map[string]int)

	copyTable := func(table string, rows interface{}, count func() int) error {
		if err := src.WithContext(ctx).Table(table).Find(rows).Error; err != nil {
			return fmt.Errorf("read %s: %w", table, err)
		}
		n := count()
		if n == 0 {
			log.Info("Nothing to migrate", zap.String("table", table))
			copied[table] = 0
			return nil
		}
		err := dst.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Table(table).CreateInBatches(rows, 500).Error
		})
		if err != nil {
			return fmt.Errorf("write %s: %w", table, err)
		}
		copied[table] = n
		log.Info("Migrated table", zap.String("table", table), zap.Int("rows", n))
		return nil
	}

	var settings []models.SystemSetting
	if err := copyTable("system_settings", &settings, func() int { return len(settings) }); err != nil {
		return copied, err
	}
	var issues []models.Issue
	if err := copyTable("issues", &issues, func() int { return len(issues) }); err != nil {
		return copied, err
	}
	var attachments []models.Attachment
	if err := copyTable("attachments", &attachments, func() int { return len(attachments) }); err != nil {
		return copied, err
	}
	var messages []models.Message
	if err := copyTable("messages", &messages, func() int { return len(messages) }); err != nil {
		return copied, err
	}
	return copied, nil
}

// ResyncSequences moves each postgres id sequence past the highest copied id.
// Other dialects have nothing to resync.
func ResyncSequences(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	if db.Dialector.Name() != "postgres" {
		log.Info("Skipping sequence resync", zap.String("driver", db.Dialector.Name()))
		return nil
	}
	for _, table := range serialTables {
		query := "SELECT setval(pg_get_serial_sequence('" + table + "', 'id'), coalesce(max(id), 0) + 1, false) FROM " + table
		if err := db.WithContext(ctx).Exec(query).Error; err != nil {
			return fmt.Errorf("resync %s sequence: %w", table, err)
		}
		log.Info("Synced sequence", zap.String("table", table))
	}
	return nil
}

package database

import (
	"fmt"

	"comms-dashboard/internal/config"
	"comms-dashboard/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var GormDB *gorm.DB

// Dialector picks the gorm driver named by cfg.DBDriver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "", "sqlite":
		return sqlite.Open(cfg.DBPath), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Open connects to the configured database and runs auto-migration.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", dialector.Name(), err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

func InitGorm(cfg *config.Config, log *zap.Logger) {
	var err error
	GormDB, err = Open(cfg)
	if err != nil {
		log.Fatal("Failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	log.Info("Database ready", zap.String("driver", GormDB.Dialector.Name()))
}

// SyncConfig lets credentials stored in system_settings override the environment.
// Values only present in the environment are written back so they survive restarts.
func SyncConfig(db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	settings := []struct {
		Key   string
		Value *string
	}{
		{"WHATSAPP_TOKEN", &cfg.WhatsAppToken},
		{"PHONE_NUMBER_ID", &cfg.PhoneNumberID},
		{"SMS_API_KEY", &cfg.SMSAPIKey},
		{"SMS_SENDER_ID", &cfg.SMSSenderID},
	}

	for _, s := range settings {
		var setting models.SystemSetting
		if err := db.Where("key = ?", s.Key).First(&setting).Error; err == nil {
			if setting.Value != "" {
				*s.Value = setting.Value
			}
		} else if *s.Value != "" {
			if err := db.Create(&models.SystemSetting{Key: s.Key, Value: *s.Value}).Error; err != nil {
				log.Warn("Failed to persist system setting", zap.String("key", s.Key), zap.Error(err))
			}
		}
	}
	log.Info("System settings synchronized from database")
}

package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultStatsInterval = 30 * time.Second

type Config struct {
	Port    string
	GinMode string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	WhatsAppToken string
	PhoneNumberID string
	VerifyToken   string
	SMSAPIKey     string
	SMSSenderID   string

	LogLevel         string
	PlaceholderImage string
	StatsInterval    time.Duration
}

// Readiness reports which messaging integrations have credentials configured.
type Readiness struct {
	WhatsAppConfigured bool `json:"whatsapp_configured"`
	SMSConfigured      bool `json:"sms_configured"`
}

func (c *Config) Readiness() Readiness {
	return Readiness{
		WhatsAppConfigured: c.WhatsAppToken != "" && c.PhoneNumberID != "",
		SMSConfigured:      c.SMSAPIKey != "" && c.SMSSenderID != "",
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Warning: Error reading dashboard config file: %v", err)
		}
	}

	cfg := fromViper(v)
	if cfg.StatsInterval <= 0 {
		log.Printf("Warning: invalid STATS_INTERVAL %q, using %s", v.GetString("STATS_INTERVAL"), defaultStatsInterval)
		cfg.StatsInterval = defaultStatsInterval
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("dashboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "./dashboard.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "dashboard")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("WHATSAPP_TOKEN", "")
	v.SetDefault("PHONE_NUMBER_ID", "")
	v.SetDefault("VERIFY_TOKEN", "")
	v.SetDefault("SMS_API_KEY", "")
	v.SetDefault("SMS_SENDER_ID", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PLACEHOLDER_IMAGE", "/static/placeholder.svg")
	v.SetDefault("STATS_INTERVAL", defaultStatsInterval)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:           v.GetString("DB_PATH"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBSSLMode:        v.GetString("DB_SSLMODE"),
		WhatsAppToken:    v.GetString("WHATSAPP_TOKEN"),
		PhoneNumberID:    v.GetString("PHONE_NUMBER_ID"),
		VerifyToken:      v.GetString("VERIFY_TOKEN"),
		SMSAPIKey:        v.GetString("SMS_API_KEY"),
		SMSSenderID:      v.GetString("SMS_SENDER_ID"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		PlaceholderImage: v.GetString("PLACEHOLDER_IMAGE"),
		StatsInterval:    v.GetDuration("STATS_INTERVAL"),
	}
}

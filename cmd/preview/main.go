package main

import (
	"comms-dashboard/internal/config"
	"comms-dashboard/internal/database"
	"comms-dashboard/internal/logging"
	"comms-dashboard/internal/preview"
	"comms-dashboard/internal/stats"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.Must("error")
	defer log.Sync()

	database.InitGorm(cfg, log)
	service := stats.NewService(
		database.NewIssueRepository(database.GormDB),
		database.NewMessageRepository(database.GormDB),
	)

	readiness := cfg.Readiness()
	p := tea.NewProgram(preview.New(service, readiness.WhatsAppConfigured, readiness.SMSConfigured), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("Preview exited with error", zap.Error(err))
	}
}

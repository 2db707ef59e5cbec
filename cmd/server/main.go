package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"comms-dashboard/internal/api"
	"comms-dashboard/internal/config"
	"comms-dashboard/internal/database"
	"comms-dashboard/internal/logging"
	"comms-dashboard/internal/session"
	"comms-dashboard/internal/stats"
	"comms-dashboard/internal/ui"
	"comms-dashboard/internal/webhook"
	"comms-dashboard/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.Must(cfg.LogLevel)
	defer log.Sync()

	database.InitGorm(cfg, log)
	database.SyncConfig(database.GormDB, cfg, log)

	gin.SetMode(cfg.GinMode)

	renderer, err := ui.NewRenderer(ui.NewMetrics(prometheus.DefaultRegisterer))
	if err != nil {
		log.Fatal("Failed to load view templates", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	issues := database.NewIssueRepository(database.GormDB)
	messages := database.NewMessageRepository(database.GormDB)
	statsService := stats.NewService(issues, messages)
	sessions := session.NewStore(func(id string, tab ui.Tab) {
		hub.NotifyTabChanged(id, string(tab))
	})

	go stats.Publish(ctx, statsService, cfg.StatsInterval, hub.NotifyStats, log)

	r := api.NewRouter(api.Deps{
		Renderer:    renderer,
		Cards:       statsService,
		Messages:    messages,
		Issues:      issues,
		Sessions:    sessions,
		Hub:         hub,
		Webhook:     webhook.NewHandler(cfg.VerifyToken, messages, log),
		Readiness:   cfg.Readiness(),
		Placeholder: cfg.PlaceholderImage,
		Gatherer:    prometheus.DefaultGatherer,
		Log:         log,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("Graceful shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Server starting", zap.String("port", cfg.Port), zap.Any("readiness", cfg.Readiness()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Failed to run server", zap.Error(err))
	}
}

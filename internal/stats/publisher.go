package stats

import (
	"context"
	"time"

	"comms-dashboard/internal/ui"
	pkgmodels "comms-dashboard/pkg/models"

	"go.uber.org/zap"
)

type CardSource interface {
	Cards(ctx context.Context) ([]ui.StatCard, error)
}

// Publish recomputes the cards every interval and hands them to notify until ctx is done.
func Publish(ctx context.Context, src CardSource, interval time.Duration, notify func([]pkgmodels.StatCard), log *zap.Logger) {
	if interval <= 0 {
		log.Warn("Stat card refresh disabled, interval must be positive", zap.Duration("interval", interval))
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cards, err := src.Cards(ctx)
			if err != nil {
				log.Warn("Failed to refresh stat cards", zap.Error(err))
				continue
			}
			notify(JSON(Render(cards)))
		}
	}
}

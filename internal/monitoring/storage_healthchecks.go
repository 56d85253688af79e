package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/matpia/sentiment-api/internal/db"
)

const HEALTHCHECK_TIMER = 15

// MonitorStorageHealth pings the analysis table on a fixed interval and
// records the outcome for the health endpoint.
func MonitorStorageHealth(ctx context.Context, store *db.AnalysisStore, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := store.Ping(ctx)
			healthy.Store(err == nil)
			if err != nil {
				slog.Warn("[HealthCheck] Sentiment store is unhealthy",
					slog.String("error", err.Error()))
			}
		}
	}
}

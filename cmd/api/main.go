package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matpia/sentiment-api/config"
	"github.com/matpia/sentiment-api/internal/api"
	"github.com/matpia/sentiment-api/internal/clients"
	"github.com/matpia/sentiment-api/internal/db"
	"github.com/matpia/sentiment-api/internal/logging"
	"github.com/matpia/sentiment-api/internal/monitoring"
	"github.com/matpia/sentiment-api/internal/processing"
	"github.com/matpia/sentiment-api/internal/providers"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := providers.ForName(os.Getenv("SENTIMENT_PROVIDER"))
	if err != nil {
		slog.Error("[Main] Failed to select sentiment provider",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[Main] Sentiment provider selected",
		slog.String("provider", provider.Name()))

	store := db.NewAnalysisStore(clients.GetDynamoDBClient())

	service := processing.NewService(provider, store, nil)
	if publisher, err := clients.InitResultsPublisher(); err != nil {
		slog.Warn("[Main] Results publisher unavailable, continuing without it",
			slog.String("error", err.Error()))
	} else if publisher != nil {
		defer publisher.Close()
		service = processing.NewService(provider, store, publisher)
	}

	var healthy atomic.Bool
	healthy.Store(true)
	go monitoring.MonitorStorageHealth(ctx, store, &healthy)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: api.NewRouter(service, &healthy),
	}

	go func() {
		slog.Info("[Main] Starting sentiment API server",
			slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed",
				slog.String("error", err.Error()))
			cancel()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("[Main] Shutdown signal received",
			slog.String("signal", sig.String()))
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Graceful shutdown failed",
			slog.String("error", err.Error()))
	}

	slog.Info("[Main] Sentiment API stopped")
}

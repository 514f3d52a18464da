package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/bootstrap"
	httpDelivery "github.com/cardlens/backend/internal/delivery/http"
	"github.com/cardlens/backend/internal/infrastructure/metrics"
	"github.com/cardlens/backend/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := bootstrap.New(ctx)
	if err != nil {
		zap.NewExample().Fatal("Failed to load configuration", zap.Error(err))
	}
	defer deps.Close()

	cfg := deps.Config
	log := deps.Logger

	log.Info("Starting CardLens Backend v1.0.0",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Type))

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		deps.Store,
		deps.NewSummarizer(),
		deps.OpenCache(),
		usecase.CatalogServiceConfig{CacheTTL: cfg.Cache.CatalogTTL},
		log,
	)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, log)
	router := httpDelivery.SetupRouter(cfg, handler, m)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Failed to start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}

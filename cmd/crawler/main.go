package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/bootstrap"
	"github.com/cardlens/backend/internal/infrastructure/cardgorilla"
	"github.com/cardlens/backend/internal/infrastructure/metrics"
	"github.com/cardlens/backend/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := bootstrap.New(ctx)
	if err != nil {
		zap.NewExample().Fatal("Failed to initialize", zap.Error(err))
	}
	defer deps.Close()

	cfg := deps.Config
	log := deps.Logger

	log.Info("Starting CardLens crawler",
		zap.String("base_url", cfg.CardGorilla.BaseURL),
		zap.Int("corp", cfg.CardGorilla.Corp),
		zap.Duration("request_delay", cfg.CardGorilla.RequestDelay),
		zap.String("cache", cfg.Cache.Type))

	m := metrics.New()
	if cfg.Metrics.Enabled {
		srv := m.Serve(cfg.Metrics.Port)
		defer srv.Close()
	}

	client := cardgorilla.NewClient(cardgorilla.Config{
		BaseURL:      cfg.CardGorilla.BaseURL,
		Corp:         cfg.CardGorilla.Corp,
		PerPage:      cfg.CardGorilla.PerPage,
		RequestDelay: cfg.CardGorilla.RequestDelay,
		Timeout:      cfg.CardGorilla.Timeout,
		UserAgent:    cfg.CardGorilla.UserAgent,
		Referer:      cfg.CardGorilla.Referer,
		MaxRetries:   cfg.CardGorilla.MaxRetries,
	}, log)
	client.SetDebug(cfg.CardGorilla.Debug)
	client.SetRecorder(m)

	if cfg.Cache.Type == "memory" {
		log.Info("Memory cache does not outlive this run; set cache.type=redis to resume without refetching")
	}

	crawler := usecase.NewCrawlService(
		client,
		deps.OpenCache(),
		deps.Store,
		usecase.NewNormalizer(usecase.PretagRules(), log),
		m,
		usecase.CrawlServiceConfig{CacheTTL: cfg.Cache.TTL},
		log,
	)

	catalog, err := crawler.Run(ctx)
	if err != nil {
		log.Error("Crawl failed", zap.Error(err))
		deps.Close()
		os.Exit(1)
	}

	log.Info("Catalog written",
		zap.Int("cards", catalog.TotalCards),
		zap.Any("categories", catalog.Categories))
}

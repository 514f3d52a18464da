package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cardlens/backend/config"
	"github.com/cardlens/backend/internal/bootstrap"
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

	table, err := config.LoadMetadataTable(cfg.Enrich.MetadataFile)
	if err != nil {
		log.Error("Failed to load metadata table", zap.Error(err))
		deps.Close()
		os.Exit(1)
	}

	m := metrics.New()
	if cfg.Metrics.Enabled {
		srv := m.Serve(cfg.Metrics.Port)
		defer srv.Close()
	}

	service := usecase.NewEnrichmentService(
		deps.Store,
		deps.NewSummarizer(),
		usecase.NewMetadataEnricher(table),
		m,
		usecase.EnrichmentServiceConfig{
			DisplayPolicy: cfg.Enrich.DisplayPolicy.Policy(),
			SummaryPolicy: cfg.Enrich.SummaryPolicy.Policy(),
		},
		log,
	)
	service.SetCatalogCache(deps.OpenCache())

	log.Info("Starting CardLens enrichment",
		zap.String("rules_version", usecase.RulesVersion),
		zap.String("unclassified", cfg.Enrich.Unclassified),
		zap.String("value_comparison", cfg.Enrich.ValueComparison))

	report, err := service.Run(ctx)
	if err != nil {
		log.Error("Enrichment failed", zap.Error(err))
		deps.Close()
		os.Exit(1)
	}

	log.Info("Enrichment summary",
		zap.String("run_id", report.RunID),
		zap.Int("cards", report.Cards),
		zap.Int("display_benefits", report.DisplayBenefits),
		zap.Int("summary_benefits", report.SummaryBenefits))
}

package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cardlens/backend/config"
	"github.com/cardlens/backend/internal/domain"
	"github.com/cardlens/backend/internal/infrastructure/cache"
	"github.com/cardlens/backend/internal/infrastructure/logger"
	"github.com/cardlens/backend/internal/infrastructure/storage"
	"github.com/cardlens/backend/internal/usecase"
)

// Dependencies holds the adapters shared by the binaries
type Dependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   domain.CatalogStore
	closers []func()
}

// New loads configuration and builds the logger and catalog store
func New(ctx context.Context) (*Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	deps := &Dependencies{Config: cfg, Logger: log}
	deps.Store, err = deps.openStore(ctx)
	if err != nil {
		deps.Close()
		return nil, err
	}
	return deps, nil
}

func (d *Dependencies) openStore(ctx context.Context) (domain.CatalogStore, error) {
	switch d.Config.Storage.Type {
	case "postgres":
		store, err := storage.NewPostgresStore(ctx, d.Config.Storage.DatabaseURL, d.Config.Storage.CatalogName,
			storage.DefaultPostgresConfig(), d.Logger)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, store.Close)
		d.Logger.Info("Catalog storage: postgres", zap.String("catalog", d.Config.Storage.CatalogName))
		return store, nil
	default:
		d.Logger.Info("Catalog storage: file", zap.String("path", d.Config.Storage.Path))
		return storage.NewFileStore(d.Config.Storage.Path, d.Logger), nil
	}
}

// OpenCache builds the detail-response cache. Redis failures fall back to memory.
func (d *Dependencies) OpenCache() domain.CacheRepository {
	if d.Config.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(d.Config.Cache.RedisURL, d.Config.Cache.KeyPrefix, d.Logger)
		if err == nil {
			d.closers = append(d.closers, func() { redisCache.Close() })
			return redisCache
		}
		d.Logger.Warn("Redis unavailable, using memory cache", zap.Error(err))
	}

	memoryCache := cache.NewMemoryCache()
	d.closers = append(d.closers, func() { memoryCache.Close() })
	return memoryCache
}

// NewSummarizer builds the card summarizer from the enrich config
func (d *Dependencies) NewSummarizer() *usecase.CardSummarizer {
	return usecase.NewCardSummarizer(d.Config.Enrich.SummarizerConfig(usecase.DefaultRules()), d.Logger)
}

// Close releases adapters in reverse order and flushes the logger
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
	if d.Logger != nil {
		d.Logger.Sync()
	}
}

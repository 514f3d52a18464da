package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/domain"
)

const (
	catalogSource      = "card-gorilla API"
	crawledAtLayout    = "2006-01-02 15:04:05"
	defaultDetailTTL   = 24 * time.Hour
	cardCacheKeyFormat = "cardgorilla:card:%d"
)

// CrawlServiceConfig holds configuration for the crawl service
type CrawlServiceConfig struct {
	CacheTTL time.Duration
}

// CrawlService fetches the card list and details and writes a fresh catalog
type CrawlService struct {
	source     domain.CardSource
	cache      domain.CacheRepository
	store      domain.CatalogStore
	normalizer *Normalizer
	recorder   PipelineRecorder
	cacheTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewCrawlService creates a new crawl service with dependencies. cache may be nil.
func NewCrawlService(
	source domain.CardSource,
	cache domain.CacheRepository,
	store domain.CatalogStore,
	normalizer *Normalizer,
	recorder PipelineRecorder,
	config CrawlServiceConfig,
	logger *zap.Logger,
) *CrawlService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = defaultDetailTTL
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CrawlService{
		source:     source,
		cache:      cache,
		store:      store,
		normalizer: normalizer,
		recorder:   recorder,
		cacheTTL:   cacheTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Run crawls every listed card and replaces the stored catalog.
// Per-card failures are logged and skipped; a failed list request aborts the run.
func (s *CrawlService) Run(ctx context.Context) (catalog *domain.CardCatalog, err error) {
	start := time.Now()
	defer func() {
		s.recorder.RunCompleted("crawl", time.Since(start), err)
	}()

	catalog, err = s.Crawl(ctx)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return catalog, err
	}
	if err := s.store.Save(ctx, catalog); err != nil {
		return catalog, fmt.Errorf("failed to save catalog: %w", err)
	}
	invalidateCatalogCache(ctx, s.cache, s.logger)

	s.logger.Info("Crawl completed",
		zap.Int("cards", catalog.TotalCards),
		zap.Int("categories", len(catalog.Categories)),
		zap.Duration("duration", time.Since(start)))
	return catalog, nil
}

// Crawl builds a catalog from the card source without saving it
func (s *CrawlService) Crawl(ctx context.Context) (*domain.CardCatalog, error) {
	ids, err := s.source.ListCardIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	s.logger.Info("Card list fetched", zap.Int("cards", len(ids)))

	cards := make([]domain.Card, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		raw, err := s.fetchCard(ctx, id)
		if err != nil {
			s.logger.Warn("Skipping card",
				zap.Int("cid", id),
				zap.Int("position", i+1),
				zap.Error(err))
			continue
		}

		card := s.normalizer.NormalizeCard(raw)
		s.logger.Debug("Card fetched",
			zap.Int("position", i+1),
			zap.Int("total", len(ids)),
			zap.String("name", card.Name),
			zap.Int("benefits", len(card.Benefits)))
		cards = append(cards, card)
	}

	// never replace a stored catalog with an empty one because every detail failed
	if len(ids) > 0 && len(cards) == 0 {
		return nil, fmt.Errorf("%w: all %d card details failed", domain.ErrUpstreamFailure, len(ids))
	}

	catalog := &domain.CardCatalog{
		CrawledAt:  s.now().Format(crawledAtLayout),
		Source:     catalogSource,
		TotalCards: len(cards),
		Categories: pretagCategories(cards),
		Cards:      cards,
	}
	return catalog, nil
}

// fetchCard returns a raw card from cache, else from the source
func (s *CrawlService) fetchCard(ctx context.Context, id int) (*domain.RawCard, error) {
	key := fmt.Sprintf(cardCacheKeyFormat, id)

	if raw, err := s.getFromCache(ctx, key); err == nil {
		return raw, nil
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Debug("Card cache read failed", zap.String("key", key), zap.Error(err))
	}

	raw, err := s.source.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.setInCache(ctx, key, raw); err != nil {
		// Log but don't fail if caching fails
		s.logger.Debug("Card cache write failed", zap.String("key", key), zap.Error(err))
	}
	return raw, nil
}

// getFromCache retrieves a raw card stored as its JSON text
func (s *CrawlService) getFromCache(ctx context.Context, key string) (*domain.RawCard, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	text, ok := value.(string)
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	var raw domain.RawCard
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &raw, nil
}

func (s *CrawlService) setInCache(ctx context.Context, key string, raw *domain.RawCard) error {
	if s.cache == nil {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, string(data), s.cacheTTL)
}

func pretagCategories(cards []domain.Card) []domain.Category {
	seen := make(map[domain.Category]bool)
	for _, card := range cards {
		for _, b := range card.Benefits {
			if b.Category.Valid() {
				seen[b.Category] = true
			}
		}
	}
	out := make([]domain.Category, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

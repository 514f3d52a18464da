package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/domain"
)

const (
	// DefaultFilteredLimit caps category-filtered card listings when no limit is given
	DefaultFilteredLimit = 20

	// CatalogCacheKey holds the stored catalog as JSON text
	CatalogCacheKey   = "catalog:current"
	defaultCatalogTTL = 5 * time.Minute
)

// CatalogServiceConfig holds configuration for the catalog query service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

// CatalogService answers read queries over the stored catalog
type CatalogService struct {
	store      domain.CatalogStore
	summarizer *CardSummarizer
	cache      domain.CacheRepository
	cacheTTL   time.Duration
	logger     *zap.Logger

	// last decoded catalog and the cached text it came from
	mu       sync.Mutex
	snapshot *domain.CardCatalog
	raw      string
}

// NewCatalogService creates a new catalog query service. cache may be nil,
// in which case every query reads the store.
func NewCatalogService(
	store domain.CatalogStore,
	summarizer *CardSummarizer,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
	logger *zap.Logger,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = defaultCatalogTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CatalogService{
		store:      store,
		summarizer: summarizer,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// loadCatalog returns the catalog from cache, else from the store.
// The returned catalog is shared and must not be modified.
func (s *CatalogService) loadCatalog(ctx context.Context) (*domain.CardCatalog, error) {
	if s.cache == nil {
		return s.store.Load(ctx)
	}

	value, err := s.cache.Get(ctx, CatalogCacheKey)
	if err == nil {
		if text, ok := value.(string); ok {
			if catalog, err := s.decode(text); err == nil {
				return catalog, nil
			}
		}
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("Catalog cache read failed", zap.Error(err))
	}

	catalog, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return catalog, nil
	}
	text := string(data)
	if err := s.cache.Set(ctx, CatalogCacheKey, text, s.cacheTTL); err != nil {
		// Log but don't fail if caching fails
		s.logger.Warn("Catalog cache write failed", zap.Error(err))
	}

	s.mu.Lock()
	s.snapshot, s.raw = catalog, text
	s.mu.Unlock()

	s.logger.Debug("Catalog loaded from store",
		zap.Int("cards", catalog.TotalCards),
		zap.Duration("ttl", s.cacheTTL))
	return catalog, nil
}

// invalidateCatalogCache drops the cached catalog after a pipeline write
func invalidateCatalogCache(ctx context.Context, cache domain.CacheRepository, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, CatalogCacheKey); err != nil {
		logger.Warn("Catalog cache invalidation failed", zap.Error(err))
	}
}

// decode reuses the last decoded catalog while the cached text is unchanged
func (s *CatalogService) decode(text string) (*domain.CardCatalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && s.raw == text {
		return s.snapshot, nil
	}

	var catalog domain.CardCatalog
	if err := json.Unmarshal([]byte(text), &catalog); err != nil {
		return nil, err
	}
	s.snapshot, s.raw = &catalog, text
	return &catalog, nil
}

// ListCards returns the cards whose display benefits include category, in catalog order.
// An empty category lists every card. limit <= 0 applies DefaultFilteredLimit to
// filtered listings and no limit otherwise.
func (s *CatalogService) ListCards(ctx context.Context, category string, limit int) ([]domain.Card, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" {
		cards := catalog.Cards
		if limit > 0 && len(cards) > limit {
			cards = cards[:limit]
		}
		return cards, nil
	}

	cat, ok := domain.ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidRequest, category)
	}
	if limit <= 0 {
		limit = DefaultFilteredLimit
	}

	cards := make([]domain.Card, 0, limit)
	for i := range catalog.Cards {
		if len(cards) >= limit {
			break
		}
		if catalog.Cards[i].HasDisplayCategory(cat) {
			cards = append(cards, catalog.Cards[i])
		}
	}
	return cards, nil
}

// GetCard returns one card by id
func (s *CatalogService) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	card := catalog.FindCard(id)
	if card == nil {
		return nil, domain.ErrCardNotFound
	}
	return card, nil
}

// Categories returns the catalog's category set
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories, nil
}

// PreviewBenefit returns the display summary the pipeline would produce for one benefit
func (s *CatalogService) PreviewBenefit(b domain.NormalizedBenefit) (*domain.DisplayBenefit, error) {
	if b.Description == "" && b.Title == "" {
		return nil, domain.ErrInvalidRequest
	}
	if b.Description == "" {
		b.Description = b.Title
	}
	eval := s.summarizer.Evaluate(0, b)
	if !eval.Kept() {
		return nil, fmt.Errorf("%w: %s", domain.ErrBenefitDropped, eval.DropReason)
	}
	display := eval.Display()
	return &display, nil
}

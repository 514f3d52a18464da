package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/domain"
)

// PipelineRecorder receives pipeline counters. metrics.Metrics implements it.
type PipelineRecorder interface {
	CardEnriched()
	BenefitDropped(reason string)
	RunCompleted(stage string, duration time.Duration, err error)
}

type noopRecorder struct{}

func (noopRecorder) CardEnriched()                             {}
func (noopRecorder) BenefitDropped(string)                     {}
func (noopRecorder) RunCompleted(string, time.Duration, error) {}

// EnrichmentServiceConfig holds configuration for the enrichment service
type EnrichmentServiceConfig struct {
	DisplayPolicy SummaryPolicy
	SummaryPolicy SummaryPolicy
}

// EnrichmentReport summarizes one enrichment run
type EnrichmentReport struct {
	RunID           string
	RulesVersion    string
	Cards           int
	Benefits        int
	DisplayBenefits int
	SummaryBenefits int
	DroppedBenefits map[string]int
	Duration        time.Duration
}

// EnrichmentService recomputes every derived card field from the stored catalog
type EnrichmentService struct {
	store         domain.CatalogStore
	summarizer    *CardSummarizer
	enricher      *MetadataEnricher
	displayPolicy SummaryPolicy
	summaryPolicy SummaryPolicy
	recorder      PipelineRecorder
	catalogCache  domain.CacheRepository
	logger        *zap.Logger
}

// NewEnrichmentService creates a new enrichment service with dependencies.
// Zero policies select DisplayPolicy() and SummaryListPolicy().
func NewEnrichmentService(
	store domain.CatalogStore,
	summarizer *CardSummarizer,
	enricher *MetadataEnricher,
	recorder PipelineRecorder,
	config EnrichmentServiceConfig,
	logger *zap.Logger,
) *EnrichmentService {
	displayPolicy := config.DisplayPolicy
	if displayPolicy.Selection == "" {
		displayPolicy = DisplayPolicy()
	}
	summaryPolicy := config.SummaryPolicy
	if summaryPolicy.Selection == "" {
		summaryPolicy = SummaryListPolicy()
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &EnrichmentService{
		store:         store,
		summarizer:    summarizer,
		enricher:      enricher,
		displayPolicy: displayPolicy,
		summaryPolicy: summaryPolicy,
		recorder:      recorder,
		logger:        logger,
	}
}

// SetCatalogCache sets the cache whose catalog entry is dropped after each save
func (s *EnrichmentService) SetCatalogCache(cache domain.CacheRepository) {
	s.catalogCache = cache
}

// Run loads the catalog, enriches every card and writes the catalog back.
// Nothing is written unless the enriched catalog validates.
func (s *EnrichmentService) Run(ctx context.Context) (report *EnrichmentReport, err error) {
	start := time.Now()
	defer func() {
		s.recorder.RunCompleted("enrich", time.Since(start), err)
	}()

	catalog, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	report = s.EnrichCatalog(catalog)

	if err := catalog.Validate(); err != nil {
		return report, err
	}
	if err := s.store.Save(ctx, catalog); err != nil {
		return report, fmt.Errorf("failed to save catalog: %w", err)
	}
	invalidateCatalogCache(ctx, s.catalogCache, s.logger)

	report.Duration = time.Since(start)
	s.logger.Info("Enrichment run completed",
		zap.String("run_id", report.RunID),
		zap.String("rules_version", report.RulesVersion),
		zap.Int("cards", report.Cards),
		zap.Int("benefits", report.Benefits),
		zap.Int("display_benefits", report.DisplayBenefits),
		zap.Any("dropped", report.DroppedBenefits),
		zap.Duration("duration", report.Duration))

	return report, nil
}

// EnrichCatalog enriches all cards in place and recomputes the catalog category set.
// Raw benefits are never modified, so repeated runs produce identical output.
func (s *EnrichmentService) EnrichCatalog(catalog *domain.CardCatalog) *EnrichmentReport {
	report := &EnrichmentReport{
		RunID:           uuid.NewString(),
		RulesVersion:    RulesVersion,
		DroppedBenefits: make(map[string]int),
	}

	for i := range catalog.Cards {
		card := &catalog.Cards[i]
		evals := s.EnrichCard(card)

		report.Cards++
		report.Benefits += len(card.Benefits)
		report.DisplayBenefits += len(card.DisplayBenefits)
		report.SummaryBenefits += len(card.SummarizedBenefits)
		for _, e := range evals {
			if !e.Kept() {
				report.DroppedBenefits[e.DropReason]++
				s.recorder.BenefitDropped(e.DropReason)
			}
		}
		s.recorder.CardEnriched()
	}

	catalog.TotalCards = len(catalog.Cards)
	catalog.Categories = CatalogCategories(catalog.Cards)
	return report
}

// EnrichCard recomputes the summaries and presentation metadata of one card
func (s *EnrichmentService) EnrichCard(card *domain.Card) []Evaluation {
	evals := s.summarizer.EvaluateAll(card.Benefits)

	card.DisplayBenefits = s.summarizer.Select(evals, s.displayPolicy)
	card.SummarizedBenefits = s.summarizer.Select(evals, s.summaryPolicy)

	meta := s.enricher.Resolve(card.Name, ResolvedCategories(evals))
	card.PrimaryColor = meta.PrimaryColor
	card.SecondaryColor = meta.SecondaryColor
	card.Tagline = meta.Tagline

	s.logger.Debug("Card enriched",
		zap.String("card_id", card.ID),
		zap.Int("display_benefits", len(card.DisplayBenefits)),
		zap.String("tagline", card.Tagline))

	return evals
}

// CatalogCategories returns the sorted set of categories observed on
// benefits, display benefits and summaries
func CatalogCategories(cards []domain.Card) []domain.Category {
	seen := make(map[domain.Category]bool)
	add := func(c domain.Category) {
		if c.Valid() {
			seen[c] = true
		}
	}
	for _, card := range cards {
		for _, b := range card.Benefits {
			add(b.Category)
		}
		for _, d := range card.DisplayBenefits {
			add(d.Category)
		}
		for _, d := range card.SummarizedBenefits {
			add(d.Category)
		}
	}

	out := make([]domain.Category, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/domain"
)

const (
	titleDisclaimer    = "유의사항"
	titleSelectBundle  = "선택형"
	markerOptionDiffer = "선택 옵션에 따른"
)

// Drop reasons reported for benefits that yield no summary
const (
	DropDisclaimer         = "disclaimer"
	DropOptionWithoutValue = "option_without_value"
	DropUnclassified       = "unclassified"
	DropNoTarget           = "no_target"
	DropNoDiscount         = "no_discount"
)

// SelectionMode decides which benefit represents a dedup key
type SelectionMode string

const (
	SelectBest  SelectionMode = "best"
	SelectFirst SelectionMode = "first"
)

// DedupKey decides what counts as a duplicate summary
type DedupKey string

const (
	DedupCategory        DedupKey = "category"
	DedupCategorySummary DedupKey = "category_summary"
)

// UnclassifiedPolicy decides what happens to benefits the classifier cannot place
type UnclassifiedPolicy string

const (
	UnclassifiedDrop     UnclassifiedPolicy = "drop"
	UnclassifiedFallback UnclassifiedPolicy = "fallback"
)

// ValueComparison decides how comparable values of different units are ordered
type ValueComparison string

const (
	// CompareRaw compares magnitudes regardless of unit
	CompareRaw ValueComparison = "raw"
	// CompareUnitRank orders percent > won > mileage > none, then by magnitude
	CompareUnitRank ValueComparison = "unit_rank"
)

// SummaryPolicy configures one summary output of a card
type SummaryPolicy struct {
	Selection            SelectionMode
	DedupKey             DedupKey
	MaxResults           int // 0 means unlimited
	ExcludeSelectOptions bool
	SortByValue          bool
}

// DisplayPolicy is the default for display_benefits
func DisplayPolicy() SummaryPolicy {
	return SummaryPolicy{
		Selection:   SelectBest,
		DedupKey:    DedupCategory,
		MaxResults:  4,
		SortByValue: true,
	}
}

// SummaryListPolicy is the default for summarized_benefits
func SummaryListPolicy() SummaryPolicy {
	return SummaryPolicy{
		Selection: SelectFirst,
		DedupKey:  DedupCategorySummary,
	}
}

// LegacyDisplayPolicy keeps the first benefit per category, four at most, without select options
func LegacyDisplayPolicy() SummaryPolicy {
	return SummaryPolicy{
		Selection:            SelectFirst,
		DedupKey:             DedupCategory,
		MaxResults:           4,
		ExcludeSelectOptions: true,
	}
}

// Validate checks that the policy uses known modes
func (p SummaryPolicy) Validate() error {
	switch p.Selection {
	case SelectBest, SelectFirst:
	default:
		return fmt.Errorf("%w: unknown selection mode %q", domain.ErrInvalidRequest, p.Selection)
	}
	switch p.DedupKey {
	case DedupCategory, DedupCategorySummary:
	default:
		return fmt.Errorf("%w: unknown dedup key %q", domain.ErrInvalidRequest, p.DedupKey)
	}
	if p.MaxResults < 0 {
		return fmt.Errorf("%w: negative max results", domain.ErrInvalidRequest)
	}
	return nil
}

// Unit is the unit of a comparable benefit value
type Unit int

const (
	UnitNone Unit = iota
	UnitMileage
	UnitWon
	UnitPercent
)

// Magnitude is the comparable value of a benefit
type Magnitude struct {
	Value float64
	Unit  Unit
}

// Evaluation is the outcome of running one benefit through the pipeline
type Evaluation struct {
	Index          int
	Title          string
	Category       domain.Category // set even when a later stage dropped the benefit
	Target         string
	Summary        string
	Value          Magnitude
	IsSelectOption bool
	DropReason     string // empty when the benefit produced a summary
}

// Kept reports whether the benefit produced a summary
func (e Evaluation) Kept() bool {
	return e.DropReason == ""
}

// Display converts a kept evaluation into its display form
func (e Evaluation) Display() domain.DisplayBenefit {
	return domain.DisplayBenefit{
		Category:       e.Category,
		Summary:        e.Summary,
		IsSelectOption: e.IsSelectOption,
	}
}

// SummarizerConfig holds configuration for the card summarizer
type SummarizerConfig struct {
	Rules              *Rules
	Unclassified       UnclassifiedPolicy
	Comparison         ValueComparison
	EnableDebugLogging bool
}

// CardSummarizer turns normalized benefits into deduplicated display summaries
type CardSummarizer struct {
	classifier   *Classifier
	extractor    *TargetExtractor
	formatter    *DiscountFormatter
	unclassified UnclassifiedPolicy
	comparison   ValueComparison
	debug        bool
	logger       *zap.Logger
}

// NewCardSummarizer creates a summarizer with the given configuration
func NewCardSummarizer(config SummarizerConfig, logger *zap.Logger) *CardSummarizer {
	rules := config.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	unclassified := config.Unclassified
	if unclassified == "" {
		unclassified = UnclassifiedDrop
	}
	comparison := config.Comparison
	if comparison == "" {
		comparison = CompareRaw
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CardSummarizer{
		classifier:   NewClassifier(rules),
		extractor:    NewTargetExtractor(rules),
		formatter:    NewDiscountFormatter(),
		unclassified: unclassified,
		comparison:   comparison,
		debug:        config.EnableDebugLogging,
		logger:       logger,
	}
}

// Evaluate runs one benefit through exclusion, classification, target extraction and formatting
func (s *CardSummarizer) Evaluate(index int, b domain.NormalizedBenefit) Evaluation {
	eval := Evaluation{
		Index:          index,
		Title:          b.Title,
		IsSelectOption: b.IsSelectOption,
	}

	if b.Title == titleDisclaimer || strings.Contains(b.Description, titleDisclaimer) {
		return s.drop(eval, DropDisclaimer)
	}
	if strings.Contains(b.Description, markerOptionDiffer) && !b.Discount.HasValue() {
		return s.drop(eval, DropOptionWithoutValue)
	}

	category, ok := s.classifier.Classify(b.Description, b.Detail)
	if !ok {
		if s.unclassified != UnclassifiedFallback {
			return s.drop(eval, DropUnclassified)
		}
		category = domain.CategoryOther
		if b.Category.Valid() {
			category = b.Category
		}
	}
	eval.Category = category

	text := benefitText(b.Description, b.Detail)
	eval.Target = s.extractor.Extract(text, category)
	if eval.Target == "" {
		return s.drop(eval, DropNoTarget)
	}

	phrase, ok := s.formatter.Format(text, b.Discount, eval.Target, category)
	if !ok {
		return s.drop(eval, DropNoDiscount)
	}
	eval.Summary = phrase.Summary(eval.Target)
	eval.Value = ComparableValue(text, b.Discount)

	if s.debug {
		s.logger.Debug("Benefit summarized",
			zap.Int("index", index),
			zap.String("category", category.String()),
			zap.String("summary", eval.Summary),
			zap.Float64("value", eval.Value.Value))
	}
	return eval
}

func (s *CardSummarizer) drop(eval Evaluation, reason string) Evaluation {
	eval.DropReason = reason
	if s.debug {
		s.logger.Debug("Benefit dropped",
			zap.Int("index", eval.Index),
			zap.String("title", eval.Title),
			zap.String("reason", reason))
	}
	return eval
}

// EvaluateAll evaluates every benefit of a card in order
func (s *CardSummarizer) EvaluateAll(benefits []domain.NormalizedBenefit) []Evaluation {
	evals := make([]Evaluation, 0, len(benefits))
	for i, b := range benefits {
		evals = append(evals, s.Evaluate(i, b))
	}
	return evals
}

// Summarize evaluates benefits and applies policy
func (s *CardSummarizer) Summarize(benefits []domain.NormalizedBenefit, policy SummaryPolicy) []domain.DisplayBenefit {
	return s.Select(s.EvaluateAll(benefits), policy)
}

// Select applies a summary policy to evaluated benefits
func (s *CardSummarizer) Select(evals []Evaluation, policy SummaryPolicy) []domain.DisplayBenefit {
	var chosen []Evaluation
	index := make(map[string]int)

	for _, e := range evals {
		if !e.Kept() {
			continue
		}
		if policy.ExcludeSelectOptions && (e.IsSelectOption || e.Title == titleSelectBundle) {
			continue
		}

		key := e.Category.String()
		if policy.DedupKey == DedupCategorySummary {
			key += "\x00" + e.Summary
		}

		if policy.Selection == SelectFirst {
			if _, seen := index[key]; seen {
				continue
			}
			if policy.MaxResults > 0 && len(chosen) >= policy.MaxResults {
				break
			}
			index[key] = len(chosen)
			chosen = append(chosen, e)
			continue
		}

		pos, seen := index[key]
		if !seen {
			index[key] = len(chosen)
			chosen = append(chosen, e)
			continue
		}
		if s.better(e.Value, chosen[pos].Value) {
			chosen[pos] = e
		}
	}

	if policy.SortByValue {
		sort.SliceStable(chosen, func(i, j int) bool {
			return s.better(chosen[i].Value, chosen[j].Value)
		})
	}
	if policy.MaxResults > 0 && len(chosen) > policy.MaxResults {
		chosen = chosen[:policy.MaxResults]
	}

	out := make([]domain.DisplayBenefit, 0, len(chosen))
	for _, e := range chosen {
		out = append(out, e.Display())
	}
	return out
}

// better reports whether a strictly outranks b
func (s *CardSummarizer) better(a, b Magnitude) bool {
	if s.comparison == CompareUnitRank && a.Unit != b.Unit {
		return a.Unit > b.Unit
	}
	return a.Value > b.Value
}

// ResolvedCategories returns the distinct classifier categories of evaluated
// benefits, in first-seen order. Benefits dropped after classification (no
// target or no discount) still contribute their category; benefits dropped
// before classification do not.
func ResolvedCategories(evals []Evaluation) []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, e := range evals {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		out = append(out, e.Category)
	}
	return out
}

// ComparableValue returns the magnitude used to rank benefits of one category:
// the pre-parsed value, else the first percent, won amount or mileage count in text.
func ComparableValue(text string, discount domain.Discount) Magnitude {
	if discount.HasValue() {
		unit := UnitNone
		switch discount.Type {
		case domain.DiscountPercent:
			unit = UnitPercent
		case domain.DiscountWon:
			unit = UnitWon
		}
		return Magnitude{Value: *discount.Value, Unit: unit}
	}
	if m := percentRegex.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Magnitude{Value: v, Unit: UnitPercent}
		}
	}
	if v, ok := firstAmount(wonAmountRegex, text); ok {
		return Magnitude{Value: float64(v), Unit: UnitWon}
	}
	if v, ok := firstAmount(mileageCountRegex, text); ok {
		return Magnitude{Value: float64(v), Unit: UnitMileage}
	}
	return Magnitude{}
}

package usecase

import (
	"strings"

	"github.com/cardlens/backend/internal/domain"
)

// TargetExtractor picks the merchant or service a benefit applies to
type TargetExtractor struct {
	rules *Rules
}

// NewTargetExtractor creates an extractor. A nil rules value selects DefaultRules().
func NewTargetExtractor(rules *Rules) *TargetExtractor {
	if rules == nil {
		rules = DefaultRules()
	}
	return &TargetExtractor{rules: rules}
}

// Extract returns the most specific target label for text under category.
// Precedence: brand table, category label, generic rules, category default,
// and finally the category string itself (empty when category is absent).
func (e *TargetExtractor) Extract(text string, category domain.Category) string {
	lower := strings.ToLower(text)

	for _, brand := range e.rules.Brands {
		if strings.Contains(lower, brand.Keyword) {
			return brand.Label
		}
	}

	if label, ok := e.rules.CategoryTargets[category]; ok {
		return label
	}

	for _, rule := range e.rules.GenericTargets {
		if containsAny(lower, rule.AnyOf) || containsAll(lower, rule.AllOf) {
			return rule.Label
		}
	}

	if label, ok := e.rules.DefaultTargets[category]; ok {
		return label
	}
	return string(category)
}

func containsAll(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

package usecase

import (
	"strings"

	"github.com/cardlens/backend/internal/domain"
)

// Classifier assigns a benefit to the first category, in priority order,
// whose keyword set occurs in the benefit text
type Classifier struct {
	rules []KeywordRule
}

// NewClassifier creates a classifier over the priority-ordered category rules.
// A nil rules value selects DefaultRules().
func NewClassifier(rules *Rules) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules.Categories}
}

// Classify classifies the combined description and detail of a benefit.
// Returns false when no category keyword occurs.
func (c *Classifier) Classify(description, detail string) (domain.Category, bool) {
	return c.ClassifyText(benefitText(description, detail))
}

// ClassifyText classifies arbitrary text; matching is case-insensitive
func (c *Classifier) ClassifyText(text string) (domain.Category, bool) {
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		if containsAny(lower, rule.Keywords) {
			return rule.Category, true
		}
	}
	return "", false
}

func benefitText(description, detail string) string {
	return description + " " + detail
}

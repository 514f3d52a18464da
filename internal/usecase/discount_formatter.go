package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cardlens/backend/internal/domain"
)

// Wording used in discount phrases
const (
	wordDiscount = "할인"
	wordAccrual  = "적립"
	wordFree     = "무료"
	wordMileage  = "마일리지"
	wordSkypass  = "스카이패스"

	phraseMileageGeneric = "마일리지 적립"
	phraseFree           = "무료 제공"
	phraseGeneric        = "혜택"

	manwon = 10000
)

var (
	mileageCountRegex = regexp.MustCompile(`(\d[\d,]*)` + spaceClass + `*마일`)
	mileageMaxRegex   = regexp.MustCompile(`최대` + spaceClass + `*(\d[\d,]*)` + spaceClass + `*마일`)
	wonAmountRegex    = regexp.MustCompile(`(\d[\d,]*)` + spaceClass + `*원`)
)

// PhraseKind tells which formatting rule produced a phrase
type PhraseKind int

const (
	PhraseMileage PhraseKind = iota + 1
	PhrasePercent
	PhraseWon
	PhraseFree
	PhraseGeneric
)

// Phrase is a formatted discount without its target
type Phrase struct {
	Text string
	Kind PhraseKind
}

// Summary composes the display string. Mileage phrases carry no target prefix.
func (p Phrase) Summary(target string) string {
	if p.Kind == PhraseMileage || target == "" {
		return p.Text
	}
	return target + " " + p.Text
}

// Suffixes of the target-anchored patterns
const (
	anchoredPercentSuffix = `[^0-9]*(\d+(?:\.\d+)?)` + spaceClass + `*%`
	anchoredMileageSuffix = `.*?(\d[\d,]*)` + spaceClass + `*마일`
)

// DiscountFormatter renders the amount phrase of a benefit.
// It is safe for concurrent use.
type DiscountFormatter struct {
	printer *message.Printer

	// compiled target-anchored patterns keyed by target
	percentPatterns sync.Map
	mileagePatterns sync.Map
}

// NewDiscountFormatter creates a formatter printing amounts with Korean digit grouping
func NewDiscountFormatter() *DiscountFormatter {
	return &DiscountFormatter{printer: message.NewPrinter(language.Korean)}
}

// Format applies the formatting rules in priority order. Returns false when
// nothing can be extracted, in which case the benefit is not displayed.
func (f *DiscountFormatter) Format(text string, discount domain.Discount, target string, category domain.Category) (Phrase, bool) {
	lower := strings.ToLower(text)

	if category == domain.CategoryAirMileage &&
		(strings.Contains(target, wordSkypass) || strings.Contains(lower, wordMileage)) {
		return f.formatMileage(text, target), true
	}

	word := wordDiscount
	if strings.Contains(text, wordAccrual) && !strings.Contains(text, wordDiscount) {
		word = wordAccrual
	}

	if target != "" && !isMileageTarget(target) {
		anchored := anchoredPattern(&f.percentPatterns, target, anchoredPercentSuffix)
		if m := anchored.FindStringSubmatch(text); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return Phrase{Text: formatPercent(v) + " " + word, Kind: PhrasePercent}, true
			}
		}
	}

	if discount.Value != nil && *discount.Value > 1 {
		switch discount.Type {
		case domain.DiscountPercent:
			return Phrase{Text: formatPercent(*discount.Value) + " " + word, Kind: PhrasePercent}, true
		case domain.DiscountWon:
			return Phrase{Text: f.formatWon(int(*discount.Value)) + " " + word, Kind: PhraseWon}, true
		}
	}

	if m := percentRegex.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Phrase{Text: formatPercent(v) + " " + word, Kind: PhrasePercent}, true
		}
	}

	if v, ok := firstAmount(wonAmountRegex, text); ok {
		// a lone "1원" is parsing noise
		if v > 1 {
			return Phrase{Text: f.formatWon(v) + " " + word, Kind: PhraseWon}, true
		}
	}

	if strings.Contains(text, wordFree) {
		return Phrase{Text: phraseFree, Kind: PhraseFree}, true
	}
	if strings.Contains(text, wordDiscount) || strings.Contains(text, wordAccrual) {
		return Phrase{Text: phraseGeneric, Kind: PhraseGeneric}, true
	}
	return Phrase{}, false
}

func (f *DiscountFormatter) formatMileage(text, target string) Phrase {
	patterns := []*regexp.Regexp{mileageCountRegex, mileageMaxRegex}
	if target != "" {
		patterns = append(patterns,
			anchoredPattern(&f.mileagePatterns, target, anchoredMileageSuffix))
	}
	for _, re := range patterns {
		if v, ok := firstAmount(re, text); ok {
			return Phrase{Text: strconv.Itoa(v) + "마일 적립", Kind: PhraseMileage}
		}
	}
	return Phrase{Text: phraseMileageGeneric, Kind: PhraseMileage}
}

// anchoredPattern returns the case-insensitive pattern target+suffix, compiling it once per target
func anchoredPattern(cache *sync.Map, target, suffix string) *regexp.Regexp {
	if re, ok := cache.Load(target); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(target) + suffix)
	actual, _ := cache.LoadOrStore(target, re)
	return actual.(*regexp.Regexp)
}

// formatWon renders amounts of 10,000 and above in 만원 units, truncating the remainder
func (f *DiscountFormatter) formatWon(v int) string {
	if v >= manwon {
		return fmt.Sprintf("%d만원", v/manwon)
	}
	return f.printer.Sprintf("%d원", v)
}

func formatPercent(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10) + "%"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func isMileageTarget(target string) bool {
	return strings.Contains(target, wordSkypass) || strings.Contains(target, wordMileage)
}

// firstAmount returns the first capture of re in text as an integer, commas removed
func firstAmount(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return v, true
}

package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/cardlens/backend/internal/domain"
)

// Field limits applied when a raw benefit is normalized
const (
	maxDescriptionRunes = 300
	maxDetailRunes      = 500
)

const cardDetailURLFormat = "https://www.card-gorilla.com/card/detail/%d"

// spaceClass matches ASCII whitespace and Unicode space separators such as U+00A0
const spaceClass = `[\s\p{Zs}]`

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRegex = regexp.MustCompile(spaceClass + `+`)
	digitsRegex     = regexp.MustCompile(`\d+`)
	percentRegex    = regexp.MustCompile(`(\d+(?:\.\d+)?)` + spaceClass + `*%`)
)

// Normalizer turns raw API card details into catalog records
type Normalizer struct {
	pretag []KeywordRule
	logger *zap.Logger
}

// NewNormalizer creates a normalizer using the given pre-tag table.
// A nil table selects PretagRules().
func NewNormalizer(pretag []KeywordRule, logger *zap.Logger) *Normalizer {
	if pretag == nil {
		pretag = PretagRules()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{pretag: pretag, logger: logger}
}

// NormalizeCard maps a raw card to a catalog card. Derived fields are left empty.
func (n *Normalizer) NormalizeCard(raw *domain.RawCard) domain.Card {
	name := nfc(raw.Name)
	if name == "" {
		name = "Unknown"
	}

	card := domain.Card{
		ID:        strconv.Itoa(raw.CID),
		Name:      name,
		DetailURL: fmt.Sprintf(cardDetailURLFormat, raw.CID),
		ImageURL:  raw.ImageURL,
		Benefits:  make([]domain.NormalizedBenefit, 0, len(raw.Benefits)),
	}

	if raw.AnnualFeeBasic != "" || raw.AnnualFeeDetail != "" {
		fee := &domain.AnnualFee{Raw: raw.AnnualFeeBasic}
		if fee.Raw == "" {
			fee.Raw = raw.AnnualFeeDetail
		}
		if v, ok := ExtractNumber(raw.AnnualFeeBasic); ok {
			fee.Domestic = &v
		}
		card.AnnualFee = fee
	}

	if v, ok := ExtractNumber(raw.PreMonthMoney); ok {
		card.MinSpending = &v
	}

	for _, rb := range raw.Benefits {
		card.Benefits = append(card.Benefits, n.NormalizeBenefit(rb))
	}

	n.logger.Debug("Normalized card",
		zap.String("card_id", card.ID),
		zap.Int("benefits", len(card.Benefits)))

	return card
}

// NormalizeBenefit strips, truncates and pre-tags one raw benefit
func (n *Normalizer) NormalizeBenefit(raw domain.RawBenefit) domain.NormalizedBenefit {
	title := nfc(raw.Title)
	comment := nfc(raw.Comment)
	info := StripHTML(nfc(raw.InfoHTML))

	b := domain.NormalizedBenefit{
		Category:       n.Pretag(title + " " + comment + " " + info),
		Title:          title,
		Description:    title,
		Detail:         Truncate(info, maxDetailRunes),
		Discount:       ParseDiscount(comment),
		IsSelectOption: isSelectOption(title, comment),
	}
	if comment != "" {
		b.Description = Truncate(comment, maxDescriptionRunes)
	}
	return b
}

// Pretag returns the first category of the pre-tag table whose keywords occur in text,
// or the empty category.
func (n *Normalizer) Pretag(text string) domain.Category {
	for _, rule := range n.pretag {
		if containsAny(text, rule.Keywords) {
			return rule.Category
		}
	}
	return ""
}

// ParseDiscount reads the headline figure of a benefit comment
func ParseDiscount(comment string) domain.Discount {
	d := domain.Discount{Raw: comment}
	switch {
	case strings.Contains(comment, "%"):
		d.Type = domain.DiscountPercent
		if m := percentRegex.FindStringSubmatch(comment); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				d.Value = &v
			}
		}
	case strings.Contains(comment, "원"):
		d.Type = domain.DiscountWon
		if n, ok := ExtractNumber(comment); ok {
			v := float64(n)
			d.Value = &v
		}
	}
	return d
}

func isSelectOption(title, comment string) bool {
	return strings.Contains(comment, "[SELECT") ||
		strings.Contains(comment, "택 1") ||
		strings.Contains(title, "선택")
}

// StripHTML returns the visible text of an HTML fragment with whitespace collapsed.
// Entities are decoded and every tag boundary becomes a space.
func StripHTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// regex fallback for input the tokenizer rejects
		text := htmlTagRegex.ReplaceAllString(html.UnescapeString(s), " ")
		return collapseWhitespace(text)
	}

	var sb strings.Builder
	for _, node := range doc.Nodes {
		collectText(node, &sb)
	}
	return collapseWhitespace(sb.String())
}

func collectText(node *html.Node, sb *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		sb.WriteString(node.Data)
		sb.WriteByte(' ')
		return
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
		sb.WriteByte(' ')
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// ExtractNumber returns the first integer in s, ignoring thousands separators
func ExtractNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	m := digitsRegex.FindString(strings.ReplaceAll(s, ",", ""))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Truncate cuts s to at most limit runes
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func nfc(s string) string {
	return norm.NFC.String(s)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

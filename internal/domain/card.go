package domain

// DiscountType tells how Discount.Value should be read
type DiscountType string

const (
	DiscountNone    DiscountType = ""
	DiscountPercent DiscountType = "percent"
	DiscountWon     DiscountType = "won"
)

// RawBenefit is one benefit entry as delivered by the card data API
type RawBenefit struct {
	Title    string `json:"title"`
	Comment  string `json:"comment"`  // marketing blurb, may contain %, 원 or 마일 tokens
	InfoHTML string `json:"infoHtml"` // verbose HTML description
}

// RawCard is one card detail as delivered by the card data API, with
// polymorphic upstream fields already flattened to text.
type RawCard struct {
	CID             int          `json:"cid"`
	Name            string       `json:"name"`
	ImageURL        string       `json:"image_url"`
	AnnualFeeBasic  string       `json:"annual_fee_basic"`
	AnnualFeeDetail string       `json:"annual_fee_detail"`
	PreMonthMoney   string       `json:"pre_month_money"`
	Benefits        []RawBenefit `json:"key_benefit"`
}

// Discount is the pre-parsed discount figure of a benefit
type Discount struct {
	Type  DiscountType `json:"type,omitempty"`
	Value *float64     `json:"value,omitempty"`
	Raw   string       `json:"raw"`
}

// HasValue reports whether a numeric value was parsed
func (d Discount) HasValue() bool {
	return d.Value != nil && *d.Value != 0
}

// NormalizedBenefit is a RawBenefit after HTML stripping, truncation and pre-tagging.
// Category and Discount are best-effort and may be wrong.
type NormalizedBenefit struct {
	Category       Category `json:"category,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Detail         string   `json:"detail,omitempty"`
	Discount       Discount `json:"discount"`
	IsSelectOption bool     `json:"is_select_option"`
}

// DisplayBenefit is the short human-readable form of a benefit shown on a card tile
type DisplayBenefit struct {
	Category       Category `json:"category"`
	Summary        string   `json:"summary"`
	IsSelectOption bool     `json:"is_select_option"`
}

// AnnualFee holds the parsed and raw annual fee text
type AnnualFee struct {
	Domestic *int   `json:"domestic"`
	Raw      string `json:"raw"`
}

// Card is the unit of persistence. Enrichment stages overwrite its derived fields in place.
type Card struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	DetailURL          string              `json:"detail_url"`
	ImageURL           string              `json:"image_url,omitempty"`
	AnnualFee          *AnnualFee          `json:"annual_fee,omitempty"`
	MinSpending        *int                `json:"min_spending,omitempty"`
	Benefits           []NormalizedBenefit `json:"benefits"`
	DisplayBenefits    []DisplayBenefit    `json:"display_benefits,omitempty"`
	SummarizedBenefits []DisplayBenefit    `json:"summarized_benefits,omitempty"`
	PrimaryColor       string              `json:"primary_color,omitempty"`
	SecondaryColor     string              `json:"secondary_color,omitempty"`
	Tagline            string              `json:"tagline,omitempty"`
}

// HasDisplayCategory reports whether any display benefit belongs to category
func (c *Card) HasDisplayCategory(category Category) bool {
	for _, b := range c.DisplayBenefits {
		if b.Category == category {
			return true
		}
	}
	return false
}

// CardCatalog is the persisted document
type CardCatalog struct {
	CrawledAt  string     `json:"crawled_at"`
	Source     string     `json:"source"`
	TotalCards int        `json:"total_cards"`
	Categories []Category `json:"categories"`
	Cards      []Card     `json:"cards"`
}

// FindCard returns the card with the given id, or nil
func (c *CardCatalog) FindCard(id string) *Card {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			return &c.Cards[i]
		}
	}
	return nil
}

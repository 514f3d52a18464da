package cardgorilla

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/cardlens/backend/internal/domain"
)

// listResponse is the card list payload of GET /cards
type listResponse struct {
	Data []struct {
		CID int `json:"cid"`
	} `json:"data"`
	Total int `json:"total"`
}

// detailResponse is the card detail payload of GET /cards/{cid}.
// Polymorphic fields are kept raw and flattened by the mapper.
type detailResponse struct {
	CID             int               `json:"cid"`
	Name            string            `json:"name"`
	CardImg         json.RawMessage   `json:"card_img"`
	AnnualFeeBasic  json.RawMessage   `json:"annual_fee_basic"`
	AnnualFeeDetail json.RawMessage   `json:"annual_fee_detail"`
	PreMonthMoney   json.RawMessage   `json:"pre_month_money"`
	KeyBenefit      []benefitResponse `json:"key_benefit"`
}

type benefitResponse struct {
	Title   string `json:"title"`
	Comment string `json:"comment"`
	Info    string `json:"info"`
}

// MapToRawCard converts a detail payload to our domain RawCard
func MapToRawCard(detail *detailResponse) *domain.RawCard {
	card := &domain.RawCard{
		CID:             detail.CID,
		Name:            detail.Name,
		ImageURL:        imageURL(detail.CardImg),
		AnnualFeeBasic:  rawText(detail.AnnualFeeBasic),
		AnnualFeeDetail: rawText(detail.AnnualFeeDetail),
		PreMonthMoney:   rawText(detail.PreMonthMoney),
		Benefits:        make([]domain.RawBenefit, 0, len(detail.KeyBenefit)),
	}
	for _, b := range detail.KeyBenefit {
		card.Benefits = append(card.Benefits, domain.RawBenefit{
			Title:    b.Title,
			Comment:  b.Comment,
			InfoHTML: b.Info,
		})
	}
	return card
}

// imageURL reads card_img, which is either {"url": ...} or a plain string
func imageURL(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.URL
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

// rawText flattens a string or number field to text. Null, zero and
// unsupported values become "" so they read as absent downstream.
func rawText(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == 0 {
			return ""
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

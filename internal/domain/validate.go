package domain

import "fmt"

// Validate checks the invariants a catalog must satisfy before it is written.
// The returned error wraps ErrInvalidCatalog.
func (c *CardCatalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil catalog", ErrInvalidCatalog)
	}
	if c.TotalCards != len(c.Cards) {
		return fmt.Errorf("%w: total_cards=%d but %d cards", ErrInvalidCatalog, c.TotalCards, len(c.Cards))
	}
	for _, cat := range c.Categories {
		if !cat.Valid() {
			return fmt.Errorf("%w: catalog category %q outside vocabulary", ErrInvalidCatalog, cat)
		}
	}

	seen := make(map[string]bool, len(c.Cards))
	for i := range c.Cards {
		card := &c.Cards[i]
		if card.ID == "" || card.Name == "" {
			return fmt.Errorf("%w: card at index %d missing id or name", ErrInvalidCatalog, i)
		}
		if seen[card.ID] {
			return fmt.Errorf("%w: duplicate card id %s", ErrInvalidCatalog, card.ID)
		}
		seen[card.ID] = true

		for _, b := range card.Benefits {
			// absent is allowed on raw benefits, an unknown label is not
			if b.Category != "" && !b.Category.Valid() {
				return fmt.Errorf("%w: card %s benefit category %q outside vocabulary", ErrInvalidCatalog, card.ID, b.Category)
			}
		}
		for _, list := range [][]DisplayBenefit{card.DisplayBenefits, card.SummarizedBenefits} {
			for _, d := range list {
				if !d.Category.Valid() {
					return fmt.Errorf("%w: card %s summary category %q outside vocabulary", ErrInvalidCatalog, card.ID, d.Category)
				}
			}
		}
	}

	return nil
}

package usecase

import (
	"strings"

	"github.com/cardlens/backend/internal/domain"
)

// varietyThreshold is the number of distinct benefit categories that earns the variety tagline
const varietyThreshold = 4

// MetadataEnricher assigns a color pair and tagline to a card
type MetadataEnricher struct {
	table   *domain.MetadataTable
	curated map[string]domain.CuratedMetadata
}

// NewMetadataEnricher creates an enricher over table. A nil table selects DefaultMetadataTable().
func NewMetadataEnricher(table *domain.MetadataTable) *MetadataEnricher {
	if table == nil {
		table = DefaultMetadataTable()
	}
	curated := make(map[string]domain.CuratedMetadata, len(table.Curated))
	for _, c := range table.Curated {
		// first declaration wins on duplicate names
		if _, ok := curated[c.Name]; !ok {
			curated[c.Name] = c
		}
	}
	return &MetadataEnricher{table: table, curated: curated}
}

// Resolve returns the metadata for a card name given its resolved benefit categories.
//
// An exact curated entry is returned as-is. Otherwise colors and tagline come from
// the first keyword contained in the name (case-insensitive), else the defaults.
// Four or more categories force the variety tagline; fewer apply the
// coffee+shopping, fuel and air taglines in that order, but only over the default tagline.
func (e *MetadataEnricher) Resolve(name string, categories []domain.Category) domain.CardMetadata {
	if c, ok := e.curated[name]; ok {
		return domain.CardMetadata{
			PrimaryColor:   c.Colors.Primary,
			SecondaryColor: c.Colors.Secondary,
			Tagline:        c.Tagline,
		}
	}

	upper := strings.ToUpper(name)

	colors := e.table.DefaultColors
	for _, kc := range e.table.KeywordColors {
		if strings.Contains(upper, strings.ToUpper(kc.Keyword)) {
			colors = kc.Colors
			break
		}
	}

	tagline := e.table.DefaultTagline
	keywordTagline := false
	for _, kt := range e.table.KeywordTaglines {
		if strings.Contains(upper, strings.ToUpper(kt.Keyword)) {
			tagline = kt.Tagline
			keywordTagline = true
			break
		}
	}

	set := make(map[domain.Category]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}

	switch {
	case len(set) >= varietyThreshold:
		tagline = e.table.VarietyTagline
	case keywordTagline:
	case set[domain.CategoryCoffee] && set[domain.CategoryShopping]:
		tagline = e.table.CoffeeShoppingTagline
	case set[domain.CategoryFuel]:
		tagline = e.table.FuelTagline
	case set[domain.CategoryAirMileage]:
		tagline = e.table.AirTagline
	}

	return domain.CardMetadata{
		PrimaryColor:   colors.Primary,
		SecondaryColor: colors.Secondary,
		Tagline:        tagline,
	}
}

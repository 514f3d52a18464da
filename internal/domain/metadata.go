package domain

// ColorPair is the gradient used to render a card tile
type ColorPair struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// CuratedMetadata pins colors and tagline for an exact card name
type CuratedMetadata struct {
	Name    string    `json:"name"`
	Colors  ColorPair `json:"colors"`
	Tagline string    `json:"tagline"`
}

// KeywordColors applies when Keyword occurs in the card name
type KeywordColors struct {
	Keyword string    `json:"keyword"`
	Colors  ColorPair `json:"colors"`
}

// KeywordTagline applies when Keyword occurs in the card name
type KeywordTagline struct {
	Keyword string `json:"keyword"`
	Tagline string `json:"tagline"`
}

// MetadataTable is the configuration data behind card presentation metadata.
// Lists are ordered; the first matching entry wins.
type MetadataTable struct {
	Curated         []CuratedMetadata `json:"curated"`
	KeywordColors   []KeywordColors   `json:"keyword_colors"`
	KeywordTaglines []KeywordTagline  `json:"keyword_taglines"`

	DefaultColors  ColorPair `json:"default_colors"`
	DefaultTagline string    `json:"default_tagline"`

	// Category-derived taglines
	VarietyTagline        string `json:"variety_tagline"`
	CoffeeShoppingTagline string `json:"coffee_shopping_tagline"`
	FuelTagline           string `json:"fuel_tagline"`
	AirTagline            string `json:"air_tagline"`
}

// CardMetadata is the resolved presentation metadata for one card
type CardMetadata struct {
	PrimaryColor   string
	SecondaryColor string
	Tagline        string
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/cardlens/backend/internal/domain"
	"github.com/cardlens/backend/internal/usecase"
)

// metadataFile is the on-disk layout of a metadata table. Colors are
// written as [primary, secondary] pairs.
type metadataFile struct {
	Curated []struct {
		Name    string   `mapstructure:"name"`
		Colors  []string `mapstructure:"colors"`
		Tagline string   `mapstructure:"tagline"`
	} `mapstructure:"curated"`
	KeywordColors []struct {
		Keyword string   `mapstructure:"keyword"`
		Colors  []string `mapstructure:"colors"`
	} `mapstructure:"keyword_colors"`
	KeywordTaglines []struct {
		Keyword string `mapstructure:"keyword"`
		Tagline string `mapstructure:"tagline"`
	} `mapstructure:"keyword_taglines"`

	DefaultColors         []string `mapstructure:"default_colors"`
	DefaultTagline        string   `mapstructure:"default_tagline"`
	VarietyTagline        string   `mapstructure:"variety_tagline"`
	CoffeeShoppingTagline string   `mapstructure:"coffee_shopping_tagline"`
	FuelTagline           string   `mapstructure:"fuel_tagline"`
	AirTagline            string   `mapstructure:"air_tagline"`
}

// LoadMetadataTable reads a YAML or JSON metadata table. An empty path returns
// the built-in table. Scalar fields missing from the file keep their built-in values;
// lists present in the file replace the built-in lists.
func LoadMetadataTable(path string) (*domain.MetadataTable, error) {
	table := usecase.DefaultMetadataTable()
	if path == "" {
		return table, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "yml" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading metadata file: %w", err)
	}

	var file metadataFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("unable to decode metadata file: %w", err)
	}

	if v.IsSet("curated") {
		table.Curated = make([]domain.CuratedMetadata, 0, len(file.Curated))
		for i, c := range file.Curated {
			colors, err := colorPair(c.Colors)
			if err != nil {
				return nil, fmt.Errorf("curated[%d] %q: %w", i, c.Name, err)
			}
			table.Curated = append(table.Curated, domain.CuratedMetadata{Name: c.Name, Colors: colors, Tagline: c.Tagline})
		}
	}
	if v.IsSet("keyword_colors") {
		table.KeywordColors = make([]domain.KeywordColors, 0, len(file.KeywordColors))
		for i, kc := range file.KeywordColors {
			colors, err := colorPair(kc.Colors)
			if err != nil {
				return nil, fmt.Errorf("keyword_colors[%d] %q: %w", i, kc.Keyword, err)
			}
			table.KeywordColors = append(table.KeywordColors, domain.KeywordColors{Keyword: kc.Keyword, Colors: colors})
		}
	}
	if v.IsSet("keyword_taglines") {
		table.KeywordTaglines = make([]domain.KeywordTagline, 0, len(file.KeywordTaglines))
		for _, kt := range file.KeywordTaglines {
			table.KeywordTaglines = append(table.KeywordTaglines, domain.KeywordTagline{Keyword: kt.Keyword, Tagline: kt.Tagline})
		}
	}

	if v.IsSet("default_colors") {
		colors, err := colorPair(file.DefaultColors)
		if err != nil {
			return nil, fmt.Errorf("default_colors: %w", err)
		}
		table.DefaultColors = colors
	}
	setIfPresent(&table.DefaultTagline, file.DefaultTagline)
	setIfPresent(&table.VarietyTagline, file.VarietyTagline)
	setIfPresent(&table.CoffeeShoppingTagline, file.CoffeeShoppingTagline)
	setIfPresent(&table.FuelTagline, file.FuelTagline)
	setIfPresent(&table.AirTagline, file.AirTagline)

	return table, nil
}

func colorPair(colors []string) (domain.ColorPair, error) {
	if len(colors) != 2 {
		return domain.ColorPair{}, fmt.Errorf("colors must be [primary, secondary], got %d values", len(colors))
	}
	return domain.ColorPair{Primary: colors[0], Secondary: colors[1]}, nil
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

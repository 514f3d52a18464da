package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cardlens/backend/internal/usecase"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	CardGorilla CardGorillaConfig `mapstructure:"cardgorilla"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Enrich      EnrichConfig      `mapstructure:"enrich"`
	Log         LogConfig         `mapstructure:"log"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CardGorillaConfig holds card API client configuration
type CardGorillaConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Corp         int           `mapstructure:"corp"`
	PerPage      int           `mapstructure:"per_page"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
	Timeout      time.Duration `mapstructure:"timeout"`
	UserAgent    string        `mapstructure:"user_agent"`
	Referer      string        `mapstructure:"referer"`
	MaxRetries   int           `mapstructure:"max_retries"`
	Debug        bool          `mapstructure:"debug"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type       string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL   string        `mapstructure:"redis_url"`
	KeyPrefix  string        `mapstructure:"key_prefix"`
	TTL        time.Duration `mapstructure:"ttl"`         // card detail responses
	CatalogTTL time.Duration `mapstructure:"catalog_ttl"` // decoded catalog served by the API
}

// StorageConfig holds catalog storage configuration
type StorageConfig struct {
	Type        string `mapstructure:"type"` // "file" or "postgres"
	Path        string `mapstructure:"path"`
	DatabaseURL string `mapstructure:"database_url"`
	CatalogName string `mapstructure:"catalog_name"`
}

// PolicyConfig mirrors usecase.SummaryPolicy
type PolicyConfig struct {
	Selection            string `mapstructure:"selection"`
	DedupKey             string `mapstructure:"dedup_key"`
	MaxResults           int    `mapstructure:"max_results"`
	ExcludeSelectOptions bool   `mapstructure:"exclude_select_options"`
	SortByValue          bool   `mapstructure:"sort_by_value"`
}

// EnrichConfig holds enrichment pipeline configuration
type EnrichConfig struct {
	DisplayPolicy   PolicyConfig `mapstructure:"display_policy"`
	SummaryPolicy   PolicyConfig `mapstructure:"summary_policy"`
	Unclassified    string       `mapstructure:"unclassified"` // "drop" or "fallback"
	ValueComparison string       `mapstructure:"value_comparison"`
	MetadataFile    string       `mapstructure:"metadata_file"`
	Debug           bool         `mapstructure:"debug"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// MetricsConfig holds metrics exposition configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    string `mapstructure:"port"`
}

// Load loads configuration from .env, config files and environment variables
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cardlens/")

	// CARDLENS_STORAGE_DATABASE_URL -> storage.database_url
	v.SetEnvPrefix("CARDLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads .env from the working directory when present.
// Variables already set in the environment win.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Card API defaults
	v.SetDefault("cardgorilla.base_url", "https://api.card-gorilla.com:8080/v1")
	v.SetDefault("cardgorilla.corp", 1)
	v.SetDefault("cardgorilla.per_page", 200)
	v.SetDefault("cardgorilla.request_delay", "500ms")
	v.SetDefault("cardgorilla.timeout", "10s")
	v.SetDefault("cardgorilla.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	v.SetDefault("cardgorilla.referer", "https://www.card-gorilla.com/")
	v.SetDefault("cardgorilla.max_retries", 3)
	v.SetDefault("cardgorilla.debug", false)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.key_prefix", "cardlens:")
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.catalog_ttl", "5m")

	// Storage defaults
	v.SetDefault("storage.type", "file")
	v.SetDefault("storage.path", "data/samsung_cards.json")
	v.SetDefault("storage.database_url", "")
	v.SetDefault("storage.catalog_name", "samsung")

	// Enrichment defaults
	v.SetDefault("enrich.display_policy.selection", string(usecase.SelectBest))
	v.SetDefault("enrich.display_policy.dedup_key", string(usecase.DedupCategory))
	v.SetDefault("enrich.display_policy.max_results", 4)
	v.SetDefault("enrich.display_policy.exclude_select_options", false)
	v.SetDefault("enrich.display_policy.sort_by_value", true)
	v.SetDefault("enrich.summary_policy.selection", string(usecase.SelectFirst))
	v.SetDefault("enrich.summary_policy.dedup_key", string(usecase.DedupCategorySummary))
	v.SetDefault("enrich.summary_policy.max_results", 0)
	v.SetDefault("enrich.summary_policy.exclude_select_options", false)
	v.SetDefault("enrich.summary_policy.sort_by_value", false)
	v.SetDefault("enrich.unclassified", string(usecase.UnclassifiedDrop))
	v.SetDefault("enrich.value_comparison", string(usecase.CompareRaw))
	v.SetDefault("enrich.metadata_file", "")
	v.SetDefault("enrich.debug", false)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", "9090")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}
	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}
	if config.Cache.TTL < 0 || config.Cache.CatalogTTL < 0 {
		return fmt.Errorf("cache ttl and catalog_ttl must be >= 0")
	}

	switch config.Storage.Type {
	case "file":
		if config.Storage.Path == "" {
			return fmt.Errorf("storage path is required when storage type is 'file'")
		}
	case "postgres":
		if config.Storage.DatabaseURL == "" {
			return fmt.Errorf("database URL is required when storage type is 'postgres' (set CARDLENS_STORAGE_DATABASE_URL)")
		}
	default:
		return fmt.Errorf("storage type must be 'file' or 'postgres', got: %s", config.Storage.Type)
	}

	if config.CardGorilla.MaxRetries < 1 {
		return fmt.Errorf("cardgorilla max_retries must be at least 1, got: %d", config.CardGorilla.MaxRetries)
	}
	if config.CardGorilla.RequestDelay < 0 || config.CardGorilla.Timeout <= 0 {
		return fmt.Errorf("cardgorilla request_delay must be >= 0 and timeout > 0")
	}

	if err := config.Enrich.DisplayPolicy.Policy().Validate(); err != nil {
		return fmt.Errorf("display policy: %w", err)
	}
	if err := config.Enrich.SummaryPolicy.Policy().Validate(); err != nil {
		return fmt.Errorf("summary policy: %w", err)
	}
	switch usecase.UnclassifiedPolicy(config.Enrich.Unclassified) {
	case usecase.UnclassifiedDrop, usecase.UnclassifiedFallback:
	default:
		return fmt.Errorf("unclassified policy must be 'drop' or 'fallback', got: %s", config.Enrich.Unclassified)
	}
	switch usecase.ValueComparison(config.Enrich.ValueComparison) {
	case usecase.CompareRaw, usecase.CompareUnitRank:
	default:
		return fmt.Errorf("value comparison must be 'raw' or 'unit_rank', got: %s", config.Enrich.ValueComparison)
	}

	return nil
}

// Policy converts the config block into a summary policy. The name "legacy"
// in the selection field selects usecase.LegacyDisplayPolicy.
func (p PolicyConfig) Policy() usecase.SummaryPolicy {
	if p.Selection == "legacy" {
		return usecase.LegacyDisplayPolicy()
	}
	return usecase.SummaryPolicy{
		Selection:            usecase.SelectionMode(p.Selection),
		DedupKey:             usecase.DedupKey(p.DedupKey),
		MaxResults:           p.MaxResults,
		ExcludeSelectOptions: p.ExcludeSelectOptions,
		SortByValue:          p.SortByValue,
	}
}

// SummarizerConfig builds the summarizer settings for rules
func (e EnrichConfig) SummarizerConfig(rules *usecase.Rules) usecase.SummarizerConfig {
	return usecase.SummarizerConfig{
		Rules:              rules,
		Unclassified:       usecase.UnclassifiedPolicy(e.Unclassified),
		Comparison:         usecase.ValueComparison(e.ValueComparison),
		EnableDebugLogging: e.Debug,
	}
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/domain"
)

// DefaultCatalogName is the row key of the catalog in card_catalogs
const DefaultCatalogName = "samsung"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS card_catalogs (
	name        TEXT PRIMARY KEY,
	crawled_at  TEXT NOT NULL,
	total_cards INTEGER NOT NULL,
	data        JSONB NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS card_catalog_history (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	crawled_at  TEXT NOT NULL,
	total_cards INTEGER NOT NULL,
	saved_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// PostgresConfig holds connection pool settings
type PostgresConfig struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// DefaultPostgresConfig returns pool settings sized for a batch job plus a small API
func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	}
}

// PostgresStore keeps the catalog as a single JSONB row
type PostgresStore struct {
	pool   *pgxpool.Pool
	name   string
	logger *zap.Logger
}

// NewPostgresStore connects to databaseURL, pings it and creates the tables if needed
func NewPostgresStore(ctx context.Context, databaseURL, name string, cfg PostgresConfig, logger *zap.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := NewPostgresStoreWithPool(pool, name, logger)
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// NewPostgresStoreWithPool wraps an existing pool
func NewPostgresStoreWithPool(pool *pgxpool.Pool, name string, logger *zap.Logger) *PostgresStore {
	if name == "" {
		name = DefaultCatalogName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresStore{pool: pool, name: name, logger: logger}
}

// EnsureSchema creates the catalog tables when missing
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Load reads the catalog row
func (s *PostgresStore) Load(ctx context.Context) (*domain.CardCatalog, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM card_catalogs WHERE name = $1`, s.name).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var catalog domain.CardCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidCatalog, s.name, err)
	}
	return &catalog, nil
}

// Save validates the catalog and upserts it together with a history entry in one transaction
func (s *PostgresStore) Save(ctx context.Context, catalog *domain.CardCatalog) error {
	if err := catalog.Validate(); err != nil {
		return err
	}
	data, err := EncodeCatalog(catalog)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after commit

	_, err = tx.Exec(ctx, `
		INSERT INTO card_catalogs (name, crawled_at, total_cards, data, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (name) DO UPDATE
		SET crawled_at = EXCLUDED.crawled_at,
			total_cards = EXCLUDED.total_cards,
			data = EXCLUDED.data,
			updated_at = now()
	`, s.name, catalog.CrawledAt, catalog.TotalCards, string(data))
	if err != nil {
		return fmt.Errorf("failed to upsert catalog: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO card_catalog_history (name, crawled_at, total_cards)
		VALUES ($1, $2, $3)
	`, s.name, catalog.CrawledAt, catalog.TotalCards)
	if err != nil {
		return fmt.Errorf("failed to record catalog history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}

	s.logger.Info("Catalog saved",
		zap.String("name", s.name),
		zap.Int("cards", catalog.TotalCards))
	return nil
}

// Ping checks database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool
func (s *PostgresStore) Close() {
	s.pool.Close()
}

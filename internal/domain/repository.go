package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CardSource is the fetcher collaborator: it lists card ids and returns one raw card per id
type CardSource interface {
	ListCardIDs(ctx context.Context) ([]int, error)
	GetCard(ctx context.Context, cardID int) (*RawCard, error)
}

// CatalogStore persists the whole catalog document. Save replaces the previous document entirely.
type CatalogStore interface {
	Load(ctx context.Context) (*CardCatalog, error)
	Save(ctx context.Context, catalog *CardCatalog) error
}

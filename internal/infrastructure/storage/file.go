package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cardlens/backend/internal/domain"
)

// FileStore keeps the catalog as one pretty-printed JSON document on disk
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a store for the catalog file at path
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the catalog file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the catalog file
func (s *FileStore) Load(ctx context.Context) (*domain.CardCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog domain.CardCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidCatalog, s.path, err)
	}
	return &catalog, nil
}

// Save validates the catalog and replaces the file atomically. An invalid
// catalog leaves the existing file untouched.
func (s *FileStore) Save(ctx context.Context, catalog *domain.CardCatalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := catalog.Validate(); err != nil {
		return err
	}

	data, err := EncodeCatalog(catalog)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create catalog dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close catalog: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod catalog: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	s.logger.Info("Catalog saved",
		zap.String("path", s.path),
		zap.Int("cards", catalog.TotalCards),
		zap.Int("bytes", len(data)))
	return nil
}

// EncodeCatalog renders the catalog as two-space indented JSON with
// Korean text and HTML characters left unescaped.
func EncodeCatalog(catalog *domain.CardCatalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

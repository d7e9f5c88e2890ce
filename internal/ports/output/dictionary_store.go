package output

import (
	"context"

	"i18ntools/internal/domain/entities"
)

// DictionaryStore persists one dictionary per file.
type DictionaryStore interface {
	// Load returns the dictionary stored at path. A missing or blank file
	// yields an empty dictionary.
	Load(ctx context.Context, path string) (*entities.Dictionary, error)
	// Exists reports whether path holds a non-blank file.
	Exists(ctx context.Context, path string) (bool, error)
	Save(ctx context.Context, path string, dict *entities.Dictionary) error
	// SaveAll writes every dictionary of the batch, or none of them when a
	// file cannot be prepared.
	SaveAll(ctx context.Context, batch map[string]*entities.Dictionary) error
}

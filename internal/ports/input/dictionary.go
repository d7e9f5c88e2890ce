package input

import (
	"context"

	"i18ntools/internal/domain/entities"
)

type DictionaryUseCase interface {
	AddKey(ctx context.Context, keyPath entities.KeyPath, values map[string]string) error
	SortAll(ctx context.Context) (int, error)
}

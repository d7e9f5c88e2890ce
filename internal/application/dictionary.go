package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"i18ntools/internal/domain"
	"i18ntools/internal/domain/entities"
	"i18ntools/internal/ports/input"
	"i18ntools/internal/ports/output"
	"i18ntools/pkg/logger"
)

var _ input.DictionaryUseCase = (*DictionaryService)(nil)

type DictionaryService struct {
	store     output.DictionaryStore
	languages []entities.Language
}

func NewDictionaryService(store output.DictionaryStore, languages []entities.Language) *DictionaryService {
	return &DictionaryService{
		store:     store,
		languages: languages,
	}
}

// AddKey sets keyPath in every language dictionary to the value given for
// that language code, then writes all of them back sorted.
func (s *DictionaryService) AddKey(ctx context.Context, keyPath entities.KeyPath, values map[string]string) error {
	for _, lang := range s.languages {
		if _, ok := values[lang.Code]; !ok {
			return fmt.Errorf("no value for language %q: %w", lang.Code, domain.ErrMissingArgument)
		}
	}

	batch := make(map[string]*entities.Dictionary, len(s.languages))
	for _, lang := range s.languages {
		dict, err := s.store.Load(ctx, lang.Path)
		if err != nil {
			return err
		}
		if prev, ok := dict.Lookup(keyPath); ok {
			logger.Info("replacing existing entry",
				zap.String("lang", lang.Code),
				zap.String("key", string(keyPath)),
				zap.Stringer("was", prev.Kind()),
			)
		}
		dict.Set(keyPath, values[lang.Code])
		batch[lang.Path] = dict.Sorted()
		logger.Debug("key set",
			zap.String("lang", lang.Code),
			zap.String("key", string(keyPath)),
		)
	}

	return s.store.SaveAll(ctx, batch)
}

// SortAll rewrites every existing, non-blank dictionary with sorted keys and
// returns how many were rewritten. Missing files are not created.
func (s *DictionaryService) SortAll(ctx context.Context) (int, error) {
	processed := 0
	for _, lang := range s.languages {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		ok, err := s.store.Exists(ctx, lang.Path)
		if err != nil {
			return processed, err
		}
		if !ok {
			logger.Debug("dictionary skipped", zap.String("lang", lang.Code), zap.String("path", lang.Path))
			continue
		}
		dict, err := s.store.Load(ctx, lang.Path)
		if err != nil {
			return processed, err
		}
		if err := s.store.Save(ctx, lang.Path, dict.Sorted()); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

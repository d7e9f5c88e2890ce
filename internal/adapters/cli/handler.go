package cli

import (
	"io"

	"i18ntools/internal/application"
	"i18ntools/internal/config"
	"i18ntools/internal/ports/input"
	"i18ntools/internal/ports/output"
)

// UseCaseFactory builds the dictionary use case for one root directory.
type UseCaseFactory func(root string) input.DictionaryUseCase

// Handler runs the command-line entry points using use cases.
type Handler struct {
	cfg        *config.Config
	newUseCase UseCaseFactory
	translator output.T
	stdout     io.Writer
	stderr     io.Writer
}

// NewHandler creates a Handler whose use cases read and write through store.
func NewHandler(
	cfg *config.Config,
	store output.DictionaryStore,
	translator output.T,
	stdout, stderr io.Writer,
) *Handler {
	return NewHandlerWithFactory(cfg, func(root string) input.DictionaryUseCase {
		return application.NewDictionaryService(store, cfg.LanguagesAt(root))
	}, translator, stdout, stderr)
}

func NewHandlerWithFactory(
	cfg *config.Config,
	newUseCase UseCaseFactory,
	translator output.T,
	stdout, stderr io.Writer,
) *Handler {
	return &Handler{
		cfg:        cfg,
		newUseCase: newUseCase,
		translator: translator,
		stdout:     stdout,
		stderr:     stderr,
	}
}

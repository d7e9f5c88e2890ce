package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"i18ntools/internal/config"
	"i18ntools/internal/infrastructure/filestore"
	"i18ntools/internal/infrastructure/i18n"
	"i18ntools/pkg/logger"
)

// Command is one of the Handler entry points.
type Command func(h *Handler, ctx context.Context, program string, args []string) int

var (
	AddKeyCommand  Command = (*Handler).AddKey
	SortAllCommand Command = (*Handler).SortAll
)

// Main loads the configuration, wires ports and adapters, runs cmd and
// returns the process exit code.
func Main(cmd Command, program string, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		_ = logger.Init(config.DefaultLogLevel)
		logger.Warn("unknown I18N_LOG_LEVEL, using default",
			zap.String("level", cfg.LogLevel),
			zap.String("default", config.DefaultLogLevel),
			zap.Error(err),
		)
	}
	defer func() { _ = logger.Sync() }()

	h := NewHandler(cfg, filestore.NewStore(), i18n.NewTranslator(cfg.Locale), stdout, stderr)
	return cmd(h, context.Background(), program, args)
}

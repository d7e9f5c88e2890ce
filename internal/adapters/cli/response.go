package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"i18ntools/internal/domain"
	"i18ntools/pkg/logger"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// missingArgs reports whether fewer than n arguments were given or one of
// the first n is empty.
func missingArgs(args []string, n int) bool {
	if len(args) < n {
		return true
	}
	for _, a := range args[:n] {
		if a == "" {
			return true
		}
	}
	return false
}

func (h *Handler) usage(program string, placeholders []string) int {
	logger.Debug("missing argument", zap.String("program", program), zap.Error(domain.ErrMissingArgument))
	fmt.Fprintln(h.stderr, h.translator.T(h.cfg.Locale, "usage", map[string]any{
		"Program": program,
		"Args":    strings.Join(placeholders, " "),
	}))
	return exitFailure
}

func (h *Handler) fail(err error) int {
	logger.Debug("command failed", zap.String("code", domain.Code(err)), zap.Error(err))
	fmt.Fprintln(h.stderr, h.translator.T(h.cfg.Locale, "error", map[string]any{
		"Message": err.Error(),
	}))
	return exitFailure
}

func (h *Handler) say(key string, data map[string]any) {
	fmt.Fprintln(h.stdout, h.translator.T(h.cfg.Locale, key, data))
}

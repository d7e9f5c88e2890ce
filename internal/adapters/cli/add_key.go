package cli

import (
	"context"

	"i18ntools/internal/domain/entities"
)

// AddKeyArgs lists the placeholders of i18n-add: the root, the key path and
// one value per configured language.
func (h *Handler) AddKeyArgs() []string {
	out := []string{"<root_path>", "<key_path>"}
	for _, code := range h.cfg.Languages {
		out = append(out, "<"+code+"_value>")
	}
	return out
}

// AddKey implements i18n-add and returns the process exit code.
func (h *Handler) AddKey(ctx context.Context, program string, args []string) int {
	placeholders := h.AddKeyArgs()
	if missingArgs(args, len(placeholders)) {
		return h.usage(program, placeholders)
	}

	root, keyPath := args[0], args[1]
	values := make(map[string]string, len(h.cfg.Languages))
	for i, code := range h.cfg.Languages {
		values[code] = args[2+i]
	}

	uc := h.newUseCase(root)
	if err := uc.AddKey(ctx, entities.KeyPath(keyPath), values); err != nil {
		return h.fail(err)
	}

	h.say("key_added", map[string]any{"Key": keyPath})
	return exitOK
}

package cli

import (
	"context"
	"fmt"
)

// SortAll implements i18n-sort and returns the process exit code.
func (h *Handler) SortAll(ctx context.Context, program string, args []string) int {
	if missingArgs(args, 1) {
		return h.usage(program, []string{"<root_path>"})
	}

	uc := h.newUseCase(args[0])
	count, err := uc.SortAll(ctx)
	if err != nil {
		return h.fail(err)
	}

	if count == 0 {
		h.say("no_files_sorted", nil)
		return exitOK
	}
	fmt.Fprintln(h.stdout, h.translator.Plural(h.cfg.Locale, "files_sorted", count, nil))
	return exitOK
}

// Command i18n-sort rewrites every language dictionary with its keys sorted
// at every level.
//
//	i18n-sort <root_path>
package main

import (
	"os"

	"i18ntools/internal/adapters/cli"
)

func main() {
	os.Exit(cli.Main(cli.SortAllCommand, "i18n-sort", os.Args[1:], os.Stdout, os.Stderr))
}

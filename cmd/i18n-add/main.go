// Command i18n-add inserts a translation key into every language dictionary.
//
//	i18n-add <root_path> <key_path> <fr_value> <en_value>
package main

import (
	"os"

	"i18ntools/internal/adapters/cli"
)

func main() {
	os.Exit(cli.Main(cli.AddKeyCommand, "i18n-add", os.Args[1:], os.Stdout, os.Stderr))
}

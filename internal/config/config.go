package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"i18ntools/internal/domain"
	"i18ntools/internal/domain/entities"
)

const (
	DefaultLanguages = "fr,en"
	DefaultDir       = "i18n/lang"
	DefaultLocale    = "en"
	DefaultLogLevel  = "warn"
)

type Config struct {
	// Languages lists the managed dictionaries, in the order their values
	// are given to i18n-add.
	Languages []string
	// Dir is the dictionary directory, relative to the root argument.
	Dir string
	// Locale selects the language of the tools' own messages.
	Locale string
	// LogLevel is a zap level name. An unknown name falls back to
	// DefaultLogLevel when the logger is set up.
	LogLevel string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional; every setting has a default. Read leaves the process
	// environment untouched.
	dotenv, err := godotenv.Read()
	if err != nil {
		dotenv = map[string]string{}
	}
	env := func(key, fallback string) string {
		if v := getenv(key, ""); v != "" {
			return v
		}
		if v := strings.TrimSpace(dotenv[key]); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Languages: splitList(env("I18N_LANGUAGES", DefaultLanguages)),
		Dir:       env("I18N_DIR", DefaultDir),
		Locale:    env("I18N_CLI_LOCALE", DefaultLocale),
		LogLevel:  env("I18N_LOG_LEVEL", DefaultLogLevel),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Languages: splitList(DefaultLanguages),
		Dir:       DefaultDir,
		Locale:    DefaultLocale,
		LogLevel:  DefaultLogLevel,
	}
}

// LanguagesAt resolves the dictionary file of every configured language under root.
func (c *Config) LanguagesAt(root string) []entities.Language {
	return entities.LanguagesUnder(root, c.Dir, c.Languages)
}

func (c *Config) validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("config: I18N_LANGUAGES must list at least one language")
	}

	seen := make(map[string]bool, len(c.Languages))
	for _, code := range c.Languages {
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("config: I18N_LANGUAGES: %w %q: %w", domain.ErrUnsupportedLanguage, code, err)
		}
		// Codes become file names.
		if strings.ContainsAny(code, `/\`) {
			return fmt.Errorf("config: I18N_LANGUAGES: %w %q", domain.ErrUnsupportedLanguage, code)
		}
		if seen[code] {
			return fmt.Errorf("config: I18N_LANGUAGES: duplicate language %q", code)
		}
		seen[code] = true
	}

	if strings.TrimSpace(c.Dir) == "" || filepath.IsAbs(c.Dir) {
		return fmt.Errorf("config: I18N_DIR must be a relative directory (%q)", c.Dir)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: I18N_CLI_LOCALE invalid (%q): %w", c.Locale, err)
	}

	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

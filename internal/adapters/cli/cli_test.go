package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18ntools/internal/config"
	"i18ntools/internal/domain/entities"
	"i18ntools/internal/infrastructure/filestore"
	"i18ntools/internal/infrastructure/i18n"
	"i18ntools/internal/ports/input"
)

type harness struct {
	h      *Handler
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(cfg *config.Config) *harness {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &harness{
		h:      NewHandler(cfg, filestore.NewStore(), i18n.NewTranslator(cfg.Locale), out, errOut),
		stdout: out,
		stderr: errOut,
	}
}

func langFile(root, code string) string {
	return filepath.Join(root, "i18n", "lang", code+".json")
}

func writeLang(t *testing.T, root, code, content string) {
	t.Helper()
	path := langFile(root, code)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readLang(t *testing.T, root, code string) string {
	t.Helper()
	b, err := os.ReadFile(langFile(root, code))
	require.NoError(t, err)
	return string(b)
}

func TestAddKey_EmptyRoot(t *testing.T) {
	root := t.TempDir()
	hn := newHarness(config.Default())

	code := hn.h.AddKey(context.Background(), "i18n-add", []string{root, "nav.home", "Accueil", "Home"})

	require.Equal(t, 0, code, hn.stderr.String())
	assert.Equal(t, "Successfully added i18n key: nav.home\n", hn.stdout.String())
	assert.Empty(t, hn.stderr.String())
	assert.Equal(t, "{\n  \"nav\": {\n    \"home\": \"Home\"\n  }\n}\n", readLang(t, root, "en"))
	assert.Equal(t, "{\n  \"nav\": {\n    \"home\": \"Accueil\"\n  }\n}\n", readLang(t, root, "fr"))
}

func TestAddKey_MergesAndSorts(t *testing.T) {
	root := t.TempDir()
	writeLang(t, root, "en", `{"title":"App","nav":{"home":"Home"}}`)
	writeLang(t, root, "fr", "  \n")
	hn := newHarness(config.Default())

	code := hn.h.AddKey(context.Background(), "i18n-add", []string{root, "nav.about", "À propos", "About"})

	require.Equal(t, 0, code, hn.stderr.String())
	assert.Equal(t,
		"{\n  \"nav\": {\n    \"about\": \"About\",\n    \"home\": \"Home\"\n  },\n  \"title\": \"App\"\n}\n",
		readLang(t, root, "en"))
	assert.Equal(t, "{\n  \"nav\": {\n    \"about\": \"À propos\"\n  }\n}\n", readLang(t, root, "fr"))
}

func TestAddKey_MissingArgument(t *testing.T) {
	tests := []struct {
		name string
		args func(root string) []string
	}{
		{"no args", func(string) []string { return nil }},
		{"no en value", func(root string) []string { return []string{root, "nav.home", "Accueil"} }},
		{"empty fr value", func(root string) []string { return []string{root, "nav.home", "", "Home"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			hn := newHarness(config.Default())

			code := hn.h.AddKey(context.Background(), "i18n-add", tt.args(root))

			assert.NotEqual(t, 0, code)
			assert.Equal(t, "Usage: i18n-add <root_path> <key_path> <fr_value> <en_value>\n", hn.stderr.String())
			assert.Empty(t, hn.stdout.String())
			assert.NoDirExists(t, filepath.Join(root, "i18n"))
		})
	}
}

func TestAddKey_MalformedJSON(t *testing.T) {
	root := t.TempDir()
	writeLang(t, root, "en", `{"nav":`)
	hn := newHarness(config.Default())

	code := hn.h.AddKey(context.Background(), "i18n-add", []string{root, "nav.home", "Accueil", "Home"})

	assert.Equal(t, 1, code)
	assert.Contains(t, hn.stderr.String(), "Error: malformed JSON in "+langFile(root, "en"))
	assert.Empty(t, hn.stdout.String())
	assert.Equal(t, `{"nav":`, readLang(t, root, "en"))
	assert.NoFileExists(t, langFile(root, "fr"))
}

func TestAddKey_ConfiguredLanguages(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Languages = []string{"en", "de", "fr"}
	hn := newHarness(cfg)

	code := hn.h.AddKey(context.Background(), "i18n-add", []string{root, "ok", "OK", "Gut", "D'accord"})

	require.Equal(t, 0, code, hn.stderr.String())
	assert.Equal(t, "{\n  \"ok\": \"OK\"\n}\n", readLang(t, root, "en"))
	assert.Equal(t, "{\n  \"ok\": \"Gut\"\n}\n", readLang(t, root, "de"))
	assert.Equal(t, "{\n  \"ok\": \"D'accord\"\n}\n", readLang(t, root, "fr"))
	assert.Equal(t, []string{"<root_path>", "<key_path>", "<en_value>", "<de_value>", "<fr_value>"}, hn.h.AddKeyArgs())
}

func TestAddKey_FrenchMessages(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Locale = "fr"
	hn := newHarness(cfg)

	code := hn.h.AddKey(context.Background(), "i18n-add", []string{root, "a", "b", "c"})
	require.Equal(t, 0, code)
	assert.Equal(t, "Clé i18n ajoutée : a\n", hn.stdout.String())

	code = hn.h.AddKey(context.Background(), "i18n-add", []string{root})
	assert.Equal(t, 1, code)
	assert.Equal(t, "Utilisation : i18n-add <root_path> <key_path> <fr_value> <en_value>\n", hn.stderr.String())
}

func TestSortAll_OnlyEnglishPresent(t *testing.T) {
	root := t.TempDir()
	writeLang(t, root, "en", `{"b":1,"a":2}`)
	hn := newHarness(config.Default())

	code := hn.h.SortAll(context.Background(), "i18n-sort", []string{root})

	require.Equal(t, 0, code, hn.stderr.String())
	assert.Equal(t, "Successfully sorted 1 i18n file\n", hn.stdout.String())
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}\n", readLang(t, root, "en"))
	assert.NoFileExists(t, langFile(root, "fr"))
}

func TestSortAll_BothFiles(t *testing.T) {
	root := t.TempDir()
	writeLang(t, root, "en", `{"z":{"b":"B","a":"A"},"list":[{"y":1,"x":2}]}`)
	writeLang(t, root, "fr", `{"b":"b","a":"a"}`)
	hn := newHarness(config.Default())

	code := hn.h.SortAll(context.Background(), "i18n-sort", []string{root})

	require.Equal(t, 0, code, hn.stderr.String())
	assert.Equal(t, "Successfully sorted 2 i18n files\n", hn.stdout.String())
	assert.Equal(t,
		"{\n  \"list\": [\n    {\n      \"y\": 1,\n      \"x\": 2\n    }\n  ],\n  \"z\": {\n    \"a\": \"A\",\n    \"b\": \"B\"\n  }\n}\n",
		readLang(t, root, "en"))
	assert.Equal(t, "{\n  \"a\": \"a\",\n  \"b\": \"b\"\n}\n", readLang(t, root, "fr"))
}

func TestSortAll_NothingToSort(t *testing.T) {
	root := t.TempDir()
	writeLang(t, root, "fr", " \n")
	hn := newHarness(config.Default())

	code := hn.h.SortAll(context.Background(), "i18n-sort", []string{root})

	require.Equal(t, 0, code)
	assert.Equal(t, "No i18n files found to sort\n", hn.stdout.String())
	assert.Equal(t, " \n", readLang(t, root, "fr"))
	assert.NoFileExists(t, langFile(root, "en"))
}

func TestSortAll_MissingArgument(t *testing.T) {
	hn := newHarness(config.Default())

	code := hn.h.SortAll(context.Background(), "i18n-sort", nil)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Usage: i18n-sort <root_path>\n", hn.stderr.String())
}

func TestSortAll_MalformedJSON(t *testing.T) {
	root := t.TempDir()
	writeLang(t, root, "fr", `{"a":1,}`)
	hn := newHarness(config.Default())

	code := hn.h.SortAll(context.Background(), "i18n-sort", []string{root})

	assert.Equal(t, 1, code)
	assert.Contains(t, hn.stderr.String(), "Error: malformed JSON in "+langFile(root, "fr"))
}

type failingUseCase struct{ err error }

func (f failingUseCase) AddKey(context.Context, entities.KeyPath, map[string]string) error {
	return f.err
}

func (f failingUseCase) SortAll(context.Context) (int, error) { return 0, f.err }

func TestHandler_ReportsUseCaseErrors(t *testing.T) {
	cfg := config.Default()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	h := NewHandlerWithFactory(cfg, func(string) input.DictionaryUseCase {
		return failingUseCase{err: errors.New("disk full")}
	}, i18n.NewTranslator("en"), out, errOut)

	assert.Equal(t, 1, h.AddKey(context.Background(), "i18n-add", []string{"r", "k", "f", "e"}))
	assert.Equal(t, 1, h.SortAll(context.Background(), "i18n-sort", []string{"r"}))
	assert.Equal(t, "Error: disk full\nError: disk full\n", errOut.String())
	assert.Empty(t, out.String())
}

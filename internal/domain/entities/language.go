package entities

import "path/filepath"

// Language pairs a language code with the file that stores its dictionary.
type Language struct {
	Code string
	Path string
}

// LanguagesUnder resolves one file per code, <root>/<dir>/<code>.json.
func LanguagesUnder(root, dir string, codes []string) []Language {
	out := make([]Language, len(codes))
	for i, code := range codes {
		out[i] = Language{
			Code: code,
			Path: filepath.Join(root, dir, code+".json"),
		}
	}
	return out
}

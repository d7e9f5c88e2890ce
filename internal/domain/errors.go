package domain

import "errors"

// Domain errors.
var (
	ErrMissingArgument     = errors.New("missing argument")
	ErrMalformedJSON       = errors.New("malformed JSON")
	ErrFilesystem          = errors.New("filesystem error")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrMissingArgument, "missing_argument"},
	{ErrMalformedJSON, "malformed_json"},
	{ErrFilesystem, "filesystem"},
	{ErrUnsupportedLanguage, "unsupported_language"},
}

// Code returns the stable code of the first domain error wrapped by err, or ""
// when err does not wrap any of them.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

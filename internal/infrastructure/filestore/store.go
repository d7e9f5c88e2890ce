package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"i18ntools/internal/domain"
	"i18ntools/internal/domain/entities"
	"i18ntools/internal/ports/output"
	"i18ntools/pkg/logger"
)

var _ output.DictionaryStore = (*Store)(nil)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644
)

// Store implements output.DictionaryStore over JSON files on the local disk.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context, path string) (*entities.Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := readIfExists(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug("empty dictionary", zap.String("path", path))
		return entities.NewDictionary(), nil
	}
	dict, err := entities.ParseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", domain.ErrMalformedJSON, path, err)
	}
	logger.Debug("dictionary loaded", zap.String("path", path), zap.Int("keys", dict.Len()))
	return dict, nil
}

func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	data, err := readIfExists(path)
	if err != nil {
		return false, err
	}
	return len(bytes.TrimSpace(data)) > 0, nil
}

func (s *Store) Save(ctx context.Context, path string, dict *entities.Dictionary) error {
	return s.SaveAll(ctx, map[string]*entities.Dictionary{path: dict})
}

// SaveAll encodes and stages every file next to its target before renaming
// any of them into place.
func (s *Store) SaveAll(ctx context.Context, batch map[string]*entities.Dictionary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	paths := make([]string, 0, len(batch))
	for p := range batch {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	staged := make([]string, 0, len(paths))
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	targets := make([]string, 0, len(paths))
	for _, p := range paths {
		data, err := Encode(batch[p])
		if err != nil {
			cleanup()
			return fmt.Errorf("encode %s: %w", p, err)
		}
		target, err := resolveTarget(p)
		if err != nil {
			cleanup()
			return err
		}
		tmp, err := stage(target, data)
		if err != nil {
			cleanup()
			return err
		}
		staged = append(staged, tmp)
		targets = append(targets, target)
	}

	for i, p := range paths {
		if err := os.Rename(staged[i], targets[i]); err != nil {
			// Files renamed so far stay written.
			staged = staged[i:]
			cleanup()
			return fmt.Errorf("%w: write %s: %w", domain.ErrFilesystem, p, err)
		}
		logger.Debug("dictionary saved", zap.String("path", p), zap.String("target", targets[i]))
	}
	return nil
}

// Encode renders dict as two-space indented JSON followed by one newline.
// Keys are always written sorted.
func Encode(dict *entities.Dictionary) ([]byte, error) {
	if !dict.IsSorted() {
		dict = dict.Sorted()
	}
	raw, err := dict.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrFilesystem, path, err)
	}
	return data, nil
}

// resolveTarget follows a symlinked dictionary to the file it points to, so
// the rename replaces that file and keeps the link.
func resolveTarget(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return path, nil
	}
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		// Dangling link: write the file it names.
		dest, rerr := os.Readlink(path)
		if rerr == nil {
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(filepath.Dir(path), dest)
			}
			return resolveTarget(dest)
		}
		err = rerr
	}
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", domain.ErrFilesystem, path, err)
	}
	return target, nil
}

// stage writes data to a temporary file in the directory of path, creating
// the directory if needed, and returns the temporary file name.
func stage(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", fmt.Errorf("%w: create %s: %w", domain.ErrFilesystem, dir, err)
	}

	mode := fileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: write %s: %w", domain.ErrFilesystem, path, err)
	}
	tmp := f.Name()
	fail := func(err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("%w: write %s: %w", domain.ErrFilesystem, path, err)
	}

	if _, err := f.Write(data); err != nil {
		return fail(err)
	}
	if err := f.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("%w: write %s: %w", domain.ErrFilesystem, path, err)
	}
	return tmp, nil
}

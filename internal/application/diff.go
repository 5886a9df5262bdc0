package application

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"dategen/internal/domain/entities"
)

// Diff compares captured output with the files currently under the layout's
// root, read through existing. It returns the sorted root-relative paths that
// are missing, differ, or are generated modules no longer produced.
func Diff(layout entities.Layout, generated map[string][]byte, existing fs.FS) ([]string, error) {
	var stale []string
	seen := make(map[string]struct{}, len(generated))

	for target, payload := range generated {
		rel, err := filepath.Rel(layout.Root, target)
		if err != nil {
			return nil, fmt.Errorf("relative path for %q: %w", target, err)
		}
		rel = filepath.ToSlash(rel)
		seen[rel] = struct{}{}

		current, err := fs.ReadFile(existing, rel)
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, rel)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", rel, err)
		}
		if !bytes.Equal(current, payload) {
			stale = append(stale, rel)
		}
	}

	for _, dir := range []string{layout.DateOutputDir, layout.NumeralOutputDir} {
		entries, err := fs.ReadDir(existing, dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("listing %q: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), moduleExt) {
				continue
			}
			rel := path.Join(dir, e.Name())
			if _, ok := seen[rel]; !ok {
				stale = append(stale, rel)
			}
		}
	}

	sort.Strings(stale)
	return stale, nil
}

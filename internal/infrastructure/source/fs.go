package source

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"dategen/internal/domain"
	"dategen/internal/domain/entities"
	"dategen/internal/ports/output"
)

// decoders maps a source file extension to its decoder.
var decoders = map[string]func([]byte) (*entities.Record, error){
	".json": DecodeJSON,
	".yaml": DecodeYAML,
	".yml":  DecodeYAML,
}

// Ensure FS implements the output.RecordSource port.
var _ output.RecordSource = (*FS)(nil)

// FS reads translation records from an fs.FS, usually os.DirFS of the
// repository root.
type FS struct {
	fsys fs.FS
}

func New(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// List returns the sorted identifiers of the regular files in dir named
// <identifier><ext>. Other entries are ignored.
func (s *FS) List(ctx context.Context, dir, ext string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", dir, err)
	}

	var ids []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ext) || len(name) == len(ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ext))
	}
	sort.Strings(ids)
	return ids, nil
}

// Load reads one record, decoding it by file extension. Decoding failures
// wrap domain.ErrMalformedSource.
func (s *FS) Load(ctx context.Context, name string) (*entities.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	decode, ok := decoders[strings.ToLower(path.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q: unsupported extension", domain.ErrMalformedSource, name)
	}
	rec, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", domain.ErrMalformedSource, name, err)
	}
	return rec, nil
}

package sink

import (
	"context"

	"dategen/internal/ports/output"
)

var _ output.Sink = (*Memory)(nil)

// Memory captures generated files instead of writing them. It never touches
// the filesystem.
type Memory struct {
	files map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// Prepare is a no-op.
func (m *Memory) Prepare(ctx context.Context, _ string, _ bool) error {
	return ctx.Err()
}

func (m *Memory) Write(ctx context.Context, path string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.files[path] = append([]byte(nil), payload...)
	return nil
}

// Finalize returns every captured file keyed by its intended path and empties
// the sink for the next run.
func (m *Memory) Finalize(ctx context.Context) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := m.files
	m.files = make(map[string][]byte)
	return out, nil
}

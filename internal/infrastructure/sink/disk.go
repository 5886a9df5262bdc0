package sink

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dategen/internal/ports/output"
)

var _ output.Sink = (*Disk)(nil)

// Disk writes generated files to the local filesystem.
type Disk struct {
	logger *slog.Logger
}

func NewDisk(logger *slog.Logger) *Disk {
	return &Disk{logger: logger}
}

func (d *Disk) Prepare(ctx context.Context, dir string, fresh bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fresh {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %q: %w", dir, err)
		}
		d.logger.Debug("cleared output directory", "dir", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}
	return nil
}

func (d *Disk) Write(ctx context.Context, path string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// Finalize returns an empty map: files are already on disk.
func (d *Disk) Finalize(ctx context.Context) (map[string][]byte, error) {
	return map[string][]byte{}, ctx.Err()
}

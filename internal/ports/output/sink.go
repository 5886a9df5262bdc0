package output

import "context"

// Sink receives generated files.
type Sink interface {
	// Prepare makes dir available for writing. With fresh set, any existing
	// dir is removed first so no stale file survives.
	Prepare(ctx context.Context, dir string, fresh bool) error
	Write(ctx context.Context, path string, payload []byte) error
	// Finalize ends the run and returns the captured files, if the sink
	// captures any.
	Finalize(ctx context.Context) (map[string][]byte, error)
}

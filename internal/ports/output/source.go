package output

import (
	"context"

	"dategen/internal/domain/entities"
)

// RecordSource reads translation records from a dataset.
type RecordSource interface {
	// List returns the identifiers of the files in dir carrying ext.
	List(ctx context.Context, dir, ext string) ([]string, error)
	Load(ctx context.Context, name string) (*entities.Record, error)
}

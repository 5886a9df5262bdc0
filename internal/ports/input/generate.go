package input

import (
	"context"

	"dategen/internal/domain/entities"
)

type GenerateUseCase interface {
	Generate(ctx context.Context) (*entities.Summary, map[string][]byte, error)
}

package ports

import (
	"context"

	"breast-cancer-predictor/internal/core/domain"
)

// ModelLoader deserializes a model bundle from a local path.
type ModelLoader interface {
	Load(ctx context.Context, path string, expectColumns bool) (*domain.ModelBundle, error)
}

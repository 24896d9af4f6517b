package config

import (
	"context"

	"github.com/vk/wrapperflow/internal/model"
)

// Loader reads a workflow document and returns its model.
type Loader interface {
	// Load reads the document at path. All failures are *parseerr.Error
	// values, possibly wrapped.
	Load(ctx context.Context, path string) (*model.Workflow, error)
}

package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/wrapperflow/internal/config"
	"github.com/vk/wrapperflow/internal/ctxlog"
	"github.com/vk/wrapperflow/internal/extract"
	"github.com/vk/wrapperflow/internal/model"
	"github.com/vk/wrapperflow/internal/parseerr"
	"github.com/vk/wrapperflow/internal/tagtree"
)

// Loader is the file-based implementation of config.Loader.
type Loader struct {
	format Format
}

var _ config.Loader = (*Loader)(nil)

// New creates a Loader for the given format. FormatAuto detects the format
// of every document from its name.
func New(format Format) *Loader {
	return &Loader{format: format}
}

// Load reads and parses the document at path.
func (l *Loader) Load(ctx context.Context, path string) (*model.Workflow, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Workflow loader started.", "path", path, "format", l.format.String())

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &parseerr.Error{
			Kind:   parseerr.SourceUnavailable,
			Detail: "cannot read " + path,
			Err:    err,
		}
	}
	return l.Parse(ctx, path, data)
}

// Parse parses an in-memory document. name identifies the document in
// diagnostics and, with FormatAuto, selects the format.
func (l *Loader) Parse(ctx context.Context, name string, data []byte) (*model.Workflow, error) {
	logger := ctxlog.FromContext(ctx)

	if len(data) == 0 {
		return nil, &parseerr.Error{Kind: parseerr.SourceUnavailable, Detail: name + ": document is empty"}
	}

	format := l.format
	if format == FormatAuto {
		detected, err := FormatFromPath(name)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	logger.Debug("Parsing workflow document.", "name", name, "format", format.String(), "bytes", len(data))

	src, err := newSource(format, name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	root, err := tagtree.Build(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	wf, err := extract.Workflow(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow from %s: %w", name, err)
	}

	logger.Debug("Workflow loading complete.", "name", name, "modules", len(wf.Modules))
	return wf, nil
}

package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/wrapperflow/internal/fsutil"
	"github.com/vk/wrapperflow/internal/model"
	"github.com/vk/wrapperflow/internal/topology"
)

// Result is the outcome of loading one document.
type Result struct {
	Path     string
	Workflow *model.Workflow
	// Unreachable lists modules no starting module sends data to.
	Unreachable []model.WorkflowID
	// Loop is one data-flow loop, if any.
	Loop []model.WorkflowID
}

// Run loads the configured workflow, checks its topology and writes the
// summary. When WorkflowPath is a directory every workflow document below it
// readable as the configured format is processed in lexical order, stopping
// at the first failure.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	paths, err := a.documents()
	if err != nil {
		return err
	}
	for _, path := range paths {
		res, err := a.LoadPath(ctx, path)
		if err != nil {
			return err
		}
		if err := a.writeReport(res); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.", "documents", len(paths))
	return nil
}

// Load loads the configured workflow document and runs the topology checks
// without writing anything.
func (a *App) Load(ctx context.Context) (*Result, error) {
	return a.LoadPath(ctx, a.config.WorkflowPath)
}

// LoadPath loads the document at path and runs the topology checks.
func (a *App) LoadPath(ctx context.Context, path string) (*Result, error) {
	ctx = a.Context(ctx)
	a.logger.Debug("Loading workflow.", "path", path, "format", a.config.Format)

	wf, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}
	a.logger.Info("Workflow loaded.", "path", path, "modules", len(wf.Modules))

	graph, err := topology.Build(ctx, wf)
	if err != nil {
		return nil, fmt.Errorf("failed to build workflow topology: %w", err)
	}

	res := &Result{Path: path, Workflow: wf}
	starting := wf.Starting()
	if len(starting) == 0 {
		a.logger.Warn("No module is marked as starting.", "path", path)
	} else {
		res.Unreachable = graph.Unreachable(starting...)
		for _, id := range res.Unreachable {
			a.logger.Warn("Module is unreachable from any starting module.", "module", wf.NameOf(id), "id", id)
		}
	}
	if len(wf.Finishing()) == 0 {
		a.logger.Warn("No module is marked as finishing.", "path", path)
	}
	if res.Loop = graph.FindLoop(); res.Loop != nil {
		a.logger.Info("Workflow contains a data-flow loop.", "modules", names(wf, res.Loop))
	}
	return res, nil
}

// documents resolves WorkflowPath to the documents to process.
func (a *App) documents() ([]string, error) {
	path := a.config.WorkflowPath
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		// The loader reports unreadable files.
		return []string{path}, nil
	}

	paths, err := fsutil.FindFilesByExtension(path, a.config.DocumentFormat().Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no workflow documents found in %s", path)
	}
	a.logger.Debug("Discovered workflow documents.", "dir", path, "count", len(paths))
	return paths, nil
}

func names(wf *model.Workflow, ids []model.WorkflowID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = wf.NameOf(id)
	}
	return out
}

package topology

import (
	"context"
	"fmt"

	"github.com/vk/wrapperflow/internal/ctxlog"
	"github.com/vk/wrapperflow/internal/model"
)

// Build creates the data-flow graph of wf. Every reference in wf must name
// one of its modules.
func Build(ctx context.Context, wf *model.Workflow) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building workflow topology.", "modules", len(wf.Modules))

	g := New()
	for i := range wf.Modules {
		g.AddNode(wf.Modules[i].ID.WorkflowID)
	}

	edges := 0
	for i := range wf.Modules {
		m := &wf.Modules[i]
		for _, to := range m.Receivers() {
			if err := g.AddEdge(m.ID.WorkflowID, to); err != nil {
				return nil, fmt.Errorf("module %q: %w", m.Name, err)
			}
			edges++
		}
		for _, from := range m.Sources() {
			if err := g.AddEdge(from, m.ID.WorkflowID); err != nil {
				return nil, fmt.Errorf("module %q: %w", m.Name, err)
			}
			edges++
		}
	}

	logger.Debug("Workflow topology built.", "nodes", g.Len(), "edges", edges)
	return g, nil
}

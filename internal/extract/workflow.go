package extract

import (
	"context"

	"github.com/vk/wrapperflow/internal/ctxlog"
	"github.com/vk/wrapperflow/internal/grammar"
	"github.com/vk/wrapperflow/internal/model"
	"github.com/vk/wrapperflow/internal/parseerr"
	"github.com/vk/wrapperflow/internal/tagtree"
)

// Workflow converts a validated tree into the ordered module list.
//
// The first pass assigns each module its 1-based declaration position as
// workflow id and records its name. The second pass converts every module,
// resolving distributor, collector and receiver names through the first
// pass, so a module may reference one declared after it.
func Workflow(ctx context.Context, root *tagtree.Node) (*model.Workflow, error) {
	logger := ctxlog.FromContext(ctx)

	if root == nil || root.Type != grammar.Workflow {
		return nil, &parseerr.Error{
			Kind:   parseerr.UnsupportedConversion,
			Tag:    rootName(root),
			Detail: "cannot convert to workflow",
		}
	}
	modulesNode, err := required(root, grammar.Modules)
	if err != nil {
		return nil, err
	}
	declared, err := Count(modulesNode)
	if err != nil {
		return nil, err
	}
	if declared == 0 {
		return nil, &parseerr.Error{
			Kind:   parseerr.EmptyWorkflow,
			Tag:    modulesNode.Type.String(),
			Detail: "modules count is zero",
			Line:   modulesNode.Pos.Line,
			Column: modulesNode.Pos.Column,
		}
	}
	moduleNodes := modulesNode.ChildrenOf(grammar.Module)
	if err := checkCount(modulesNode, declared, len(moduleNodes)); err != nil {
		return nil, err
	}
	logger.Debug("Workflow extraction started.", "modules", declared)

	names := make(Names, len(moduleNodes))
	for i, n := range moduleNodes {
		name, err := ModuleName(n)
		if err != nil {
			return nil, err
		}
		if _, dup := names[name]; dup {
			return nil, &parseerr.Error{
				Kind:   parseerr.DuplicateModuleName,
				Tag:    n.Type.String(),
				Field:  grammar.Name.String(),
				Value:  name,
				Line:   n.Pos.Line,
				Column: n.Pos.Column,
			}
		}
		names[name] = model.WorkflowID(i + 1)
	}

	wf := &model.Workflow{Modules: make([]model.ModuleInfo, 0, len(moduleNodes))}
	for i, n := range moduleNodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := Module(n, names)
		if err != nil {
			return nil, err
		}
		info.ID = model.ModuleID{WorkflowID: model.WorkflowID(i + 1)}
		logger.Debug("Module extracted.", "name", info.Name, "id", info.ID.WorkflowID)
		wf.Modules = append(wf.Modules, info)
	}

	logger.Debug("Workflow extraction complete.", "modules", len(wf.Modules))
	return wf, nil
}

func rootName(n *tagtree.Node) string {
	if n == nil {
		return ""
	}
	return n.Type.String()
}

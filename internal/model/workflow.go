// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Workflow is the ordered set of modules of one document. Modules[i] has
// WorkflowID i+1.
type Workflow struct {
	Modules []ModuleInfo `json:"modules"`
}

// Module returns the module with the given workflow id.
func (w *Workflow) Module(id WorkflowID) (*ModuleInfo, bool) {
	if !id.IsDefined() || int(id) > len(w.Modules) {
		return nil, false
	}
	return &w.Modules[id-1], true
}

// ByName returns the module declared with the given name.
func (w *Workflow) ByName(name string) (*ModuleInfo, bool) {
	for i := range w.Modules {
		if w.Modules[i].Name == name {
			return &w.Modules[i], true
		}
	}
	return nil, false
}

// Starting returns the ids of modules flagged as starting points.
func (w *Workflow) Starting() []WorkflowID {
	return w.filter(func(m *ModuleInfo) bool { return m.IsStarting })
}

// Finishing returns the ids of modules flagged as finishing points.
func (w *Workflow) Finishing() []WorkflowID {
	return w.filter(func(m *ModuleInfo) bool { return m.IsFinishing })
}

// NameOf returns the name of the module with the given id, or "" if none.
func (w *Workflow) NameOf(id WorkflowID) string {
	if m, ok := w.Module(id); ok {
		return m.Name
	}
	return ""
}

func (w *Workflow) filter(keep func(*ModuleInfo) bool) []WorkflowID {
	var ids []WorkflowID
	for i := range w.Modules {
		if keep(&w.Modules[i]) {
			ids = append(ids, w.Modules[i].ID.WorkflowID)
		}
	}
	return ids
}

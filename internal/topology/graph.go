package topology

import (
	"fmt"
	"slices"

	"github.com/vk/wrapperflow/internal/model"
)

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[model.WorkflowID]*node),
	}
}

// AddNode adds a node. Adding an existing id does nothing.
func (g *Graph) AddNode(id model.WorkflowID) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{
		id:        id,
		producers: make(map[model.WorkflowID]*node),
		consumers: make(map[model.WorkflowID]*node),
	}
}

// AddEdge records that data flows from fromID to toID. A module sending to
// itself is a valid one-node loop.
func (g *Graph) AddEdge(fromID, toID model.WorkflowID) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %d", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %d", toID)
	}

	toNode.producers[fromID] = fromNode
	fromNode.consumers[toID] = toNode
	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// Producers returns the ids sending data to id, in ascending order.
func (g *Graph) Producers(id model.WorkflowID) ([]model.WorkflowID, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %d", id)
	}
	return sortedIDs(n.producers), nil
}

// Consumers returns the ids receiving data from id, in ascending order.
func (g *Graph) Consumers(id model.WorkflowID) ([]model.WorkflowID, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %d", id)
	}
	return sortedIDs(n.consumers), nil
}

// Reachable returns every id reachable from the given ids, including the
// start ids themselves, in ascending order. Unknown start ids are ignored.
func (g *Graph) Reachable(from ...model.WorkflowID) []model.WorkflowID {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	seen := make(map[model.WorkflowID]*node)
	var stack []*node
	for _, id := range from {
		if n, ok := g.nodes[id]; ok && seen[id] == nil {
			seen[id] = n
			stack = append(stack, n)
		}
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for id, next := range n.consumers {
			if seen[id] == nil {
				seen[id] = next
				stack = append(stack, next)
			}
		}
	}
	return sortedIDs(seen)
}

// Unreachable returns the ids not reachable from the given ids.
func (g *Graph) Unreachable(from ...model.WorkflowID) []model.WorkflowID {
	reached := g.Reachable(from...)

	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var out []model.WorkflowID
	for _, id := range sortedIDs(g.nodes) {
		if _, found := slices.BinarySearch(reached, id); !found {
			out = append(out, id)
		}
	}
	return out
}

// FindLoop returns the ids of one data-flow loop, in flow order, or nil if
// the graph has none.
func (g *Graph) FindLoop() []model.WorkflowID {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// permanent: fully explored; onStack: on the current DFS path.
	permanent := make(map[model.WorkflowID]bool)
	onStack := make(map[model.WorkflowID]bool)
	var path []model.WorkflowID

	var visit func(n *node) []model.WorkflowID
	visit = func(n *node) []model.WorkflowID {
		if permanent[n.id] {
			return nil
		}
		if onStack[n.id] {
			start := slices.Index(path, n.id)
			return slices.Clone(path[start:])
		}
		onStack[n.id] = true
		path = append(path, n.id)

		for _, id := range sortedIDs(n.consumers) {
			if loop := visit(n.consumers[id]); loop != nil {
				return loop
			}
		}

		path = path[:len(path)-1]
		delete(onStack, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, id := range sortedIDs(g.nodes) {
		if loop := visit(g.nodes[id]); loop != nil {
			return loop
		}
	}
	return nil
}

// HasLoop reports whether data can flow from some module back to itself.
func (g *Graph) HasLoop() bool {
	return g.FindLoop() != nil
}

func sortedIDs(nodes map[model.WorkflowID]*node) []model.WorkflowID {
	ids := make([]model.WorkflowID, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

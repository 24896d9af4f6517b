package topology

import (
	"sync"

	"github.com/vk/wrapperflow/internal/model"
)

// Graph is the data-flow graph of one workflow. All operations are safe for
// concurrent use.
type Graph struct {
	mutex sync.RWMutex
	nodes map[model.WorkflowID]*node
}

type node struct {
	id model.WorkflowID
	// producers send data to this node.
	producers map[model.WorkflowID]*node
	// consumers receive data from this node.
	consumers map[model.WorkflowID]*node
}

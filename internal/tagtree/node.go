package tagtree

import (
	"fmt"

	"github.com/vk/wrapperflow/internal/grammar"
)

// Pos is a location in the source document. Line and Column are 1-based; a
// zero Line means the position is unknown.
type Pos struct {
	Line   int
	Column int
}

// String renders the position as "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Attribute is a single name/value pair of a tag.
type Attribute struct {
	Name  string
	Value string
}

// Node is one tag of a validated workflow document. A node owns its children;
// dropping the root drops the whole tree.
type Node struct {
	Type       grammar.TagType
	Attributes []Attribute
	Text       string
	Children   []*Node
	Pos        Pos

	parent *Node
}

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Attr returns the value of the named attribute. When the name was written
// more than once the last value wins.
func (n *Node) Attr(name string) (string, bool) {
	for i := len(n.Attributes) - 1; i >= 0; i-- {
		if n.Attributes[i].Name == name {
			return n.Attributes[i].Value, true
		}
	}
	return "", false
}

// Child returns the first direct child of the given type.
func (n *Node) Child(t grammar.TagType) (*Node, bool) {
	for _, c := range n.Children {
		if c.Type == t {
			return c, true
		}
	}
	return nil, false
}

// ChildrenOf returns all direct children of the given type in document order.
func (n *Node) ChildrenOf(t grammar.TagType) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func (n *Node) appendChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

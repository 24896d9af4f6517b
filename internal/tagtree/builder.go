package tagtree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/vk/wrapperflow/internal/ctxlog"
	"github.com/vk/wrapperflow/internal/grammar"
	"github.com/vk/wrapperflow/internal/parseerr"
)

// Builder grows a tag tree from parse events, validating every start tag
// against the grammar before it touches the tree. A Builder serves exactly one
// document and is not safe for concurrent use.
type Builder struct {
	root    *Node
	current *Node
	nodes   int
}

// NewBuilder returns a Builder with no root.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartTag validates a new tag against the current node and, when legal,
// appends it as the current node's last child and descends into it.
func (b *Builder) StartTag(name string, attrs []Attribute, pos Pos) error {
	entry, ok := grammar.Lookup(name)
	if !ok {
		return b.fail(parseerr.UnknownTag, name, pos, "")
	}

	if b.current == nil {
		if b.root != nil {
			return b.fail(parseerr.MalformedDocument, name, pos, "a second top-level element follows the closed root")
		}
		if !entry.IsRoot() {
			return b.fail(parseerr.IllegalParent, name, pos, "the document root must be a tag that allows no parent")
		}
	} else {
		parentEntry, _ := grammar.EntryFor(b.current.Type)
		if !parentEntry.AllowsChild(entry.Type()) {
			return b.fail(parseerr.IllegalChild, name, pos, "")
		}
		if !entry.AllowsParent(b.current.Type) {
			return b.fail(parseerr.IllegalParent, name, pos, "")
		}
	}

	node := &Node{
		Type:       entry.Type(),
		Attributes: slices.Clone(attrs),
		Pos:        pos,
	}
	if b.current == nil {
		b.root = node
	} else {
		b.current.appendChild(node)
	}
	b.current = node
	b.nodes++
	return nil
}

// CharData appends text to the current value tag. Chunks of one text run are
// concatenated. Whitespace between structural tags is ignored.
func (b *Builder) CharData(text string, pos Pos) error {
	if b.current == nil {
		if isBlank(text) {
			return nil
		}
		return &parseerr.Error{
			Kind:   parseerr.MalformedDocument,
			Detail: "character data outside the root element",
			Line:   pos.Line,
			Column: pos.Column,
		}
	}

	entry, _ := grammar.EntryFor(b.current.Type)
	if entry.IsValue() {
		b.current.Text += text
		return nil
	}
	if isBlank(text) {
		return nil
	}
	return &parseerr.Error{
		Kind:   parseerr.UnexpectedText,
		Tag:    b.current.Type.String(),
		Value:  strings.TrimSpace(text),
		Detail: "structural tags hold only child tags",
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// EndTag closes the current tag and ascends to its parent. With no open tag
// it does nothing.
func (b *Builder) EndTag(Pos) error {
	if b.current == nil {
		return nil
	}
	b.current = b.current.parent
	return nil
}

// Root returns the finished tree. It fails unless a root element was opened
// and closed.
func (b *Builder) Root() (*Node, error) {
	if b.root == nil {
		return nil, &parseerr.Error{Kind: parseerr.MalformedDocument, Detail: "document has no root element"}
	}
	if b.current != nil {
		return nil, &parseerr.Error{
			Kind:   parseerr.MalformedDocument,
			Tag:    b.current.Type.String(),
			Detail: "element is not closed",
			Line:   b.current.Pos.Line,
			Column: b.current.Pos.Column,
		}
	}
	return b.root, nil
}

func (b *Builder) fail(kind parseerr.Kind, tag string, pos Pos, detail string) error {
	err := &parseerr.Error{
		Kind:   kind,
		Tag:    tag,
		Detail: detail,
		Line:   pos.Line,
		Column: pos.Column,
	}
	if b.current != nil {
		err.Parent = b.current.Type.String()
	}
	return err
}

// Build drains src into a new Builder and returns the validated root. On any
// failure no part of the tree is returned.
func Build(ctx context.Context, src Source) (*Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Tag tree build started.")

	b := NewBuilder()
	events := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		events++

		switch ev.Kind {
		case EventStartTag:
			err = b.StartTag(ev.Name, ev.Attrs, ev.Pos)
		case EventCharData:
			err = b.CharData(ev.Text, ev.Pos)
		case EventEndTag:
			err = b.EndTag(ev.Pos)
		default:
			err = fmt.Errorf("unknown event kind %d", ev.Kind)
		}
		if err != nil {
			logger.Debug("Tag tree build failed.", "event", ev.Kind.String(), "position", ev.Pos.String(), "error", err)
			return nil, err
		}
	}

	root, err := b.Root()
	if err != nil {
		return nil, err
	}
	logger.Debug("Tag tree build complete.", "events", events, "nodes", b.nodes)
	return root, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

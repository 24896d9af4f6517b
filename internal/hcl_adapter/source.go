package hcl_adapter

import (
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/wrapperflow/internal/grammar"
	"github.com/vk/wrapperflow/internal/parseerr"
	"github.com/vk/wrapperflow/internal/tagtree"
)

// Source replays the events of a parsed HCL document.
type Source struct {
	events []tagtree.Event
	next   int
}

var _ tagtree.Source = (*Source)(nil)

// NewSource parses src and flattens it into events. filename is only used in
// diagnostics.
func NewSource(filename string, src []byte) (*Source, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagnosticsError(diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, &parseerr.Error{Kind: parseerr.MalformedDocument, Detail: fmt.Sprintf("unexpected body type %T", file.Body)}
	}

	s := &Source{}
	if len(body.Attributes) > 0 {
		attr := firstAttribute(body.Attributes)
		return nil, malformedAt(attr.SrcRange.Start, "attribute %q outside of any block", attr.Name)
	}
	for _, block := range sortedBlocks(body.Blocks) {
		if err := s.emitBlock(block); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Next returns the next event or io.EOF.
func (s *Source) Next() (tagtree.Event, error) {
	if s.next >= len(s.events) {
		return tagtree.Event{}, io.EOF
	}
	ev := s.events[s.next]
	s.next++
	return ev, nil
}

// item is a block or a tag-valued attribute, ordered by source offset.
type item struct {
	offset int
	block  *hclsyntax.Block
	attr   *hclsyntax.Attribute
}

func (s *Source) emitBlock(block *hclsyntax.Block) error {
	start := block.TypeRange.Start
	if len(block.Labels) > 0 {
		return malformedAt(start, "block %q must not have labels", block.Type)
	}

	var attrs []tagtree.Attribute
	var items []item
	for _, attr := range sortedAttributes(block.Body.Attributes) {
		if grammar.IsTagName(attr.Name) {
			items = append(items, item{offset: attr.SrcRange.Start.Byte, attr: attr})
			continue
		}
		text, err := attributeText(attr)
		if err != nil {
			return err
		}
		attrs = append(attrs, tagtree.Attribute{Name: attr.Name, Value: text})
	}
	for _, b := range block.Body.Blocks {
		items = append(items, item{offset: b.TypeRange.Start.Byte, block: b})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].offset < items[j].offset })

	s.push(tagtree.Event{Kind: tagtree.EventStartTag, Name: block.Type, Attrs: attrs, Pos: position(start)})
	for _, it := range items {
		var err error
		if it.block != nil {
			err = s.emitBlock(it.block)
		} else {
			err = s.emitValueTags(it.attr)
		}
		if err != nil {
			return err
		}
	}
	s.push(tagtree.Event{Kind: tagtree.EventEndTag, Name: block.Type, Pos: position(block.Body.SrcRange.End)})
	return nil
}

// emitValueTags renders a tag-valued attribute as one child tag per value.
func (s *Source) emitValueTags(attr *hclsyntax.Attribute) error {
	texts, err := attributeTexts(attr)
	if err != nil {
		return err
	}
	pos := position(attr.SrcRange.Start)
	for _, text := range texts {
		s.push(tagtree.Event{Kind: tagtree.EventStartTag, Name: attr.Name, Pos: pos})
		if text != "" {
			s.push(tagtree.Event{Kind: tagtree.EventCharData, Text: text, Pos: position(attr.Expr.StartRange().Start)})
		}
		s.push(tagtree.Event{Kind: tagtree.EventEndTag, Name: attr.Name, Pos: position(attr.SrcRange.End)})
	}
	return nil
}

func (s *Source) push(ev tagtree.Event) {
	s.events = append(s.events, ev)
}

func sortedAttributes(attrs hclsyntax.Attributes) []*hclsyntax.Attribute {
	out := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SrcRange.Start.Byte < out[j].SrcRange.Start.Byte })
	return out
}

func sortedBlocks(blocks hclsyntax.Blocks) []*hclsyntax.Block {
	out := append([]*hclsyntax.Block(nil), blocks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TypeRange.Start.Byte < out[j].TypeRange.Start.Byte })
	return out
}

func firstAttribute(attrs hclsyntax.Attributes) *hclsyntax.Attribute {
	return sortedAttributes(attrs)[0]
}

func position(p hcl.Pos) tagtree.Pos {
	return tagtree.Pos{Line: p.Line, Column: p.Column}
}

func malformedAt(p hcl.Pos, format string, args ...any) error {
	return &parseerr.Error{
		Kind:   parseerr.MalformedDocument,
		Detail: fmt.Sprintf(format, args...),
		Line:   p.Line,
		Column: p.Column,
	}
}

func diagnosticsError(diags hcl.Diagnostics) error {
	err := &parseerr.Error{Kind: parseerr.MalformedDocument, Err: diags}
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			err.Line = d.Subject.Start.Line
			err.Column = d.Subject.Start.Column
			break
		}
	}
	return err
}

package xml_adapter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/vk/wrapperflow/internal/parseerr"
	"github.com/vk/wrapperflow/internal/tagtree"
)

const byteOrderMark = "\ufeff"

// Source reads tag tree events from an XML document.
type Source struct {
	dec *xml.Decoder
	// open holds the names of the elements not yet closed.
	open []string
	// allowBOM is set until the first token has been read.
	allowBOM bool
}

var _ tagtree.Source = (*Source)(nil)

// NewSource creates a Source reading from r. Documents declaring an encoding
// other than UTF-8 are decoded through its IANA label.
func NewSource(r io.Reader) *Source {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	return &Source{dec: dec, allowBOM: true}
}

// Next returns the next start tag, character data or end tag event, or
// io.EOF once the document is exhausted.
//
// Names are taken as written: namespace declarations are ordinary attributes
// and a prefixed name keeps its prefix.
func (s *Source) Next() (tagtree.Event, error) {
	for {
		line, column := s.dec.InputPos()
		pos := tagtree.Pos{Line: line, Column: column}

		tok, err := s.dec.RawToken()
		if errors.Is(err, io.EOF) {
			if len(s.open) > 0 {
				return tagtree.Event{}, malformedAt(pos, "unexpected EOF: element <%s> is not closed", s.open[len(s.open)-1])
			}
			return tagtree.Event{}, io.EOF
		}
		if err != nil {
			return tagtree.Event{}, malformed(err, pos)
		}
		allowBOM := s.allowBOM
		s.allowBOM = false

		switch t := tok.(type) {
		case xml.StartElement:
			name := qualified(t.Name)
			s.open = append(s.open, name)
			return tagtree.Event{
				Kind:  tagtree.EventStartTag,
				Name:  name,
				Attrs: attributes(t.Attr),
				Pos:   pos,
			}, nil
		case xml.CharData:
			text := string(t)
			if allowBOM {
				text = strings.TrimPrefix(text, byteOrderMark)
				if text == "" {
					continue
				}
			}
			return tagtree.Event{Kind: tagtree.EventCharData, Text: text, Pos: pos}, nil
		case xml.EndElement:
			name := qualified(t.Name)
			if err := s.close(name, pos); err != nil {
				return tagtree.Event{}, err
			}
			return tagtree.Event{Kind: tagtree.EventEndTag, Name: name, Pos: pos}, nil
		default:
			// comments, processing instructions, directives
			continue
		}
	}
}

// close pops name off the open element stack. RawToken leaves end tag
// matching to the caller.
func (s *Source) close(name string, pos tagtree.Pos) error {
	if len(s.open) == 0 {
		return malformedAt(pos, "unexpected end element </%s>", name)
	}
	top := s.open[len(s.open)-1]
	if top != name {
		return malformedAt(pos, "element <%s> closed by </%s>", top, name)
	}
	s.open = s.open[:len(s.open)-1]
	return nil
}

// qualified renders a name as written in the document, "prefix:local" when
// prefixed, so that prefixed tags do not match grammar names.
func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func attributes(attrs []xml.Attr) []tagtree.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]tagtree.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = tagtree.Attribute{Name: qualified(a.Name), Value: a.Value}
	}
	return out
}

func malformedAt(pos tagtree.Pos, format string, args ...any) error {
	return &parseerr.Error{
		Kind:   parseerr.MalformedDocument,
		Detail: fmt.Sprintf(format, args...),
		Line:   pos.Line,
		Column: pos.Column,
	}
}

func malformed(err error, pos tagtree.Pos) error {
	perr := &parseerr.Error{
		Kind:   parseerr.MalformedDocument,
		Line:   pos.Line,
		Column: pos.Column,
		Err:    err,
	}
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		perr.Line = syntax.Line
		perr.Column = 0
		perr.Err = errors.New(syntax.Msg)
	}
	return perr
}

package parseerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a loading failure.
type Kind string

// Error implements the error interface so a Kind can be used as an
// errors.Is target.
func (k Kind) Error() string {
	return string(k)
}

const (
	// UnknownTag indicates a tag name that the grammar does not define.
	UnknownTag Kind = "unknown tag"
	// IllegalChild indicates a tag that its would-be parent does not accept.
	IllegalChild Kind = "illegal child"
	// IllegalParent indicates a tag placed under a parent it does not accept.
	IllegalParent Kind = "illegal parent"
	// MissingRequiredChild indicates a required child tag is absent.
	MissingRequiredChild Kind = "missing required child"
	// MissingAttribute indicates a required attribute is absent.
	MissingAttribute Kind = "missing attribute"
	// InvalidCountAttribute indicates a count attribute that is not a
	// non-negative decimal integer.
	InvalidCountAttribute Kind = "invalid count attribute"
	// CountMismatch indicates a count attribute disagreeing with the number
	// of children.
	CountMismatch Kind = "count mismatch"
	// InvalidEnumLiteral indicates text outside the accepted literals.
	InvalidEnumLiteral Kind = "invalid enum literal"
	// UnresolvedReference indicates a module name that no module declares.
	UnresolvedReference Kind = "unresolved reference"
	// EmptyRequiredField indicates a field that must not be empty is empty.
	EmptyRequiredField Kind = "empty required field"
	// EmptyWorkflow indicates a workflow that declares zero modules.
	EmptyWorkflow Kind = "empty workflow"
	// DuplicateModuleName indicates two modules sharing one name.
	DuplicateModuleName Kind = "duplicate module name"
	// UnsupportedConversion indicates an extraction requested for a tag type
	// that cannot produce the target value.
	UnsupportedConversion Kind = "unsupported conversion"
	// UnexpectedText indicates character data inside a structural tag.
	UnexpectedText Kind = "unexpected text"
	// MalformedDocument indicates a syntax error or a document without a
	// single closed root element.
	MalformedDocument Kind = "malformed document"
	// SourceUnavailable indicates the document could not be read.
	SourceUnavailable Kind = "source unavailable"
	// UnsupportedFormat indicates a document format with no event source.
	UnsupportedFormat Kind = "unsupported format"
)

// Error is a loading failure with the document context needed to locate it.
type Error struct {
	Kind     Kind
	Tag      string
	Parent   string
	Field    string
	Value    string
	Expected []string
	Detail   string
	Line     int
	Column   int
	Err      error
}

// Error renders the failure as a single line.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	if e.Tag != "" {
		fmt.Fprintf(&sb, ": tag <%s>", e.Tag)
	}
	if e.Parent != "" {
		fmt.Fprintf(&sb, " in <%s>", e.Parent)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, ", field %q", e.Field)
	}
	if e.Value != "" || len(e.Expected) > 0 {
		fmt.Fprintf(&sb, ", got %q", e.Value)
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&sb, ", expected one of %s", quoteAll(e.Expected))
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, " (line %d, column %d)", e.Line, e.Column)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Is reports whether target is this error's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

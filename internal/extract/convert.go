package extract

import (
	"fmt"
	"strconv"

	"github.com/vk/wrapperflow/internal/grammar"
	"github.com/vk/wrapperflow/internal/model"
	"github.com/vk/wrapperflow/internal/parseerr"
	"github.com/vk/wrapperflow/internal/tagtree"
)

// CountAttribute is the attribute declaring the size of a sequence or mapping.
const CountAttribute = "count"

// Boolean literals accepted by flag tags.
const (
	LiteralYes = "yes"
	LiteralNo  = "no"
)

// String returns the node's text verbatim.
func String(n *tagtree.Node) string {
	return n.Text
}

// Bool converts a flag tag. Only "yes" and "no" are accepted.
func Bool(n *tagtree.Node) (bool, error) {
	switch n.Text {
	case LiteralYes:
		return true, nil
	case LiteralNo:
		return false, nil
	default:
		return false, enumError(n, []string{LiteralYes, LiteralNo})
	}
}

// Pair converts a parameter or variable tag into its name and value.
func Pair(n *tagtree.Node) (string, string, error) {
	if n.Type != grammar.Parameter && n.Type != grammar.Variable {
		return "", "", unsupported(n, "name/value pair")
	}
	nameNode, err := required(n, grammar.Name)
	if err != nil {
		return "", "", err
	}
	valueNode, err := required(n, grammar.Value)
	if err != nil {
		return "", "", err
	}
	return String(nameNode), String(valueNode), nil
}

// Count reads the mandatory count attribute as a non-negative decimal integer.
func Count(n *tagtree.Node) (int, error) {
	raw, ok := n.Attr(CountAttribute)
	if !ok {
		return 0, &parseerr.Error{
			Kind:   parseerr.MissingAttribute,
			Tag:    n.Type.String(),
			Field:  CountAttribute,
			Line:   n.Pos.Line,
			Column: n.Pos.Column,
		}
	}
	v, err := strconv.ParseUint(raw, 10, strconv.IntSize-1)
	if err != nil {
		return 0, &parseerr.Error{
			Kind:   parseerr.InvalidCountAttribute,
			Tag:    n.Type.String(),
			Field:  CountAttribute,
			Value:  raw,
			Detail: "expected a non-negative decimal integer",
			Line:   n.Pos.Line,
			Column: n.Pos.Column,
		}
	}
	return int(v), nil
}

// Sequence converts every direct child of n with elem, in document order,
// and checks the result against n's count attribute.
func Sequence[T any](n *tagtree.Node, elem func(*tagtree.Node) (T, error)) ([]T, error) {
	declared, err := Count(n)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(n.Children))
	for _, child := range n.Children {
		v, err := elem(child)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := checkCount(n, declared, len(out)); err != nil {
		return nil, err
	}
	return out, nil
}

// Mapping converts every direct child of n with elem into a map entry and
// checks the number of children against n's count attribute. A repeated key
// keeps the value written last.
func Mapping[K comparable, V any](n *tagtree.Node, elem func(*tagtree.Node) (K, V, error)) (map[K]V, error) {
	declared, err := Count(n)
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, len(n.Children))
	extracted := 0
	for _, child := range n.Children {
		k, v, err := elem(child)
		if err != nil {
			return nil, err
		}
		out[k] = v
		extracted++
	}
	if err := checkCount(n, declared, extracted); err != nil {
		return nil, err
	}
	return out, nil
}

// ExecutionType converts an executionType tag.
func ExecutionType(n *tagtree.Node) (model.ExecutionType, error) {
	v, ok := model.ParseExecutionType(n.Text)
	if !ok {
		return v, enumError(n, model.ExecutionTypeLiterals())
	}
	return v, nil
}

// TransportType converts a transportType tag.
func TransportType(n *tagtree.Node) (model.TransportType, error) {
	v, ok := model.ParseTransportType(n.Text)
	if !ok {
		return v, enumError(n, model.TransportTypeLiterals())
	}
	return v, nil
}

// InputBatchType converts an inputBatchType tag.
func InputBatchType(n *tagtree.Node) (model.InputBatchType, error) {
	v, ok := model.ParseInputBatchType(n.Text)
	if !ok {
		return v, enumError(n, model.InputBatchTypeLiterals())
	}
	return v, nil
}

// OutputBatchType converts an outputBatchType tag.
func OutputBatchType(n *tagtree.Node) (model.OutputBatchType, error) {
	v, ok := model.ParseOutputBatchType(n.Text)
	if !ok {
		return v, enumError(n, model.OutputBatchTypeLiterals())
	}
	return v, nil
}

// NonEmptyString returns the node's text, failing when it is empty.
func NonEmptyString(n *tagtree.Node) (string, error) {
	if n.Text == "" {
		return "", emptyField(n)
	}
	return n.Text, nil
}

func required(parent *tagtree.Node, t grammar.TagType) (*tagtree.Node, error) {
	child, ok := parent.Child(t)
	if !ok {
		return nil, &parseerr.Error{
			Kind:   parseerr.MissingRequiredChild,
			Tag:    t.String(),
			Parent: parent.Type.String(),
			Line:   parent.Pos.Line,
			Column: parent.Pos.Column,
		}
	}
	return child, nil
}

func checkCount(n *tagtree.Node, declared, found int) error {
	if declared == found {
		return nil
	}
	return &parseerr.Error{
		Kind:   parseerr.CountMismatch,
		Tag:    n.Type.String(),
		Field:  CountAttribute,
		Detail: fmt.Sprintf("declared %d, found %d", declared, found),
		Line:   n.Pos.Line,
		Column: n.Pos.Column,
	}
}

func enumError(n *tagtree.Node, expected []string) error {
	return &parseerr.Error{
		Kind:     parseerr.InvalidEnumLiteral,
		Tag:      n.Type.String(),
		Value:    n.Text,
		Expected: expected,
		Line:     n.Pos.Line,
		Column:   n.Pos.Column,
	}
}

func emptyField(n *tagtree.Node) error {
	err := &parseerr.Error{
		Kind:   parseerr.EmptyRequiredField,
		Tag:    n.Type.String(),
		Field:  n.Type.String(),
		Line:   n.Pos.Line,
		Column: n.Pos.Column,
	}
	if p := n.Parent(); p != nil {
		err.Parent = p.Type.String()
	}
	return err
}

func unsupported(n *tagtree.Node, target string) error {
	return &parseerr.Error{
		Kind:   parseerr.UnsupportedConversion,
		Tag:    n.Type.String(),
		Detail: "cannot convert to " + target,
		Line:   n.Pos.Line,
		Column: n.Pos.Column,
	}
}

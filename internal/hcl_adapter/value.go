package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Flag literals produced for boolean values.
const (
	literalTrue  = "yes"
	literalFalse = "no"
)

// attributeText evaluates attr as a single document text.
func attributeText(attr *hclsyntax.Attribute) (string, error) {
	v, err := evaluate(attr)
	if err != nil {
		return "", err
	}
	return scalarText(attr, v)
}

// attributeTexts evaluates attr as one text per value. Tuples, lists and sets
// expand to their elements in order.
func attributeTexts(attr *hclsyntax.Attribute) ([]string, error) {
	v, err := evaluate(attr)
	if err != nil {
		return nil, err
	}
	ty := v.Type()
	if !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		text, err := scalarText(attr, v)
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	}
	if v.IsNull() {
		return nil, malformedAt(attr.SrcRange.Start, "attribute %q is null", attr.Name)
	}

	texts := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		text, err := scalarText(attr, elem)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func evaluate(attr *hclsyntax.Attribute) (cty.Value, error) {
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diagnosticsError(diags)
	}
	return v, nil
}

// scalarText converts a primitive value: strings verbatim, numbers in
// decimal, bools to yes or no.
func scalarText(attr *hclsyntax.Attribute, v cty.Value) (string, error) {
	if v.IsNull() {
		return "", malformedAt(attr.SrcRange.Start, "attribute %q is null", attr.Name)
	}
	if !v.IsWhollyKnown() {
		return "", malformedAt(attr.SrcRange.Start, "attribute %q has no known value", attr.Name)
	}
	if v.Type() == cty.Bool {
		if v.True() {
			return literalTrue, nil
		}
		return literalFalse, nil
	}
	if !v.Type().IsPrimitiveType() {
		return "", malformedAt(attr.SrcRange.Start, "attribute %q must be a string, number or bool, got %s", attr.Name, v.Type().FriendlyName())
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", malformedAt(attr.SrcRange.Start, "attribute %q: %s", attr.Name, err)
	}
	return s.AsString(), nil
}

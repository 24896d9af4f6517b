package loader

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/wrapperflow/internal/hcl_adapter"
	"github.com/vk/wrapperflow/internal/parseerr"
	"github.com/vk/wrapperflow/internal/tagtree"
	"github.com/vk/wrapperflow/internal/xml_adapter"
)

// Format is a workflow document syntax.
type Format int

const (
	// FormatAuto selects the format from the document name's extension.
	FormatAuto Format = iota
	FormatXML
	FormatHCL
)

var formatNames = map[Format]string{
	FormatAuto: "auto",
	FormatXML:  "xml",
	FormatHCL:  "hcl",
}

var extensions = map[string]Format{
	".xml": FormatXML,
	".hcl": FormatHCL,
}

// Extensions returns the file extensions with a known format, sorted.
func Extensions() []string {
	return FormatAuto.Extensions()
}

// Extensions returns the file extensions read as f, sorted. FormatAuto
// accepts every known extension.
func (f Format) Extensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext, format := range extensions {
		if f == FormatAuto || f == format {
			exts = append(exts, ext)
		}
	}
	slices.Sort(exts)
	return exts
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat converts a format name, as given on the command line.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return FormatAuto, &parseerr.Error{
		Kind:     parseerr.UnsupportedFormat,
		Value:    name,
		Expected: []string{"auto", "xml", "hcl"},
	}
}

// FormatFromPath returns the format implied by path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return FormatAuto, &parseerr.Error{
		Kind:     parseerr.UnsupportedFormat,
		Value:    ext,
		Expected: []string{".xml", ".hcl"},
		Detail:   "cannot tell the format of " + path,
	}
}

// sourceFactories maps each concrete format to its event source.
var sourceFactories = map[Format]func(name string, data []byte) (tagtree.Source, error){
	FormatXML: func(_ string, data []byte) (tagtree.Source, error) {
		return xml_adapter.NewSource(bytes.NewReader(data)), nil
	},
	FormatHCL: func(name string, data []byte) (tagtree.Source, error) {
		return hcl_adapter.NewSource(name, data)
	},
}

func newSource(f Format, name string, data []byte) (tagtree.Source, error) {
	factory, ok := sourceFactories[f]
	if !ok {
		return nil, &parseerr.Error{Kind: parseerr.UnsupportedFormat, Value: f.String()}
	}
	return factory(name, data)
}

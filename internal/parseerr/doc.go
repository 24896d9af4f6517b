// Package parseerr defines the error type shared by every stage of workflow
// loading: reading the document, building the tag tree and extracting the
// module model.
//
// Each failure carries a Kind. Kinds are themselves errors, so callers match
// them with errors.Is:
//
//	if errors.Is(err, parseerr.CountMismatch) { ... }
//
// The remaining fields of Error (tag, parent, field, position) pinpoint where
// in the document the failure was detected.
package parseerr

// Package tagtree builds the in-memory tag tree of a workflow document from a
// stream of start-tag, character-data and end-tag events.
//
// The Builder keeps a cursor on the innermost open tag. Each start tag is
// checked in both directions against the grammar (the parent must accept the
// child and the child must accept the parent) before the tree is changed, so a
// tree returned by Build is always structurally legal. Character data only
// accumulates in value tags; chunks of the same run are concatenated.
//
// Sources for concrete syntaxes live in the xml_adapter and hcl_adapter
// packages.
package tagtree

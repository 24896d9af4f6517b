// Package grammar holds the fixed structure of a workflow document: the set of
// tag types, their literal names and, for each, the tags it may be nested
// under and the tags it may contain.
//
// The table is built once at package initialization and is read-only
// afterwards. Entry exposes copies of its parent and child sets so callers
// cannot alter it.
package grammar

// Package topology builds the data-flow graph of a loaded workflow.
//
// Every module is a node keyed by its workflow id. An edge runs from a
// module to each module receiving one of its output channels, from a module
// to the collector of its output batches, and from a distributor to each
// module whose input batch it feeds. Loops are legal in a workflow, so the
// graph reports them instead of rejecting them.
package topology

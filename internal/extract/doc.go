// Package extract turns a validated tag tree into the workflow model.
//
// Conversions are chosen by target type: text, yes/no flags, name/value
// pairs, closed enumerations, and counted sequences and mappings whose
// "count" attribute must match the number of children. Module name
// references are resolved in two passes by Workflow.
package extract

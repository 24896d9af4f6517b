// Package loader reads workflow documents from disk and runs them through
// an event source, the tag tree builder and the extractor.
//
// Formats are a closed set: each Format maps to one event source
// constructor. FormatAuto picks the format from the file extension.
package loader

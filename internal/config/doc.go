// Package config defines the interface between the application shell and a
// workflow document loader.
//
// The app package depends only on Loader; the concrete implementation lives
// in the loader package, which picks an event source per document format.
package config

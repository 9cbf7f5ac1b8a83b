package core

import (
	"context"
)

// Persistence defines the interface for cache and file persistence
type Persistence interface {
	// ResolveSeismicPath returns the path of the SEG-Y file for a base name
	ResolveSeismicPath(name string) (string, error)

	// ReadTable loads a tabular cache from a parquet file
	ReadTable(ctx context.Context, path string) (*Table, error)

	// WriteTable persists a tabular cache as a parquet file
	WriteTable(ctx context.Context, table *Table, path string) error

	// Columns lists the column names of a tabular cache
	Columns(ctx context.Context, path string) ([]string, error)

	// ReadJSON and WriteJSON persist JSON caches
	ReadJSON(path string, v any) error
	WriteJSON(path string, v any) error

	// WriteText persists a plain-text artifact
	WriteText(path string, text string) error

	// Exists and Remove are file-presence operations relative to the root
	Exists(name string) bool
	Remove(name string) error

	// JSONPath maps a JSON cache name to its path under the metadata dir
	JSONPath(name string) string

	// Initialize sets up the store
	Initialize() error

	// Close releases resources
	Close() error
}

// Package store persists the pipeline's cache artifacts: the parquet
// header table, the JSON statistics cache and the textual header dump.
// Parquet is written through arrow and read back through DuckDB.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/memory"
	"github.com/apache/arrow/go/v14/parquet"
	"github.com/apache/arrow/go/v14/parquet/pqarrow"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/spf13/afero"

	"github.com/segmeta/segmeta/core"
)

// Ensure Store implements the persistence interface
var _ core.Persistence = (*Store)(nil)

// metadataDir holds JSON caches, next to (not mixed with) the data files.
const metadataDir = "metadata"

// seismicExtensions is the fixed resolution order for source files.
var seismicExtensions = []string{".sgy", ".segy"}

// Store handles file resolution and cache persistence under a single root
// directory. Fs covers all direct file I/O; the DuckDB connection serves
// parquet reads, so those require Root to be an OS-visible directory.
type Store struct {
	Fs   afero.Fs
	Root string
	DB   *sql.DB
}

// New creates a Store rooted at root.
func New(fs afero.Fs, root string) *Store {
	return &Store{Fs: fs, Root: root}
}

// Initialize sets up the DuckDB connection and the metadata directory.
func (s *Store) Initialize() error {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return fmt.Errorf("failed to initialize DuckDB: %v", err)
	}
	s.DB = db
	if err := s.Fs.MkdirAll(filepath.Join(s.Root, metadataDir), 0o755); err != nil {
		return fmt.Errorf("creating metadata dir: %w: %w", core.ErrIO, err)
	}
	return nil
}

// Close releases resources
func (s *Store) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// abs maps a name relative to the root onto a full path.
func (s *Store) abs(name string) string {
	return filepath.Join(s.Root, name)
}

// ResolveSeismicPath tries the known extensions in priority order and
// returns the first existing path.
func (s *Store) ResolveSeismicPath(name string) (string, error) {
	for _, ext := range seismicExtensions {
		path := s.abs(name + ext)
		if ok, _ := afero.Exists(s.Fs, path); ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("no SEG-Y file for %q with .sgy or .segy extension in %s: %w",
		name, s.Root, core.ErrNotFound)
}

// Exists reports whether a file (name with extension) is present under the
// root.
func (s *Store) Exists(name string) bool {
	ok, _ := afero.Exists(s.Fs, s.abs(name))
	return ok
}

// Remove deletes a file under the root; a missing target is an error.
func (s *Store) Remove(name string) error {
	if !s.Exists(name) {
		return fmt.Errorf("remove %s: %w", name, core.ErrNotFound)
	}
	if err := s.Fs.Remove(s.abs(name)); err != nil {
		return fmt.Errorf("removing %s: %w: %w", name, core.ErrIO, err)
	}
	return nil
}

// JSONPath maps a JSON cache name to its path relative to the root.
func (s *Store) JSONPath(name string) string {
	return filepath.Join(metadataDir, name)
}

// ReadJSON loads a JSON cache into v.
func (s *Store) ReadJSON(path string, v any) error {
	raw, err := afero.ReadFile(s.Fs, s.abs(path))
	if err != nil {
		return fmt.Errorf("reading JSON %s: %w: %w", path, core.ErrIO, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing JSON %s: %w: %w", path, core.ErrIO, err)
	}
	return nil
}

// WriteJSON persists v as indented JSON.
func (s *Store) WriteJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON %s: %w: %w", path, core.ErrIO, err)
	}
	if err := afero.WriteFile(s.Fs, s.abs(path), raw, 0o644); err != nil {
		return fmt.Errorf("writing JSON %s: %w: %w", path, core.ErrIO, err)
	}
	return nil
}

// WriteText persists a plain-text artifact.
func (s *Store) WriteText(path string, text string) error {
	if err := afero.WriteFile(s.Fs, s.abs(path), []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w: %w", path, core.ErrIO, err)
	}
	return nil
}

// WriteTable persists a table as a parquet file.
func (s *Store) WriteTable(ctx context.Context, table *core.Table, path string) error {
	start := time.Now()

	fields := make([]arrow.Field, len(table.Columns))
	for i, col := range table.Columns {
		fields[i] = arrow.Field{Name: col, Type: arrow.PrimitiveTypes.Int64}
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()
	for i, col := range table.Columns {
		builder.Field(i).(*array.Int64Builder).AppendValues(table.Values[col], nil)
	}
	record := builder.NewRecord()
	defer record.Release()

	arrowTable := array.NewTableFromRecords(schema, []arrow.Record{record})
	defer arrowTable.Release()

	w, err := s.Fs.Create(s.abs(path))
	if err != nil {
		return fmt.Errorf("creating %s: %w: %w", path, core.ErrIO, err)
	}
	defer w.Close()

	err = pqarrow.WriteTable(arrowTable, w, int64(table.NumRows()),
		parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("writing parquet %s: %w: %w", path, core.ErrIO, err)
	}

	core.Debugf(ctx, "Wrote %d rows x %d columns to %s in: %v",
		table.NumRows(), len(table.Columns), path, time.Since(start))
	return nil
}

// ReadTable loads a parquet cache back into a table, preserving column
// order.
func (s *Store) ReadTable(ctx context.Context, path string) (*core.Table, error) {
	start := time.Now()

	query := fmt.Sprintf("SELECT * FROM read_parquet('%s')", s.abs(path))
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading parquet %s: %w: %w", path, core.ErrIO, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading parquet columns %s: %w: %w", path, core.ErrIO, err)
	}

	table := core.NewTable()
	values := make([][]int64, len(columns))

	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row from %s: %w: %w", path, core.ErrIO, err)
		}
		for i, v := range raw {
			values[i] = append(values[i], toInt64(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows of %s: %w: %w", path, core.ErrIO, err)
	}

	for i, col := range columns {
		table.AddColumn(col, values[i])
	}

	core.Debugf(ctx, "Read %d rows from %s in: %v", table.NumRows(), path, time.Since(start))
	return table, nil
}

// Columns lists the column names of a parquet cache without loading it.
func (s *Store) Columns(ctx context.Context, path string) ([]string, error) {
	query := fmt.Sprintf("DESCRIBE SELECT * FROM read_parquet('%s')", s.abs(path))
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("describing parquet %s: %w: %w", path, core.ErrIO, err)
	}
	defer rows.Close()

	described, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describing parquet %s: %w: %w", path, core.ErrIO, err)
	}

	var columns []string
	for rows.Next() {
		raw := make([]any, len(described))
		ptrs := make([]any, len(described))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("describing parquet %s: %w: %w", path, core.ErrIO, err)
		}
		// column_name is the first DESCRIBE column
		if name, ok := raw[0].(string); ok {
			columns = append(columns, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describing parquet %s: %w: %w", path, core.ErrIO, err)
	}
	return columns, nil
}

// toInt64 normalizes the integer widths DuckDB hands back.
func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int16:
		return int64(n)
	case int8:
		return int64(n)
	case float64:
		return int64(n)
	case uint64:
		return int64(n)
	}
	return 0
}

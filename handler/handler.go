// Package handler orchestrates the extraction pipeline: logical-name
// resolution, lazy creation of the header-table cache and the read-through
// JSON statistics cache.
package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/segmeta/segmeta/core"
	"github.com/segmeta/segmeta/extract"
	"github.com/segmeta/segmeta/segy"
)

// StatsEntry is one persisted statistics record.
type StatsEntry struct {
	Columns []string `json:"columns"`
	Infos   string   `json:"infos"`
	Scalco  float64  `json:"scalco"`
}

// Statistics is the JSON statistics cache payload, keyed by logical file
// name.
type Statistics map[string]StatsEntry

// excludedColumns never appear in a statistics entry's column list; the
// comparison is case-insensitive.
var excludedColumns = []string{"amplitude", "amplitudes", extract.TraceIndexColumn}

// Handler coordinates the store, the header reader and the statistics
// extractor. It holds the persistence collaborator rather than extending
// it. Single-threaded: concurrent writers to one logical name may race on
// the cache artifacts.
type Handler struct {
	Fs    afero.Fs
	Store core.Persistence
	// Files is the registry of known base names, in resolution priority
	// order.
	Files []string

	reader *extract.HeaderReader
}

// New creates a Handler over the given store and base-name registry.
func New(fs afero.Fs, store core.Persistence, files []string) *Handler {
	return &Handler{
		Fs:     fs,
		Store:  store,
		Files:  files,
		reader: extract.NewHeaderReader(fs),
	}
}

func isExcludedColumn(col string) bool {
	lower := strings.ToLower(col)
	for _, excluded := range excludedColumns {
		if lower == excluded {
			return true
		}
	}
	return false
}

// BaseName resolves a logical name to a registered base file name by
// substring match; the first match in registry order wins.
func (h *Handler) BaseName(current string) (string, error) {
	for _, name := range h.Files {
		if strings.Contains(current, name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("no registered SEG-Y base name matching %q: %w", current, core.ErrInvalid)
}

// Process resolves the logical name, makes sure its header-table cache
// exists and returns its statistics. A missing cache can only be created
// when the logical name is itself a registered base name; headers cannot
// be synthesized for derived names.
func (h *Handler) Process(ctx context.Context, current string) (Statistics, error) {
	base, err := h.BaseName(current)
	if err != nil {
		return nil, err
	}

	if !h.Store.Exists(current + ".parquet") {
		if current != base {
			return nil, fmt.Errorf("header cache for %q missing and %q is not a base name: %w",
				current, current, core.ErrInvalid)
		}
		if err := h.extractTraceHeaders(ctx, base); err != nil {
			return nil, err
		}
	}

	return h.GetStatistics(ctx, current)
}

// GetStatistics returns the persisted statistics entry for the logical
// name, or computes and persists one. Cached entries are served verbatim
// with no staleness check against the source file.
func (h *Handler) GetStatistics(ctx context.Context, current string) (Statistics, error) {
	jsonPath := h.Store.JSONPath(current + ".json")
	if h.Store.Exists(jsonPath) {
		cached := Statistics{}
		if err := h.Store.ReadJSON(jsonPath, &cached); err != nil {
			return nil, err
		}
		core.Debugf(ctx, "Statistics cache hit for %s", current)
		return cached, nil
	}

	columns, err := h.Store.Columns(ctx, current+".parquet")
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(columns))
	for _, col := range columns {
		if !isExcludedColumn(col) {
			kept = append(kept, col)
		}
	}

	info, scalar, err := h.information(ctx, current)
	if err != nil {
		return nil, err
	}

	result := Statistics{
		current: {Columns: kept, Infos: info, Scalco: scalar},
	}
	if err := h.Store.WriteJSON(jsonPath, result); err != nil {
		return nil, err
	}
	return result, nil
}

// information runs the statistics extractor over the cached header table
// of the logical name and the SEG-Y file of its base name.
func (h *Handler) information(ctx context.Context, current string) (string, float64, error) {
	base, err := h.BaseName(current)
	if err != nil {
		return "", 0, err
	}
	path, err := h.Store.ResolveSeismicPath(base)
	if err != nil {
		return "", 0, err
	}
	headers, err := h.Store.ReadTable(ctx, current+".parquet")
	if err != nil {
		return "", 0, err
	}

	report, err := extract.NewExtractor(h.Fs, path, headers).ExtractAll(ctx)
	if err != nil {
		return "", 0, err
	}
	return report.Text, report.ScalingFactor, nil
}

// extractTraceHeaders dumps the textual header and builds and persists the
// header table for a base name.
func (h *Handler) extractTraceHeaders(ctx context.Context, name string) error {
	path, err := h.Store.ResolveSeismicPath(name)
	if err != nil {
		return err
	}

	if err := h.dumpTextHeader(name, path); err != nil {
		return err
	}

	table, err := h.reader.ReadHeaders(ctx, path)
	if err != nil {
		return err
	}
	return h.Store.WriteTable(ctx, table, name+".parquet")
}

// dumpTextHeader persists the verbatim textual header as a plain-text
// artifact next to the caches.
func (h *Handler) dumpTextHeader(name, path string) error {
	f, err := segy.Open(h.Fs, path)
	if err != nil {
		return err
	}
	text := f.TextHeader()
	f.Close()
	return h.Store.WriteText(name+".txt", text)
}

// AttachAmplitudes re-reads the sample series for the rows of an arbitrary
// table subset, resolving the logical name to its base file.
func (h *Handler) AttachAmplitudes(ctx context.Context, table *core.Table, current string) error {
	base, err := h.BaseName(current)
	if err != nil {
		return err
	}
	path, err := h.Store.ResolveSeismicPath(base)
	if err != nil {
		return err
	}
	return h.reader.AttachAmplitudes(ctx, table, path)
}

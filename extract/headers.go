// Package extract turns SEG-Y files into header tables and statistics
// reports. The header reader scans every trace header once, keeps only
// fields that carry information and produces the table the cache layer
// persists; the extractor computes the statistics groups over that table.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/segmeta/segmeta/core"
	"github.com/segmeta/segmeta/segy"
)

// TraceIndexColumn is the synthetic 0-based row index appended after
// filtering.
const TraceIndexColumn = "trace_index"

// HeaderReader extracts per-trace header tables from SEG-Y files.
type HeaderReader struct {
	Fs afero.Fs
}

func NewHeaderReader(fs afero.Fs) *HeaderReader {
	return &HeaderReader{Fs: fs}
}

// ScanHeaders reads every trace header in one pass and returns the mean of
// each catalogue field across all traces.
func (r *HeaderReader) ScanHeaders(ctx context.Context, path string) (map[string]float64, error) {
	f, err := segy.Open(r.Fs, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sums := make([]int64, len(segy.TraceFields))
	n := f.TraceCount()
	for i := 0; i < n; i++ {
		raw, err := f.TraceHeaderRaw(i)
		if err != nil {
			return nil, err
		}
		for j, field := range segy.TraceFields {
			sums[j] += segy.DecodeField(raw, field)
		}
	}

	means := make(map[string]float64, len(segy.TraceFields))
	for j, field := range segy.TraceFields {
		if n > 0 {
			means[field.Name] = float64(sums[j]) / float64(n)
		} else {
			means[field.Name] = 0
		}
	}
	return means, nil
}

// ReadHeaders performs the full extraction: every catalogue field whose
// mean across all traces is non-zero becomes a column, in catalogue order;
// all-zero fields are dropped as unused header slots. The trace_index
// column is appended last.
func (r *HeaderReader) ReadHeaders(ctx context.Context, path string) (*core.Table, error) {
	start := time.Now()

	f, err := segy.Open(r.Fs, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n := f.TraceCount()
	columns := make([][]int64, len(segy.TraceFields))
	sums := make([]int64, len(segy.TraceFields))
	for j := range columns {
		columns[j] = make([]int64, n)
	}

	for i := 0; i < n; i++ {
		raw, err := f.TraceHeaderRaw(i)
		if err != nil {
			return nil, err
		}
		for j, field := range segy.TraceFields {
			v := segy.DecodeField(raw, field)
			columns[j][i] = v
			sums[j] += v
		}
	}

	table := core.NewTable()
	for j, field := range segy.TraceFields {
		// mean != 0 is equivalent to sum != 0 and avoids float comparison
		if sums[j] != 0 {
			table.AddColumn(field.Name, columns[j])
		}
	}

	index := make([]int64, n)
	for i := range index {
		index[i] = int64(i)
	}
	table.AddColumn(TraceIndexColumn, index)

	core.Debugf(ctx, "Extracted %d of %d header fields from %d traces in: %v",
		len(table.Columns)-1, len(segy.TraceFields), n, time.Since(start))
	return table, nil
}

// AttachAmplitudes reads the raw sample series for the table's trace_index
// rows and attaches them. The attachment is recomputed on each call and is
// never part of the persisted table.
func (r *HeaderReader) AttachAmplitudes(ctx context.Context, table *core.Table, path string) error {
	indices := table.Column(TraceIndexColumn)
	if indices == nil {
		return fmt.Errorf("table has no %s column: %w", TraceIndexColumn, core.ErrInvalid)
	}

	f, err := segy.Open(r.Fs, path)
	if err != nil {
		return err
	}
	defer f.Close()

	amplitudes := make([][]float32, len(indices))
	for i, idx := range indices {
		series, err := f.Samples(int(idx))
		if err != nil {
			return err
		}
		amplitudes[i] = series
	}
	table.Amplitudes = amplitudes
	return nil
}

// ReadWithAmplitudes extracts the header table and attaches every trace's
// sample series in one call. The whole trace set is held in memory.
func (r *HeaderReader) ReadWithAmplitudes(ctx context.Context, path string) (*core.Table, error) {
	table, err := r.ReadHeaders(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := r.AttachAmplitudes(ctx, table, path); err != nil {
		return nil, err
	}
	return table, nil
}

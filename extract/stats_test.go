package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmeta/segmeta/core"
	"github.com/segmeta/segmeta/segy/segytest"
)

// line2D synthesizes an irregular (2D) file: four traces, two channels,
// shots every 25 units moving in +X.
func line2D(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	traces := []segytest.Trace{
		{Headers: map[string]int64{
			"CDP": 100, "TraceNumber": 1, "SourceX": 500, "SourceY": 2000,
			"offset": 100, "DelayRecordingTime": 2000, "SourceGroupScalar": -100,
		}, Samples: []float32{1, 2}},
		{Headers: map[string]int64{
			"CDP": 100, "TraceNumber": 2, "SourceX": 525, "SourceY": 2000,
			"offset": 200, "DelayRecordingTime": 2000, "SourceGroupScalar": -100,
		}, Samples: []float32{3, 4}},
		{Headers: map[string]int64{
			"CDP": 101, "TraceNumber": 1, "SourceX": 550, "SourceY": 2010,
			"offset": 100, "DelayRecordingTime": 2000, "SourceGroupScalar": -100,
		}, Samples: []float32{5, 6}},
		{Headers: map[string]int64{
			"CDP": 101, "TraceNumber": 2, "SourceX": 575, "SourceY": 2010,
			"offset": 200, "DelayRecordingTime": 2000, "SourceGroupScalar": -100,
		}, Samples: []float32{7, 8}},
	}
	require.NoError(t, segytest.Write(fs, path, segytest.FileSpec{
		Text:   "C 1 CLIENT: ACME",
		Bin:    map[string]int64{"LineNumber": 12},
		Traces: traces,
	}))
}

func extractAll(t *testing.T, fs afero.Fs, path string) *Report {
	t.Helper()
	table, err := NewHeaderReader(fs).ReadHeaders(context.Background(), path)
	require.NoError(t, err)
	report, err := NewExtractor(fs, path, table).ExtractAll(context.Background())
	require.NoError(t, err)
	return report
}

func TestExtractAll2D(t *testing.T) {
	fs := afero.NewMemMapFs()
	line2D(t, fs, "/line.sgy")
	report := extractAll(t, fs, "/line.sgy")

	assert.False(t, report.Is3D)

	basic := report.Basic
	assert.Equal(t, "2", basic.RecordingTime)
	assert.Equal(t, "25", basic.ShotPointDistance)
	assert.Equal(t, "left-to-right", basic.PlotDirection)
	assert.Equal(t, "100", basic.MinOffset)
	assert.Equal(t, "200", basic.MaxOffset)
	assert.Equal(t, "2", basic.NumChannels)
	assert.Equal(t, "100", basic.FirstCDP)
	assert.Equal(t, "101", basic.LastCDP)

	geo := report.Geometry
	assert.Equal(t, 4, geo.TotalTraces)
	assert.Equal(t, 4, geo.TotalShots)
	assert.Equal(t, "500", geo.XMin)
	assert.Equal(t, "575", geo.XMax)
	assert.Equal(t, "2000", geo.YMin)
	assert.Equal(t, "2010", geo.YMax)

	acq := report.Acquisition
	assert.Equal(t, "2", acq.AverageFold)
	assert.Equal(t, "2", acq.MaximumFold)
	assert.Equal(t, "2", acq.MinimumFold)

	assert.Equal(t, -100.0, report.ScalingFactor)
}

func TestExtractBinaryHeader2D(t *testing.T) {
	fs := afero.NewMemMapFs()
	line2D(t, fs, "/line.sgy")
	report := extractAll(t, fs, "/line.sgy")

	entries := map[string]string{}
	for _, e := range report.Binary {
		entries[e.Key] = e.Value
	}

	// Interval is microseconds in the header, milliseconds in the report
	assert.Equal(t, "2", entries["sampling_rate"])
	assert.Equal(t, "2", entries["num_samples"])
	assert.Equal(t, "5", entries["data_format"])
	assert.Equal(t, "12", entries["line_number"])
	assert.Equal(t, "2D", entries["data_type"])

	// zero-valued catalogue fields are skipped
	assert.NotContains(t, entries, "JobID")
	assert.NotContains(t, entries, "TraceFlag")

	// data_type is the last entry
	assert.Equal(t, "data_type", report.Binary[len(report.Binary)-1].Key)
}

func TestReport2DComposition(t *testing.T) {
	fs := afero.NewMemMapFs()
	line2D(t, fs, "/line.sgy")
	report := extractAll(t, fs, "/line.sgy")

	text := report.Text
	assert.True(t, strings.HasPrefix(text, "DETAILED INFORMATION OF THE SEG-Y FILE\n"))
	assert.Contains(t, text, "INFORMATION CONTAINED IN THE ASCII HEADER:\n")
	assert.Contains(t, text, "C 1 CLIENT: ACME")
	assert.Contains(t, text, "Recording Time: 2 s\n")
	assert.Contains(t, text, "Distance Between Shot Points: 25 m\n")
	assert.Contains(t, text, "Offset Range: 100 - 200 m\n")
	assert.Contains(t, text, "CDP Range: 100 - 101\n")
	assert.Contains(t, text, "\nBINARY HEADER INFORMATION:\n")
	assert.Contains(t, text, "Sampling Rate (ms): 2")
	assert.Contains(t, text, "Data Type: 2D")
	assert.Contains(t, text, "\nGEOMETRY INFORMATION:\nTotal Traces: 4\nTotal Shots: 4\n")
	assert.Contains(t, text, "Coordinates:\n  X: 500 - 575\n  Y: 2000 - 2010\n")
	assert.Contains(t, text, "\nACQUISITION INFORMATION:\nAverage Fold: 2\n")

	// no 3D sections for an irregular file
	assert.NotContains(t, text, "Inline Range:")
	assert.NotContains(t, text, "Crossline Spacing:")
	assert.NotContains(t, text, "CDP Range:\n")
}

func TestExtractAll3D(t *testing.T) {
	fs := afero.NewMemMapFs()
	var traces []segytest.Trace
	cdp := int64(300)
	for _, il := range []int64{10, 12, 14} {
		for _, xl := range []int64{2, 3} {
			cdp++
			traces = append(traces, segytest.Trace{
				Headers: map[string]int64{
					"INLINE_3D": il, "CROSSLINE_3D": xl, "CDP": cdp,
					"SourceX": il * 100, "SourceY": xl * 100,
				},
				Samples: []float32{1},
			})
		}
	}
	require.NoError(t, segytest.Write(fs, "/cube.sgy", segytest.FileSpec{Traces: traces}))

	report := extractAll(t, fs, "/cube.sgy")
	require.True(t, report.Is3D)

	assert.Equal(t, "10", report.Basic.FirstInline)
	assert.Equal(t, "14", report.Basic.LastInline)
	assert.Equal(t, "2", report.Basic.FirstCrossline)
	assert.Equal(t, "3", report.Basic.LastCrossline)
	assert.Equal(t, 3, report.Geometry.InlineDimensions)
	assert.Equal(t, 2, report.Geometry.CrosslineDimensions)
	assert.Equal(t, "2", report.Acquisition.InlineSpacing)
	assert.Equal(t, "1", report.Acquisition.CrosslineSpacing)

	text := report.Text
	assert.Contains(t, text, "CDP Range:\n 301 - 306\n")
	assert.Contains(t, text, "Inline Range: 10 - 14\n")
	assert.Contains(t, text, "Crossline Range: 2 - 3\n")
	assert.Contains(t, text, "Inline Dimensions: 3\n")
	assert.Contains(t, text, "Crossline Dimensions: 2\n")
	assert.Contains(t, text, "Inline Spacing: 2\n")
	assert.Contains(t, text, "Crossline Spacing: 1\n")
	assert.Contains(t, text, "Data Type: 3D")
}

// Fold metrics are the sentinel iff all CDP values are identical.
func TestFoldSentinel(t *testing.T) {
	tests := []struct {
		name     string
		cdps     []int64
		sentinel bool
	}{
		{"identical CDPs", []int64{7, 7, 7}, true},
		{"varying CDPs", []int64{7, 7, 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := core.NewTable()
			table.AddColumn("CDP", tt.cdps)
			e := &Extractor{Headers: table}

			acq := e.acquisitionInfo(false)
			if tt.sentinel {
				assert.Equal(t, NotApplicable, acq.AverageFold)
				assert.Equal(t, NotApplicable, acq.MaximumFold)
				assert.Equal(t, NotApplicable, acq.MinimumFold)
			} else {
				assert.Equal(t, "1.5", acq.AverageFold)
				assert.Equal(t, "2", acq.MaximumFold)
				assert.Equal(t, "1", acq.MinimumFold)
			}
		})
	}
}

func TestDiffMode(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   float64
	}{
		{"clear mode", []int64{0, 10, 20, 25, 30, 35}, 5},
		{"tie picks smallest", []int64{0, 10, 20, 25, 30}, 5},
		{"no repeats picks smallest", []int64{0, 10, 30}, 10},
		{"single value", []int64{5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, diffMode(tt.values))
		})
	}
}

func TestPlotDirection(t *testing.T) {
	assert.Equal(t, "left-to-right", plotDirection([]int64{0, 10, 20}))
	assert.Equal(t, "right-to-left", plotDirection([]int64{20, 10, 0}))
	assert.Equal(t, "right-to-left", plotDirection([]int64{5}))
}

func TestNominalSpacing(t *testing.T) {
	assert.Equal(t, "2", nominalSpacing([]int64{10, 12, 14, 12, 10}))
	assert.Equal(t, NotApplicable, nominalSpacing([]int64{7, 7, 7}))
	assert.Equal(t, NotApplicable, nominalSpacing(nil))
}

func TestScalingFactor(t *testing.T) {
	tests := []struct {
		name    string
		scalars []int64
		want    float64
	}{
		{"plain mean", []int64{-100, -100}, -100},
		{"zero mean defaults to one", []int64{0, 0}, 1},
		{"cancelling values default to one", []int64{-5, 5}, 1},
		{"empty column defaults to one", nil, 1},
		{"rounded mean", []int64{1, 2}, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := core.NewTable()
			if tt.scalars != nil {
				table.AddColumn("SourceGroupScalar", tt.scalars)
			}
			e := &Extractor{Headers: table}
			assert.Equal(t, tt.want, e.scalingFactor())
		})
	}
}

// Repeated extraction of the same file yields identical report text.
func TestExtractAllDeterministic(t *testing.T) {
	fs := afero.NewMemMapFs()
	line2D(t, fs, "/line.sgy")

	first := extractAll(t, fs, "/line.sgy")
	second := extractAll(t, fs, "/line.sgy")
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.ScalingFactor, second.ScalingFactor)
}

func TestDisplayLabelFallback(t *testing.T) {
	assert.Equal(t, "Sampling Rate (ms)", displayLabel("sampling_rate"))
	assert.Equal(t, "Ensemblefold", displayLabel("EnsembleFold"))
	assert.Equal(t, "Sortingcode", displayLabel("SortingCode"))
}

package extract

import (
	"context"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/afero"

	"github.com/segmeta/segmeta/core"
	"github.com/segmeta/segmeta/segy"
)

// NotApplicable is the sentinel reported when a statistic has no
// meaningful value (all CDPs identical, or too few line values for a
// spacing median).
const NotApplicable = "Not applicable"

// namesEN maps binary-header catalogue names to canonical identifiers.
var namesEN = map[string]string{
	"Interval":          "sampling_rate",
	"Samples":           "num_samples",
	"Format":            "data_format",
	"MeasurementSystem": "measurement_code",
	"SEGYRevision":      "segy_revision",
	"SEGYRevisionMinor": "segy_revision_minor",
	"LineNumber":        "line_number",
}

// readableNames maps canonical identifiers to display labels.
var readableNames = map[string]string{
	"sampling_rate":       "Sampling Rate (ms)",
	"num_samples":         "Samples per Trace",
	"data_format":         "Data Format",
	"measurement_code":    "Measurement Code",
	"segy_revision":       "SEG-Y Revision (Major)",
	"segy_revision_minor": "SEG-Y Revision (Minor)",
	"line_number":         "Line Number",
	"data_type":           "Data Type",
}

// BinEntry is one retained binary-header field under its canonical name.
type BinEntry struct {
	Key   string
	Value string
}

// BasicInfo is the basic acquisition group. All values carry the uniform
// numeric formatting; the inline/crossline ranges are set only for 3D.
type BasicInfo struct {
	RecordingTime     string
	ShotPointDistance string
	PlotDirection     string
	MinOffset         string
	MaxOffset         string
	NumChannels       string
	FirstCDP          string
	LastCDP           string
	FirstInline       string
	LastInline        string
	FirstCrossline    string
	LastCrossline     string
}

// GeometryInfo is the geometry group.
type GeometryInfo struct {
	TotalTraces         int
	TotalShots          int
	XMin, XMax          string
	YMin, YMax          string
	InlineDimensions    int
	CrosslineDimensions int
}

// AcquisitionInfo is the acquisition-quality group. Fold fields hold the
// sentinel when every CDP is identical.
type AcquisitionInfo struct {
	AverageFold      string
	MaximumFold      string
	MinimumFold      string
	InlineSpacing    string
	CrosslineSpacing string
}

// Report is the full statistics result. Immutable once produced.
type Report struct {
	Basic         BasicInfo
	Binary        []BinEntry
	Geometry      GeometryInfo
	Acquisition   AcquisitionInfo
	TextHeader    string
	Is3D          bool
	Text          string
	ScalingFactor float64
}

// Extractor computes the statistics groups for one file from its cached
// header table.
type Extractor struct {
	Fs      afero.Fs
	Path    string
	Headers *core.Table
}

func NewExtractor(fs afero.Fs, path string, headers *core.Table) *Extractor {
	return &Extractor{Fs: fs, Path: path, Headers: headers}
}

// ExtractAll opens the file, classifies its geometry, computes the four
// statistics groups and composes the report. The handle is closed on every
// path.
func (e *Extractor) ExtractAll(ctx context.Context) (*Report, error) {
	start := time.Now()

	f, err := segy.OpenDetect(e.Fs, e.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	is3D := f.Geometry().Is3D()
	report := &Report{
		Basic:         e.basicInfo(is3D),
		Binary:        e.binaryHeaderInfo(f),
		Geometry:      e.geometryInfo(f, is3D),
		Acquisition:   e.acquisitionInfo(is3D),
		TextHeader:    f.TextHeader(),
		Is3D:          is3D,
		ScalingFactor: e.scalingFactor(),
	}
	report.Text = composeReport(report)

	core.Infof(ctx, "Extracted %s statistics for %s in: %v",
		f.Geometry(), e.Path, time.Since(start))
	return report, nil
}

// column returns the named header column, or all zeros when the table does
// not carry it (degenerate fields never make it into the cache).
func (e *Extractor) column(name string) []int64 {
	if v := e.Headers.Column(name); v != nil {
		return v
	}
	return make([]int64, e.Headers.NumRows())
}

// binaryHeaderInfo walks the fixed binary-header catalogue and keeps every
// readable non-zero field under its canonical name; the sampling interval
// is converted from microseconds to milliseconds. The synthetic data_type
// entry is appended last.
func (e *Extractor) binaryHeaderInfo(f *segy.File) []BinEntry {
	var entries []BinEntry
	for _, field := range segy.BinFields {
		value, err := f.Bin(field.Name)
		if err != nil || value == 0 {
			continue
		}
		name := field.Name
		if canonical, ok := namesEN[name]; ok {
			name = canonical
		}
		rendered := FormatInt(value)
		if field.Name == "Interval" {
			rendered = FormatFloat(float64(value) / 1000)
		}
		entries = append(entries, BinEntry{Key: name, Value: rendered})
	}

	entries = append(entries, BinEntry{Key: "data_type", Value: f.Geometry().String()})
	return entries
}

func (e *Extractor) basicInfo(is3D bool) BasicInfo {
	sourceX := e.column("SourceX")
	info := BasicInfo{
		RecordingTime:     FormatFloat(float64(maxInt(e.column("DelayRecordingTime"))) / 1000),
		ShotPointDistance: FormatFloat(abs(diffMode(sourceX))),
		PlotDirection:     plotDirection(sourceX),
		MinOffset:         FormatInt(minInt(e.column("offset"))),
		MaxOffset:         FormatInt(maxInt(e.column("offset"))),
		NumChannels:       FormatInt(int64(distinctCount(e.column("TraceNumber")))),
		FirstCDP:          FormatInt(minInt(e.column("CDP"))),
		LastCDP:           FormatInt(maxInt(e.column("CDP"))),
	}
	if is3D {
		info.FirstInline = FormatInt(minInt(e.column("INLINE_3D")))
		info.LastInline = FormatInt(maxInt(e.column("INLINE_3D")))
		info.FirstCrossline = FormatInt(minInt(e.column("CROSSLINE_3D")))
		info.LastCrossline = FormatInt(maxInt(e.column("CROSSLINE_3D")))
	}
	return info
}

func (e *Extractor) geometryInfo(f *segy.File, is3D bool) GeometryInfo {
	info := GeometryInfo{
		TotalTraces: f.TraceCount(),
		TotalShots:  distinctCount(e.column("SourceX")),
		XMin:        FormatInt(minInt(e.column("SourceX"))),
		XMax:        FormatInt(maxInt(e.column("SourceX"))),
		YMin:        FormatInt(minInt(e.column("SourceY"))),
		YMax:        FormatInt(maxInt(e.column("SourceY"))),
	}
	if is3D {
		info.InlineDimensions = distinctCount(e.column("INLINE_3D"))
		info.CrosslineDimensions = distinctCount(e.column("CROSSLINE_3D"))
	}
	return info
}

// acquisitionInfo groups traces by CDP and reports fold statistics, unless
// every CDP is identical, in which case the fold has no meaning and the
// sentinel is reported instead.
func (e *Extractor) acquisitionInfo(is3D bool) AcquisitionInfo {
	cdps := e.column("CDP")
	info := AcquisitionInfo{
		AverageFold: NotApplicable,
		MaximumFold: NotApplicable,
		MinimumFold: NotApplicable,
	}

	if !allEqual(cdps) {
		folds := make(map[int64]int64)
		for _, cdp := range cdps {
			folds[cdp]++
		}
		var minFold, maxFold, total int64
		minFold = int64(len(cdps))
		for _, fold := range folds {
			total += fold
			if fold > maxFold {
				maxFold = fold
			}
			if fold < minFold {
				minFold = fold
			}
		}
		info.AverageFold = FormatFloat(float64(total) / float64(len(folds)))
		info.MaximumFold = FormatInt(maxFold)
		info.MinimumFold = FormatInt(minFold)
	}

	if is3D {
		info.InlineSpacing = nominalSpacing(e.column("INLINE_3D"))
		info.CrosslineSpacing = nominalSpacing(e.column("CROSSLINE_3D"))
	}
	return info
}

// scalingFactor is the mean source/group coordinate scalar, with the
// formatting rule applied to the value itself. Zero is not a valid scaling
// factor; a zero mean defaults to 1.
func (e *Extractor) scalingFactor() float64 {
	values := e.column("SourceGroupScalar")
	if len(values) == 0 {
		return 1
	}
	var sum int64
	for _, v := range values {
		sum += v
	}
	mean := roundStat(float64(sum) / float64(len(values)))
	if mean == 0 {
		return 1
	}
	return mean
}

// nominalSpacing is the median of consecutive differences between the
// sorted distinct line values; with fewer than two distinct values no
// spacing exists.
func nominalSpacing(values []int64) string {
	lines := distinctSorted(values)
	if len(lines) < 2 {
		return NotApplicable
	}
	diffs := make(stats.Float64Data, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		diffs[i-1] = float64(lines[i] - lines[i-1])
	}
	median, err := stats.Median(diffs)
	if err != nil {
		return NotApplicable
	}
	return FormatFloat(median)
}

// diffMode is the statistical mode of successive differences. When several
// difference values are equally frequent the smallest wins; when no value
// repeats at all, the smallest difference is used.
func diffMode(values []int64) float64 {
	if len(values) < 2 {
		return 0
	}
	diffs := make(stats.Float64Data, len(values)-1)
	for i := 1; i < len(values); i++ {
		diffs[i-1] = float64(values[i] - values[i-1])
	}
	modes, err := stats.Mode(diffs)
	if err != nil || len(modes) == 0 {
		min, err := stats.Min(diffs)
		if err != nil {
			return 0
		}
		return min
	}
	min, err := stats.Min(stats.Float64Data(modes))
	if err != nil {
		return modes[0]
	}
	return min
}

// plotDirection is derived from the mean successive difference of source X.
func plotDirection(sourceX []int64) string {
	if len(sourceX) < 2 {
		return "right-to-left"
	}
	diffs := make(stats.Float64Data, len(sourceX)-1)
	for i := 1; i < len(sourceX); i++ {
		diffs[i-1] = float64(sourceX[i] - sourceX[i-1])
	}
	mean, err := stats.Mean(diffs)
	if err == nil && mean > 0 {
		return "left-to-right"
	}
	return "right-to-left"
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func maxInt(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func distinctCount(values []int64) int {
	seen := make(map[int64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func distinctSorted(values []int64) []int64 {
	seen := make(map[int64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	out := make([]int64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func allEqual(values []int64) bool {
	for _, v := range values {
		if v != values[0] {
			return false
		}
	}
	return true
}

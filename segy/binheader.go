// Package segy decodes the SEG-Y binary trace format: textual header,
// binary header, per-trace headers and sample data. It reads through an
// afero filesystem and never writes the format back.
package segy

// BinField describes one field of the 400-byte binary header. Offset is
// zero-based within the header; Size is the byte width (1, 2 or 4), values
// are big-endian signed except the one-byte revision fields.
type BinField struct {
	Name   string
	Offset int
	Size   int
}

// BinFields is the fixed catalogue of standard binary-header fields, in
// alphabetical name order. Statistics extraction walks this list instead of
// reflecting over an external library's field set, so the catalogue order
// is the order fields appear in reports.
var BinFields = []BinField{
	{"AmplitudeRecovery", 52, 2},
	{"AuxTraces", 14, 2},
	{"BinaryGainRecovery", 50, 2},
	{"CorrelatedTraces", 48, 2},
	{"EnsembleFold", 26, 2},
	{"ExtendedHeaders", 304, 2},
	{"Format", 24, 2},
	{"ImpulseSignalPolarity", 56, 2},
	{"Interval", 16, 2},
	{"IntervalOriginal", 18, 2},
	{"JobID", 0, 4},
	{"LineNumber", 4, 4},
	{"MeasurementSystem", 54, 2},
	{"ReelNumber", 8, 4},
	{"SEGYRevision", 300, 1},
	{"SEGYRevisionMinor", 301, 1},
	{"Samples", 20, 2},
	{"SamplesOriginal", 22, 2},
	{"SortingCode", 28, 2},
	{"Sweep", 38, 2},
	{"SweepChannel", 40, 2},
	{"SweepFrequencyEnd", 34, 2},
	{"SweepFrequencyStart", 32, 2},
	{"SweepLength", 36, 2},
	{"SweepTaperEnd", 44, 2},
	{"SweepTaperStart", 42, 2},
	{"Taper", 46, 2},
	{"TraceFlag", 302, 2},
	{"Traces", 12, 2},
	{"VerticalSum", 30, 2},
}

// binField returns the catalogue entry by name.
func binField(name string) (BinField, bool) {
	for _, f := range BinFields {
		if f.Name == name {
			return f, true
		}
	}
	return BinField{}, false
}

package segy_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmeta/segmeta/core"
	"github.com/segmeta/segmeta/segy"
	"github.com/segmeta/segmeta/segy/segytest"
)

func TestOpenReadsStructure(t *testing.T) {
	fs := afero.NewMemMapFs()
	spec := segytest.FileSpec{
		Text: "C 1 CLIENT: ACME SURVEY",
		Bin:  map[string]int64{"Interval": 4000, "LineNumber": 7},
		Traces: []segytest.Trace{
			{Headers: map[string]int64{"CDP": 100}, Samples: []float32{1, 2, 3}},
			{Headers: map[string]int64{"CDP": 101}, Samples: []float32{4, 5, 6}},
		},
	}
	require.NoError(t, segytest.Write(fs, "/line.sgy", spec))

	f, err := segy.Open(fs, "/line.sgy")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 2, f.TraceCount())
	assert.Equal(t, 3, f.SamplesPerTrace())

	interval, err := f.Bin("Interval")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), interval)

	line, err := f.Bin("LineNumber")
	require.NoError(t, err)
	assert.Equal(t, int64(7), line)

	raw, err := f.TraceHeaderRaw(1)
	require.NoError(t, err)
	cdp := segy.DecodeField(raw, segy.TraceFields[5]) // CDP
	assert.Equal(t, int64(101), cdp)
}

func TestOpenTextHeader(t *testing.T) {
	fs := afero.NewMemMapFs()
	spec := segytest.FileSpec{
		Text: "C 1 CLIENT: ACME",
		Traces: []segytest.Trace{
			{Samples: []float32{0}},
		},
	}
	require.NoError(t, segytest.Write(fs, "/line.sgy", spec))

	f, err := segy.Open(fs, "/line.sgy")
	require.NoError(t, err)
	defer f.Close()

	text := f.TextHeader()
	lines := strings.Split(text, "\n")
	assert.Len(t, lines, 40)
	for _, line := range lines {
		assert.Len(t, line, 80)
	}
	assert.True(t, strings.HasPrefix(lines[0], "C 1 CLIENT: ACME"))
}

func TestOpenFailures(t *testing.T) {
	tests := []struct {
		name  string
		bytes func() []byte
	}{
		{
			name: "file too small",
			bytes: func() []byte {
				return make([]byte, 100)
			},
		},
		{
			name: "zero sample count",
			bytes: func() []byte {
				return segytest.Encode(segytest.FileSpec{})
			},
		},
		{
			name: "unsupported format",
			bytes: func() []byte {
				return segytest.Encode(segytest.FileSpec{
					Format: 99,
					Traces: []segytest.Trace{{Samples: []float32{1}}},
				})
			},
		},
		{
			name: "truncated trace data",
			bytes: func() []byte {
				full := segytest.Encode(segytest.FileSpec{
					Traces: []segytest.Trace{{Samples: []float32{1, 2, 3, 4}}},
				})
				return full[:len(full)-3]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/bad.sgy", tt.bytes(), 0o644))

			_, err := segy.Open(fs, "/bad.sgy")
			require.Error(t, err)

			var de *core.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "/bad.sgy", de.File)
		})
	}
}

func TestOpenAccountsForExtendedHeaders(t *testing.T) {
	fs := afero.NewMemMapFs()
	raw := segytest.Encode(segytest.FileSpec{
		Bin:    map[string]int64{"ExtendedHeaders": 1},
		Traces: []segytest.Trace{{Samples: []float32{1, 2}}},
	})
	// splice one extended textual header between binary header and traces
	extended := make([]byte, segy.TextHeaderSize)
	headerEnd := segy.TextHeaderSize + segy.BinHeaderSize
	spliced := append(append(append([]byte{}, raw[:headerEnd]...), extended...), raw[headerEnd:]...)
	require.NoError(t, afero.WriteFile(fs, "/ext.sgy", spliced, 0o644))

	f, err := segy.Open(fs, "/ext.sgy")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 1, f.TraceCount())
	samples, err := f.Samples(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, samples)
}

func TestSamplesOutOfRange(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, segytest.Write(fs, "/line.sgy", segytest.FileSpec{
		Traces: []segytest.Trace{{Samples: []float32{1}}},
	}))

	f, err := segy.Open(fs, "/line.sgy")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Samples(5)
	assert.Error(t, err)
	_, err = f.TraceHeaderRaw(-1)
	assert.Error(t, err)
}

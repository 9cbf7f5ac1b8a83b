// Package segytest synthesizes small SEG-Y byte images for tests.
package segytest

import (
	"encoding/binary"
	"math"

	"github.com/spf13/afero"

	"github.com/segmeta/segmeta/segy"
)

// Trace describes one synthesized trace: header fields by catalogue name
// (unset fields are zero) and the sample series.
type Trace struct {
	Headers map[string]int64
	Samples []float32
}

// FileSpec describes a synthesized file. Format defaults to IEEE float;
// the binary-header Samples and Format fields are derived unless
// overridden through Bin.
type FileSpec struct {
	Text   string
	Bin    map[string]int64
	Format int64
	Traces []Trace
}

// Write encodes the spec and writes it to path on fs.
func Write(fs afero.Fs, path string, spec FileSpec) error {
	return afero.WriteFile(fs, path, Encode(spec), 0o644)
}

// Encode renders the spec as SEG-Y bytes.
func Encode(spec FileSpec) []byte {
	format := spec.Format
	if format == 0 {
		format = segy.FormatIEEEFloat
	}
	samples := 0
	if len(spec.Traces) > 0 {
		samples = len(spec.Traces[0].Samples)
	}

	bin := map[string]int64{
		"Samples":  int64(samples),
		"Format":   format,
		"Interval": 2000,
	}
	for k, v := range spec.Bin {
		bin[k] = v
	}

	out := make([]byte, 0, segy.TextHeaderSize+segy.BinHeaderSize)
	out = append(out, encodeText(spec.Text)...)
	out = append(out, encodeBin(bin)...)
	for _, trace := range spec.Traces {
		out = append(out, encodeTraceHeader(trace.Headers)...)
		out = append(out, encodeSamples(trace.Samples, format)...)
	}
	return out
}

func encodeText(text string) []byte {
	raw := make([]byte, segy.TextHeaderSize)
	for i := range raw {
		raw[i] = 0x40 // EBCDIC space
	}
	for i := 0; i < len(text) && i < len(raw); i++ {
		raw[i] = asciiToEBCDIC(text[i])
	}
	return raw
}

func encodeBin(fields map[string]int64) []byte {
	raw := make([]byte, segy.BinHeaderSize)
	for _, f := range segy.BinFields {
		v, ok := fields[f.Name]
		if !ok {
			continue
		}
		putField(raw, f.Offset, f.Size, v)
	}
	return raw
}

func encodeTraceHeader(fields map[string]int64) []byte {
	raw := make([]byte, segy.TraceHeaderSize)
	for _, f := range segy.TraceFields {
		v, ok := fields[f.Name]
		if !ok {
			continue
		}
		putField(raw, f.Offset, f.Size, v)
	}
	return raw
}

func putField(raw []byte, offset, size int, v int64) {
	switch size {
	case 1:
		raw[offset] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(raw[offset:], uint16(int16(v)))
	default:
		binary.BigEndian.PutUint32(raw[offset:], uint32(int32(v)))
	}
}

func encodeSamples(values []float32, format int64) []byte {
	switch format {
	case segy.FormatIBMFloat:
		raw := make([]byte, 4*len(values))
		for i, v := range values {
			binary.BigEndian.PutUint32(raw[i*4:], float32ToIBM(v))
		}
		return raw
	case segy.FormatInt32:
		raw := make([]byte, 4*len(values))
		for i, v := range values {
			binary.BigEndian.PutUint32(raw[i*4:], uint32(int32(v)))
		}
		return raw
	case segy.FormatInt16:
		raw := make([]byte, 2*len(values))
		for i, v := range values {
			binary.BigEndian.PutUint16(raw[i*2:], uint16(int16(v)))
		}
		return raw
	case segy.FormatInt8:
		raw := make([]byte, len(values))
		for i, v := range values {
			raw[i] = byte(int8(v))
		}
		return raw
	default:
		raw := make([]byte, 4*len(values))
		for i, v := range values {
			binary.BigEndian.PutUint32(raw[i*4:], math.Float32bits(v))
		}
		return raw
	}
}

// float32ToIBM encodes an IBM System/360 hexadecimal float.
func float32ToIBM(v float32) uint32 {
	if v == 0 {
		return 0
	}
	var sign uint32
	f := float64(v)
	if f < 0 {
		sign = 0x80000000
		f = -f
	}
	exponent := 0
	for f >= 1 {
		f /= 16
		exponent++
	}
	for f < 1.0/16 {
		f *= 16
		exponent--
	}
	return sign | uint32(exponent+64)<<24 | uint32(f*float64(1<<24))&0x00ffffff
}

// asciiToEBCDIC maps printable ASCII onto code page 037; anything
// unmapped becomes an EBCDIC space.
func asciiToEBCDIC(b byte) byte {
	switch {
	case b >= 'a' && b <= 'i':
		return 0x81 + b - 'a'
	case b >= 'j' && b <= 'r':
		return 0x91 + b - 'j'
	case b >= 's' && b <= 'z':
		return 0xA2 + b - 's'
	case b >= 'A' && b <= 'I':
		return 0xC1 + b - 'A'
	case b >= 'J' && b <= 'R':
		return 0xD1 + b - 'J'
	case b >= 'S' && b <= 'Z':
		return 0xE2 + b - 'S'
	case b >= '0' && b <= '9':
		return 0xF0 + b - '0'
	}

	switch b {
	case '.':
		return 0x4B
	case ':':
		return 0x7A
	case '-':
		return 0x60
	case '/':
		return 0x61
	}
	return 0x40
}

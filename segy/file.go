package segy

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/segmeta/segmeta/core"
)

const (
	TextHeaderSize  = 3200
	BinHeaderSize   = 400
	TraceHeaderSize = 240
)

// File is an open SEG-Y file. Exactly one handle is held per File and
// Close releases it; all reads are blocking.
type File struct {
	path     string
	f        afero.File
	geometry Geometry

	text   []byte
	binary []byte

	format     int64
	samples    int
	sampleSz   int
	dataStart  int64
	traceSize  int64
	traceCount int
}

// Open opens path in relaxed mode: no trace ordering is required, only a
// structurally sound file. Corrupt or truncated files fail as a decode
// error naming the file.
func Open(fs afero.Fs, path string) (*File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, core.NewDecodeError(path, err)
	}
	file, err := newFile(f, path)
	if err != nil {
		f.Close()
		return nil, core.NewDecodeError(path, err)
	}
	return file, nil
}

func newFile(f afero.File, path string) (*File, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size < TextHeaderSize+BinHeaderSize {
		return nil, fmt.Errorf("file too small for SEG-Y headers (%d bytes)", size)
	}

	text := make([]byte, TextHeaderSize)
	if _, err := io.ReadFull(io.NewSectionReader(f, 0, TextHeaderSize), text); err != nil {
		return nil, err
	}
	bin := make([]byte, BinHeaderSize)
	if _, err := io.ReadFull(io.NewSectionReader(f, TextHeaderSize, BinHeaderSize), bin); err != nil {
		return nil, err
	}

	file := &File{path: path, f: f, text: text, binary: bin}

	samples, _ := file.Bin("Samples")
	if samples <= 0 {
		return nil, fmt.Errorf("invalid sample count %d in binary header", samples)
	}
	file.samples = int(samples)

	file.format, _ = file.Bin("Format")
	file.sampleSz, err = sampleSize(file.format)
	if err != nil {
		return nil, err
	}

	extended, _ := file.Bin("ExtendedHeaders")
	if extended < 0 {
		return nil, fmt.Errorf("invalid extended header count %d", extended)
	}
	file.dataStart = TextHeaderSize + BinHeaderSize + extended*TextHeaderSize

	file.traceSize = TraceHeaderSize + int64(file.samples*file.sampleSz)
	dataSize := size - file.dataStart
	if dataSize < 0 || dataSize%file.traceSize != 0 {
		return nil, fmt.Errorf("trace data size %d is not a multiple of trace size %d", dataSize, file.traceSize)
	}
	file.traceCount = int(dataSize / file.traceSize)

	return file, nil
}

// Close releases the underlying handle. Safe to call once on every path.
func (s *File) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

func (s *File) Path() string { return s.path }

// TraceCount reports the number of traces in the file.
func (s *File) TraceCount() int { return s.traceCount }

// SamplesPerTrace reports the file-wide per-trace sample count.
func (s *File) SamplesPerTrace() int { return s.samples }

// Geometry reports the classification assigned at open time. It is fixed
// for the lifetime of the handle.
func (s *File) Geometry() Geometry { return s.geometry }

// TextHeader returns the textual header as 40 decoded lines.
func (s *File) TextHeader() string {
	return decodeTextHeader(s.text)
}

// Bin reads a binary-header field by catalogue name.
func (s *File) Bin(name string) (int64, error) {
	f, ok := binField(name)
	if !ok {
		return 0, fmt.Errorf("unknown binary header field %q", name)
	}
	return decodeField(s.binary, f.Offset, f.Size), nil
}

// TraceHeaderRaw reads the raw 240-byte header of trace i.
func (s *File) TraceHeaderRaw(i int) ([]byte, error) {
	if i < 0 || i >= s.traceCount {
		return nil, fmt.Errorf("trace index %d out of range [0, %d)", i, s.traceCount)
	}
	raw := make([]byte, TraceHeaderSize)
	if _, err := s.f.ReadAt(raw, s.dataStart+int64(i)*s.traceSize); err != nil {
		return nil, core.NewDecodeError(s.path, err)
	}
	return raw, nil
}

// Samples reads and decodes the sample series of trace i.
func (s *File) Samples(i int) ([]float32, error) {
	if i < 0 || i >= s.traceCount {
		return nil, fmt.Errorf("trace index %d out of range [0, %d)", i, s.traceCount)
	}
	raw := make([]byte, s.samples*s.sampleSz)
	offset := s.dataStart + int64(i)*s.traceSize + TraceHeaderSize
	if _, err := s.f.ReadAt(raw, offset); err != nil {
		return nil, core.NewDecodeError(s.path, err)
	}
	out, err := decodeSamples(raw, s.format, s.samples)
	if err != nil {
		return nil, core.NewDecodeError(s.path, err)
	}
	return out, nil
}

// DecodeField reads one catalogue field out of a raw trace header.
func DecodeField(raw []byte, f TraceField) int64 {
	return decodeField(raw, f.Offset, f.Size)
}

// decodeField reads a big-endian signed value of the given width. One-byte
// fields (the revision pair) are unsigned.
func decodeField(raw []byte, offset, size int) int64 {
	switch size {
	case 1:
		return int64(raw[offset])
	case 2:
		return int64(int16(binary.BigEndian.Uint16(raw[offset:])))
	default:
		return int64(int32(binary.BigEndian.Uint32(raw[offset:])))
	}
}

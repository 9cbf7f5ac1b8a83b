package segy

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// Geometry tags a file as regularly gridded (3D) or irregular (2D). The
// tag is assigned once at open time and drives which derived statistics
// are computed.
type Geometry int

const (
	Irregular Geometry = iota
	Regular
)

func (g Geometry) Is3D() bool { return g == Regular }

func (g Geometry) String() string {
	if g == Regular {
		return "3D"
	}
	return "2D"
}

// ErrNoSorting is the one failure signature the geometry probe recovers
// from: the strict open could not find a consistent trace ordering.
var ErrNoSorting = errors.New("unable to find sorting")

// OpenDetect probes the file geometry: a strict open classifies Regular
// (3D); a strict failure carrying the no-sorting signature falls back to a
// relaxed open and classifies Irregular (2D). Any other failure
// propagates. The strict attempt's handle is closed before the retry.
func OpenDetect(fs afero.Fs, path string) (*File, error) {
	f, err := OpenStrict(fs, path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, ErrNoSorting) {
		return nil, err
	}

	f, err = Open(fs, path)
	if err != nil {
		return nil, err
	}
	f.geometry = Irregular
	return f, nil
}

// OpenStrict opens the file requiring a consistent inline/crossline trace
// ordering. Files without one fail with ErrNoSorting.
func OpenStrict(fs afero.Fs, path string) (*File, error) {
	f, err := Open(fs, path)
	if err != nil {
		return nil, err
	}
	if err := f.inferSorting(); err != nil {
		f.Close()
		return nil, err
	}
	f.geometry = Regular
	return f, nil
}

// inferSorting scans inline/crossline headers and accepts the file when
// the traces are ordered inline-major or crossline-major.
func (s *File) inferSorting() error {
	n := s.traceCount
	ilines := make([]int64, n)
	xlines := make([]int64, n)
	allZero := true
	for i := 0; i < n; i++ {
		raw, err := s.TraceHeaderRaw(i)
		if err != nil {
			return err
		}
		ilines[i] = decodeField(raw, inlineField.Offset, inlineField.Size)
		xlines[i] = decodeField(raw, crosslineField.Offset, crosslineField.Size)
		if ilines[i] != 0 || xlines[i] != 0 {
			allZero = false
		}
	}

	if allZero {
		return fmt.Errorf("%s: inline and crossline headers are empty: %w", s.path, ErrNoSorting)
	}
	if !sortedMajor(ilines, xlines) && !sortedMajor(xlines, ilines) {
		return fmt.Errorf("%s: %w", s.path, ErrNoSorting)
	}
	return nil
}

// sortedMajor reports whether (major, minor) pairs are lexicographically
// non-decreasing with the minor axis strictly increasing inside each major
// group.
func sortedMajor(major, minor []int64) bool {
	for i := 1; i < len(major); i++ {
		if major[i] < major[i-1] {
			return false
		}
		if major[i] == major[i-1] && minor[i] <= minor[i-1] {
			return false
		}
	}
	return true
}

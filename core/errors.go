package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Callers discriminate with
// errors.Is; every wrapped message carries the offending file or name.
var (
	// ErrNotFound covers missing source files, missing registry matches and
	// missing removal targets.
	ErrNotFound = errors.New("not found")

	// ErrInvalid covers unregistered base-name resolution and attempts to
	// derive header caches for unregistered aliases.
	ErrInvalid = errors.New("invalid")

	// ErrIO covers cache read/write failures; the underlying cause is
	// preserved in the wrap chain.
	ErrIO = errors.New("io failure")
)

// DecodeError reports a SEG-Y open/read failure that is not the geometry
// fallback signature. It always names the file.
type DecodeError struct {
	File string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.File, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NewDecodeError wraps err as a decode failure for the given file. A nested
// DecodeError is returned unchanged so the original file name survives.
func NewDecodeError(file string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{File: file, Err: err}
}

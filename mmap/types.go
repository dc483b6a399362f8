package mmap

import (
	"errors"
	"fmt"
)

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
)

var (
	// ErrIO is the kind shared by every open, resize, map, flush and close failure.
	// Use errors.Is(err, mmap.ErrIO) to test for it.
	ErrIO = errors.New("mmap: i/o error")
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the requested or actual file size is invalid.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrOutOfBounds is returned when attempting to access a region outside the mapping.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
	// ErrInvalidOffset is returned when the offset is invalid (e.g. negative).
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)

// Error records a failed operation on a mapped file.
type Error struct {
	Op   string // "open", "stat", "resize", "map", "unmap", "flush", "close"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mmap: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports ErrIO as a match so callers can test the error kind.
func (e *Error) Is(target error) bool { return target == ErrIO }

package mmap

import (
	"io"
	"math"
	"os"
)

// File is a memory-mapped file.
//
// It owns the open descriptor and the mapping. Both are present while the
// file is open and both are released by Close, which leaves the File in the
// closed state (no descriptor, nil Bytes, Size 0). Empty files keep their
// descriptor but have no mapping.
type File struct {
	f        *os.File
	data     []byte
	path     string
	writable bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// Open maps the file at path into memory. The file is mapped read-only
// unless WithWritable, WithCreate or WithSize is given.
func Open(path string, optFns ...Option) (*File, error) {
	m := &File{}
	if err := m.Reopen(path, optFns...); err != nil {
		return nil, err
	}
	return m, nil
}

// Reopen closes the current mapping, if any, and maps path in its place.
// On failure the File is left closed.
func (m *File) Reopen(path string, optFns ...Option) error {
	if err := m.Close(); err != nil {
		return err
	}

	o := options{perm: 0o644}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.size < 0 || o.size > math.MaxInt {
		return &Error{Op: "resize", Path: path, Err: ErrInvalidSize}
	}

	flag := os.O_RDONLY
	if o.writable {
		flag = os.O_RDWR
	}
	if o.create {
		flag |= os.O_CREATE
	}

	f, err := os.OpenFile(path, flag, o.perm)
	if err != nil {
		return &Error{Op: "open", Path: path, Err: err}
	}

	size := o.size
	if size == 0 {
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return &Error{Op: "stat", Path: path, Err: err}
		}
		size = fi.Size()
		if size < 0 || size > math.MaxInt {
			f.Close()
			return &Error{Op: "stat", Path: path, Err: ErrInvalidSize}
		}
	} else if err := f.Truncate(size); err != nil {
		f.Close()
		return &Error{Op: "resize", Path: path, Err: err}
	}

	m.f = f
	m.path = path
	m.writable = o.writable

	if size == 0 {
		return nil
	}

	data, unmapFunc, err := osMap(f, int(size), o.writable)
	if err != nil {
		m.f, m.path, m.writable = nil, "", false
		f.Close()
		return &Error{Op: "map", Path: path, Err: err}
	}
	m.data = data
	m.unmap = unmapFunc

	if o.advice != AccessDefault {
		// Advice is a hint; a kernel that rejects it still serves the mapping.
		_ = osAdvise(data, o.advice)
	}
	return nil
}

// Close unmaps the memory and closes the descriptor. It is idempotent:
// closing a closed File is a no-op. The first error encountered is returned;
// the File is reset to the closed state either way.
func (m *File) Close() error {
	if m == nil || m.f == nil {
		return nil
	}

	var err error
	if m.data != nil && m.unmap != nil {
		if uerr := m.unmap(m.data); uerr != nil {
			err = &Error{Op: "unmap", Path: m.path, Err: uerr}
		}
	}
	if cerr := m.f.Close(); cerr != nil && err == nil {
		err = &Error{Op: "close", Path: m.path, Err: cerr}
	}

	m.f = nil
	m.data = nil
	m.unmap = nil
	m.path = ""
	m.writable = false
	return err
}

// Closed reports whether the File holds no descriptor.
func (m *File) Closed() bool {
	return m.f == nil
}

// Bytes returns the mapped memory.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *File) Bytes() []byte {
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *File) Size() int {
	return len(m.data)
}

// Path returns the path the File was opened with, or "" when closed.
func (m *File) Path() string {
	return m.path
}

// Writable reports whether the mapping accepts writes.
func (m *File) Writable() bool {
	return m.writable
}

// Flush forces writes made through the mapping to durable storage.
// It is a no-op for read-only and empty mappings.
func (m *File) Flush() error {
	if m.f == nil {
		return ErrClosed
	}
	if !m.writable || m.data == nil {
		return nil
	}
	if err := osFlush(m.f, m.data); err != nil {
		return &Error{Op: "flush", Path: m.path, Err: err}
	}
	return nil
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *File) Advise(pattern AccessPattern) error {
	if m.f == nil {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *File) ReadAt(p []byte, off int64) (n int, err error) {
	if m.f == nil {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

var _ io.ReaderAt = (*File)(nil)

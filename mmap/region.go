package mmap

// Region represents a subsection of a memory mapping.
// It does not own the memory; the parent File does.
type Region struct {
	parent *File
	offset int
	size   int
}

// Region creates a new view into the mapping.
func (m *File) Region(offset, size int) (*Region, error) {
	if m.f == nil {
		return nil, ErrClosed
	}
	if offset < 0 || size < 0 || offset > len(m.data) || size > len(m.data)-offset {
		return nil, ErrOutOfBounds
	}
	return &Region{
		parent: m,
		offset: offset,
		size:   size,
	}, nil
}

// Offset returns the region's start within the parent mapping.
func (r *Region) Offset() int { return r.offset }

// Len returns the region's size in bytes.
func (r *Region) Len() int { return r.size }

// Bytes returns the byte slice for this region, or nil once the parent is closed.
func (r *Region) Bytes() []byte {
	data := r.parent.data
	if r.parent.f == nil || r.offset > len(data) || r.size > len(data)-r.offset {
		return nil
	}
	end := r.offset + r.size
	return data[r.offset:end:end]
}

// Advise provides hints to the kernel about how this region will be accessed.
func (r *Region) Advise(pattern AccessPattern) error {
	if r.parent.f == nil {
		return ErrClosed
	}
	data := r.Bytes()
	if len(data) == 0 {
		return nil
	}
	return osAdvise(data, pattern)
}

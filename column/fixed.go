package column

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/scanio/mmap"
)

// Fixed-stride files carry no header and no per-element metadata.
const (
	FixedGlobalOverhead  = 0
	FixedPerItemOverhead = 0
)

// Numeric is the set of element types a Fixed column can hold.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Fixed is a memory-mapped, dense array of T.
//
// Thread safety: all read operations are safe for concurrent access.
type Fixed[T Numeric] struct {
	file   *mmap.File
	values []T
}

// OpenFixed maps path and interprets it as a packed array of T.
// The file is mapped read-only unless mmap options say otherwise.
func OpenFixed[T Numeric](path string, optFns ...mmap.Option) (*Fixed[T], error) {
	f, err := mmap.Open(path, optFns...)
	if err != nil {
		return nil, fmt.Errorf("column: open fixed: %w", err)
	}
	col, err := NewFixed[T](f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return col, nil
}

// NewFixed wraps an open mapping. The column takes ownership of f only in
// the sense that Close closes it. A closed f is rejected with mmap.ErrClosed.
func NewFixed[T Numeric](f *mmap.File) (*Fixed[T], error) {
	if f.Closed() {
		return nil, fmt.Errorf("column: new fixed: %w", mmap.ErrClosed)
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	data := f.Bytes()

	if len(data)%elemSize != 0 {
		return nil, &LayoutError{
			Path:   f.Path(),
			Size:   len(data),
			Reason: fmt.Sprintf("length is not a multiple of the %d-byte element size", elemSize),
		}
	}

	col := &Fixed[T]{file: f}
	if len(data) == 0 {
		return col, nil
	}

	ptr := unsafe.Pointer(unsafe.SliceData(data))
	if uintptr(ptr)%unsafe.Alignof(zero) != 0 {
		return nil, &LayoutError{
			Path:   f.Path(),
			Size:   len(data),
			Reason: fmt.Sprintf("mapping is not %d-byte aligned", unsafe.Alignof(zero)),
		}
	}

	// Zero-copy access
	col.values = unsafe.Slice((*T)(ptr), len(data)/elemSize)
	return col, nil
}

// Len returns the number of elements.
func (c *Fixed[T]) Len() int {
	return len(c.values)
}

// At returns element i.
func (c *Fixed[T]) At(i int) (T, error) {
	if i < 0 || i >= len(c.values) {
		var zero T
		return zero, outOfBounds(i, len(c.values))
	}
	return c.values[i], nil
}

// Unchecked returns element i for call sites that already proved
// 0 <= i < Len(). An invalid index panics.
func (c *Fixed[T]) Unchecked(i int) T {
	return c.values[i]
}

// Values returns all elements as one slice aliasing the mapping.
func (c *Fixed[T]) Values() []T {
	return c.values
}

// All iterates over (index, value) pairs.
func (c *Fixed[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range c.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Select returns the indices of the elements for which pred holds.
func (c *Fixed[T]) Select(pred func(T) bool) *roaring64.Bitmap {
	bm := roaring64.New()
	for i, v := range c.values {
		if pred(v) {
			bm.Add(uint64(i))
		}
	}
	return bm
}

// Gather returns the values at the indices in bm, in ascending index order.
// Indices beyond Len() are reported as ErrOutOfBounds.
func (c *Fixed[T]) Gather(bm *roaring64.Bitmap) ([]T, error) {
	out := make([]T, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		idx := it.Next()
		if idx >= uint64(len(c.values)) {
			return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, idx, len(c.values))
		}
		out = append(out, c.values[idx])
	}
	return out, nil
}

// File returns the underlying mapping.
func (c *Fixed[T]) File() *mmap.File {
	return c.file
}

// Close releases the mapping. Values obtained from the column become invalid.
func (c *Fixed[T]) Close() error {
	c.values = nil
	return c.file.Close()
}

package column

import (
	"encoding/binary"
	"fmt"
	"iter"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/scanio/internal/conv"
	"github.com/hupe1980/scanio/mmap"
)

// Producer contract for variable-length columns.
const (
	GlobalOverhead  = 8  // u64 count
	PerItemOverhead = 16 // u64 size + u64 offset
)

// MinSize returns the number of bytes a Strings file with count entries
// occupies before its payload.
func MinSize(count int) int {
	return GlobalOverhead + count*PerItemOverhead
}

// Slot locates one entry's payload. Offset is absolute from the file start.
type Slot struct {
	Size   uint64
	Offset uint64
}

// Strings is a memory-mapped, variable-length column.
//
// Thread safety: all read operations are safe for concurrent access.
// Iterators are not.
type Strings struct {
	file  *mmap.File
	data  []byte
	count int
}

// OpenStrings maps path and validates the header and slot table.
func OpenStrings(path string, optFns ...mmap.Option) (*Strings, error) {
	f, err := mmap.Open(path, optFns...)
	if err != nil {
		return nil, fmt.Errorf("column: open strings: %w", err)
	}
	col, err := NewStrings(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return col, nil
}

// NewStrings wraps an open mapping. Only the header and slot table are
// checked here; payload spans are checked per access or by Validate.
// A closed f is rejected with mmap.ErrClosed.
func NewStrings(f *mmap.File) (*Strings, error) {
	if f.Closed() {
		return nil, fmt.Errorf("column: new strings: %w", mmap.ErrClosed)
	}

	data := f.Bytes()
	if len(data) < GlobalOverhead {
		return nil, &LayoutError{
			Path:   f.Path(),
			Size:   len(data),
			Reason: fmt.Sprintf("missing %d-byte header", GlobalOverhead),
		}
	}

	count := binary.NativeEndian.Uint64(data[0:8])
	if !conv.FitsTable(GlobalOverhead, PerItemOverhead, count, len(data)) {
		return nil, &LayoutError{
			Path:   f.Path(),
			Size:   len(data),
			Reason: fmt.Sprintf("slot table for %d entries exceeds file", count),
		}
	}

	n, err := conv.Uint64ToInt(count)
	if err != nil {
		return nil, &LayoutError{Path: f.Path(), Size: len(data), Reason: err.Error()}
	}

	return &Strings{file: f, data: data, count: n}, nil
}

// Len returns the number of entries.
func (c *Strings) Len() int {
	return c.count
}

// Slot returns the raw slot for entry i.
func (c *Strings) Slot(i int) (Slot, error) {
	if i < 0 || i >= c.count {
		return Slot{}, outOfBounds(i, c.count)
	}
	return c.slot(i), nil
}

func (c *Strings) slot(i int) Slot {
	base := GlobalOverhead + i*PerItemOverhead
	return Slot{
		Size:   binary.NativeEndian.Uint64(c.data[base : base+8]),
		Offset: binary.NativeEndian.Uint64(c.data[base+8 : base+16]),
	}
}

// At returns the payload of entry i. The slice aliases the mapping and its
// capacity is clipped to its length.
func (c *Strings) At(i int) ([]byte, error) {
	if i < 0 || i >= c.count {
		return nil, outOfBounds(i, c.count)
	}
	return c.payload(i)
}

func (c *Strings) payload(i int) ([]byte, error) {
	s := c.slot(i)
	start, end, ok := conv.Span(s.Offset, s.Size, len(c.data))
	if !ok {
		return nil, &LayoutError{
			Path:   c.file.Path(),
			Size:   len(c.data),
			Reason: fmt.Sprintf("entry %d spans [%d, +%d) past end of file", i, s.Offset, s.Size),
		}
	}
	return c.data[start:end:end], nil
}

// String returns entry i as a string sharing memory with the mapping.
func (c *Strings) String(i int) (string, error) {
	b, err := c.At(i)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

// Unchecked returns entry i without bounds or span checks. Use it only on
// columns that passed Validate and with 0 <= i < Len().
func (c *Strings) Unchecked(i int) []byte {
	s := c.slot(i)
	start := int(s.Offset)
	end := start + int(s.Size)
	return c.data[start:end:end]
}

// Validate checks every slot's span against the mapped length.
func (c *Strings) Validate() error {
	for i := range c.count {
		if _, err := c.payload(i); err != nil {
			return err
		}
	}
	return nil
}

// Iter returns a forward-only iterator positioned before the first entry.
func (c *Strings) Iter() *StringIter {
	return &StringIter{col: c, idx: -1}
}

// All iterates over (index, payload) pairs, stopping at the first entry
// whose span is invalid.
func (c *Strings) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := range c.count {
			b, err := c.payload(i)
			if err != nil {
				return
			}
			if !yield(i, b) {
				return
			}
		}
	}
}

// Select returns the indices of the entries for which pred holds.
// An invalid span aborts the selection with its error.
func (c *Strings) Select(pred func([]byte) bool) (*roaring64.Bitmap, error) {
	bm := roaring64.New()
	for i := range c.count {
		b, err := c.payload(i)
		if err != nil {
			return nil, err
		}
		if pred(b) {
			bm.Add(uint64(i))
		}
	}
	return bm, nil
}

// File returns the underlying mapping.
func (c *Strings) File() *mmap.File {
	return c.file
}

// Close releases the mapping. Slices obtained from the column become invalid.
func (c *Strings) Close() error {
	c.data = nil
	c.count = 0
	return c.file.Close()
}

// StringIter walks a Strings column in order.
type StringIter struct {
	col *Strings
	idx int
	cur []byte
	err error
}

// Next advances to the next entry. It returns false at the end or on the
// first invalid span; check Err afterwards.
func (it *StringIter) Next() bool {
	if it.err != nil || it.idx+1 >= it.col.count {
		it.cur = nil
		return false
	}
	it.idx++
	it.cur, it.err = it.col.payload(it.idx)
	return it.err == nil
}

// Index returns the current entry index, or -1 before the first Next.
func (it *StringIter) Index() int {
	return it.idx
}

// Bytes returns the current entry's payload.
func (it *StringIter) Bytes() []byte {
	return it.cur
}

// Err returns the error that stopped iteration, if any.
func (it *StringIter) Err() error {
	return it.err
}

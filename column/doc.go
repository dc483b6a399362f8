// Package column exposes pre-built binary column files as zero-copy views.
//
// Two layouts are supported, both read straight from a memory mapping with
// no deserialization. Fixed[T] is a packed array of one fixed-size numeric
// type with no header; the file length must be a multiple of the element
// size. Strings is a variable-length column laid out as
//
//	offset 0:            u64 count
//	offset 8:            count × { u64 size, u64 offset }
//	offset 8+16*count:   payload bytes
//
// All integers are in native byte order and slot offsets are absolute from
// the start of the file. Producers size a Strings file with MinSize before
// appending payload bytes.
//
// Values returned by At, String, Values and the iterators alias the mapping:
// they must not be modified and must not be used after Close.
package column

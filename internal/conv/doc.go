// Package conv provides checked integer conversions for on-disk values.
//
// Counts, sizes and offsets read from a mapped file are untrusted: a
// corrupted header can hold any 64-bit value. These helpers turn such values
// into in-memory offsets only when they are representable and stay inside
// a known limit.
//
// For conversions that are provably safe by domain constraints (e.g. loop
// indices), use direct type casts instead.
package conv

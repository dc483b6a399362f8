// Package mmap provides memory-mapped file access for zero-copy I/O.
//
// # Overview
//
// A File owns one open descriptor and one mapping of the whole file. Both
// are acquired by Open and released together by Close; a closed File holds
// neither and reports Size 0. Close is idempotent.
//
// # Usage
//
//	m, err := mmap.Open("lineitem.tbl", mmap.WithAdvice(mmap.AccessSequential))
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-copy file contents
//
// Writable mappings can be created at a fixed size, filled in place and
// flushed to durable storage:
//
//	m, err := mmap.Open("col.bin", mmap.WithCreate(0o644), mmap.WithSize(n))
//	copy(m.Bytes(), payload)
//	err = m.Flush()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), msync(2), madvise(2)
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// # Thread Safety
//
// Read-only mappings are safe for concurrent readers. Writers sharing one
// writable mapping must touch disjoint byte ranges. Open, Reopen and Close
// are not synchronized: callers must ensure no goroutine uses Bytes() after
// Close returns.
package mmap

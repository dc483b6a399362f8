// Package simd provides the lane primitives used by the byte scanners.
//
// # Lanes
//
// A lane is a fixed 32-byte window. EqualMask compares every byte of a lane
// against a single needle and returns a 32-bit match mask where bit i is set
// iff lane[i] equals the needle. FirstSet, NthSet and Count interpret that
// mask; the scanners in package scan are built entirely on these four calls.
//
// # Kernels
//
//   - SWAR: four 64-bit word compares per lane (default on 64-bit platforms)
//   - Generic: byte-at-a-time reference kernel
//
// Both kernels produce identical masks; the generic kernel exists so the
// SWAR path can be checked against it on randomized inputs.
// Set SCANIO_SIMD=generic or SCANIO_SIMD=swar to force a kernel.
package simd

package simd

import (
	"encoding/binary"
	"math/bits"
)

// LaneSize is the number of bytes compared per EqualMask call.
const LaneSize = 32

const (
	lo7  = 0x7f7f7f7f7f7f7f7f
	ones = 0x0101010101010101
	// gather moves the high bit of every byte into the top byte, byte k
	// landing on bit 56+k.
	gather = 0x0102040810204080
)

// kernelEqualMask is replaced by setISA during init.
var kernelEqualMask = equalMaskGeneric

// EqualMask returns a mask where bit i is set iff lane[i] == c.
// lane must hold at least LaneSize bytes; only the first LaneSize are read.
func EqualMask(lane []byte, c byte) uint32 {
	return kernelEqualMask(lane[:LaneSize:LaneSize], c)
}

// EqualMask2 returns a mask where bit i is set iff lane[i] is a or b.
func EqualMask2(lane []byte, a, b byte) uint32 {
	lane = lane[:LaneSize:LaneSize]
	return kernelEqualMask(lane, a) | kernelEqualMask(lane, b)
}

// FirstSet returns the index of the lowest set bit, or 32 if mask is zero.
func FirstSet(mask uint32) int {
	return bits.TrailingZeros32(mask)
}

// NthSet returns the index of the n-th (1-based) set bit of mask by clearing
// the lowest bit n-1 times. It returns 32 if mask has fewer than n bits.
func NthSet(mask uint32, n int) int {
	for ; n > 1 && mask != 0; n-- {
		mask &= mask - 1
	}
	return bits.TrailingZeros32(mask)
}

// Count returns the number of set bits in mask.
func Count(mask uint32) int {
	return bits.OnesCount32(mask)
}

func equalMaskGeneric(lane []byte, c byte) uint32 {
	var mask uint32
	for i := 0; i < LaneSize; i++ {
		if lane[i] == c {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

func equalMaskSWAR(lane []byte, c byte) uint32 {
	pattern := ones * uint64(c)
	m0 := wordMask(binary.LittleEndian.Uint64(lane[0:8]) ^ pattern)
	m1 := wordMask(binary.LittleEndian.Uint64(lane[8:16]) ^ pattern)
	m2 := wordMask(binary.LittleEndian.Uint64(lane[16:24]) ^ pattern)
	m3 := wordMask(binary.LittleEndian.Uint64(lane[24:32]) ^ pattern)
	return m0 | m1<<8 | m2<<16 | m3<<24
}

// wordMask returns an 8-bit mask of the zero bytes in x, bit k for byte k.
// The zero test is exact: no carries cross byte boundaries.
func wordMask(x uint64) uint32 {
	t := (x & lo7) + lo7
	t = ^(t | x | lo7)
	return uint32(((t >> 7) * gather) >> 56)
}

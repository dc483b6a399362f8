package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents the kernel family used for lane comparisons.
type ISA uint8

const (
	// Generic represents the byte-at-a-time reference kernel.
	Generic ISA = iota
	// SWAR represents the SIMD-within-a-register kernel (64-bit words).
	SWAR
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SWAR:
		return "swar"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "swar":
		return SWAR, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
var (
	// activeISA is the selected lane kernel.
	activeISA ISA

	// hasOverride is true if SCANIO_SIMD was set to a known value.
	hasOverride bool
)

func init() {
	initCapabilities()
}

func initCapabilities() {
	if override := os.Getenv("SCANIO_SIMD"); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			setISA(isa)
			return
		}
	}

	setISA(selectBestISA())
}

// selectBestISA chooses the lane kernel for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "386", "arm", "mips", "mipsle":
		// 64-bit word loads are split in two on 32-bit targets; the
		// byte loop is on par there.
		return Generic
	default:
		return SWAR
	}
}

func setISA(isa ISA) {
	activeISA = isa
	switch isa {
	case SWAR:
		kernelEqualMask = equalMaskSWAR
	default:
		kernelEqualMask = equalMaskGeneric
	}
}

// ActiveISA returns the currently active kernel family.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if SCANIO_SIMD was set.
func IsOverridden() bool {
	return hasOverride
}

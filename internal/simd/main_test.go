package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints kernel diagnostic information.
// This helps CI identify which lane kernel is actually being used.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("SCANIO_SIMD=%q\n", os.Getenv("SCANIO_SIMD"))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("===============================\n\n")

	os.Exit(m.Run())
}

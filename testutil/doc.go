// Package testutil provides testing utilities for scanio.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG for generating delimited text and writers
// for the binary column layouts.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Bytes(1024, "ab|\n")          // random bytes over an alphabet
//	csv := rng.Records(100, 8, ',', '\n')    // 100 rows of 8 numeric fields
//
// # Column Files
//
//	path := testutil.WriteFixed(t, []int64{1, 2, 3})
//	path := testutil.WriteStrings(t, []string{"a", "bc"})
package testutil

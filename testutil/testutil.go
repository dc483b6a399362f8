package testutil

import (
	"math/rand"
	"strconv"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Pick returns a random byte of alphabet.
func (r *RNG) Pick(alphabet string) byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return alphabet[r.rand.Intn(len(alphabet))]
}

// Bytes returns n bytes drawn uniformly from alphabet.
// Locks only once per call (preferred over calling Pick in a loop).
func (r *RNG) Bytes(n int, alphabet string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return buf
}

// Records generates rows of cols unsigned decimal fields, every row closed
// by term.
func (r *RNG) Records(rows, cols int, delim, term byte) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, 0, rows*cols*6)
	for range rows {
		for j := range cols {
			if j > 0 {
				buf = append(buf, delim)
			}
			buf = strconv.AppendUint(buf, uint64(r.rand.Intn(100000)), 10)
		}
		buf = append(buf, term)
	}
	return buf
}

// Strings returns n random strings of length [0, maxLen] over alphabet.
func (r *RNG) Strings(n, maxLen int, alphabet string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, n)
	b := make([]byte, maxLen)
	for i := range out {
		l := r.rand.Intn(maxLen + 1)
		for j := range l {
			b[j] = alphabet[r.rand.Intn(len(alphabet))]
		}
		out[i] = string(b[:l])
	}
	return out
}

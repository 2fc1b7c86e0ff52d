package intvec

import "errors"

const (
	// ChunkSize is the fixed leaf width of a Chunked vector.
	ChunkSize = 1 << chunkBits

	chunkBits = 14
	chunkMask = ChunkSize - 1

	// DefaultGrowthRate is the geometric growth factor of a Contiguous vector.
	DefaultGrowthRate = 1.5
)

var (
	ErrGrowthRate      = errors.New("intvec: growth rate must be greater than 1.0")
	ErrInitialCapacity = errors.New("intvec: initial capacity must be at least 1")
)

// Vector is an unbounded indexable store of int32 with a default value for
// indices never written. See the package doc for the full contract.
type Vector interface {
	// Get returns the value at i. Panics if i is negative or at/beyond Size.
	Get(i int32) int32
	// SafeGet returns the value at i, or the default when i is at/beyond
	// Size. Panics if i is negative.
	SafeGet(i int32) int32
	// Set writes v at i. Panics if i is negative or at/beyond Size.
	Set(i, v int32)
	// SafeSet writes v at i, growing the store first if needed so that
	// i < Size afterwards. Reports whether any growth happened.
	SafeSet(i, v int32) bool
	// Size is one past the highest index ever written through SafeSet.
	Size() int32
}

func checkIndex(i int32) {
	if i < 0 {
		panic("intvec: negative index")
	}
}

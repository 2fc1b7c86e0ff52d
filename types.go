package actrie

import (
	"errors"
	"math"
)

const (
	// reserved marks "absent" in every node field. It is the minimum int32
	// so that it can never collide with a node index, a sibling offset or a
	// stored value.
	reserved = math.MinInt32

	// root is the automaton's entry node. Slot 0 is never handed out by the
	// free-slot search, which also lets 0 act as the cache's "no slot"
	// sentinel.
	root int32 = 0

	// defaultCacheCap bounds the free-slot cache.
	defaultCacheCap = 128

	// defaultMissTolerance evicts a cached slot after this many failed
	// offers. Tiny-index holes that no code unit can consume would
	// otherwise be scanned on every single-child search forever.
	defaultMissTolerance = 10
)

var (
	ErrEmptyKey             = errors.New("actrie: key must not be empty")
	ErrAlreadyBuilt         = errors.New("actrie: automaton already built")
	ErrNotBuilt             = errors.New("actrie: automaton not built")
	ErrKeyFoldChangesLength = errors.New("actrie: case folding changes key length")
)

// Options selects the matching behavior fixed at construction.
type Options struct {
	// CaseInsensitive folds keys and input per rune with unicode.ToLower
	// before comparison.
	CaseInsensitive bool
	// WholeWordsOnly keeps a match only when the rune before its start and
	// the rune at its end are whitespace or outside the input.
	WholeWordsOnly bool
}

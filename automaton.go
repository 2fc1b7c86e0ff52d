package actrie

import (
	"strings"
	"unicode"
)

// automaton is the trie and matching engine shared by the two façades. It
// owns its node store and free-slot cache exclusively.
type automaton struct {
	st   *nodeStore
	free *freeSlots

	fold  bool
	words bool

	built     bool
	nodeCount int32

	// Free-slot scan cursors. Single-child placements stay dense near the
	// low end; multi-child placements need wider runs of free space and
	// scan from their own cursor.
	singleCursor int32
	multiCursor  int32

	// Scratch child-offset lists, retained across insertions. A and B hold
	// the two colliding parents' offsets, C is swapped in for the
	// grandchild re-parenting walk.
	offsetsA []int32
	offsetsB []int32
	offsetsC []int32
}

func newAutomaton(o Options) *automaton {
	a := &automaton{
		st:        newNodeStore(),
		free:      newFreeSlots(defaultCacheCap, defaultMissTolerance),
		fold:      o.CaseInsensitive,
		words:     o.WholeWordsOnly,
		nodeCount: 1,
	}
	// The root: base 1, parent itself (always live), everything else absent.
	a.st.writeAll(root, 1, 0, reserved, reserved, reserved)
	return a
}

// normalize maps one input rune to its code unit in the automaton's
// alphabet.
func (a *automaton) normalize(r rune) int32 {
	if a.fold {
		r = unicode.ToLower(r)
	}
	return int32(r)
}

// foldKey returns the key as the automaton stores it.
func (a *automaton) foldKey(key string) string {
	if !a.fold {
		return key
	}
	return strings.Map(unicode.ToLower, key)
}

// lookup walks the trie for key and returns the node its path ends at.
// Valid at any build stage: before Build a childless node has a reserved
// base, afterwards a zero base whose probes miss on the parent check.
func (a *automaton) lookup(key string) (int32, bool) {
	cur := root
	for _, r := range key {
		u := a.normalize(r)
		b := a.st.base.Get(cur)
		if b == reserved {
			return 0, false
		}
		c := b + u
		if c < 1 || a.st.parent.SafeGet(c) != cur {
			return 0, false
		}
		cur = c
	}
	return cur, true
}

// valueAt returns the value stored for key, if key was added as a whole key
// (not merely a prefix of one).
func (a *automaton) valueAt(key string) (int32, bool) {
	n, ok := a.lookup(key)
	if !ok {
		return 0, false
	}
	v := a.st.value.Get(n)
	if v == reserved {
		return 0, false
	}
	return v, true
}

func (a *automaton) contains(key string) bool {
	_, ok := a.valueAt(key)
	return ok
}

package intvec

/*

# Growable int32 vectors for the actrie node store

This package provides the two backing stores used by the actrie double-array
automaton: a chunked layout for the build phase and a contiguous layout for
the frozen, read-heavy phase.

It follows the same "functional primitives" style as the rest of forestrie:

- small, composable operations
- explicit index arithmetic
- a burden of knowledge on the caller for hot paths

## The Vector contract

A Vector is an unbounded indexable store of int32 with a fixed default value
for indices that have never been written:

- Get/Set are the hot-path accessors. They never grow the store or fall back
  to the default; reading or writing at or beyond Size is a programmer error
  and panics.
- SafeGet returns the stored value when i < Size and the default otherwise.
- SafeSet grows the store so that i < Size afterwards, and reports whether
  any growth happened. The report lets a caller holding several parallel
  vectors grow them in lockstep without re-checking sizes.
- Size is one past the highest index ever written through SafeSet.

Negative indices are rejected with a panic on every accessor.

## Chunked

A two-level layout: a small top slice of pointers to fixed-size leaf chunks
of ChunkSize (2^14) entries. An index splits as

	top = i >> chunkBits
	low = i & (ChunkSize - 1)

Growth allocates only the leaves needed to cover the written index, so the
worst-case slack is one leaf. The top slice doubles when it runs out. Newly
allocated leaves are filled with the default value.

Chunked is the build-phase store: the automaton's free-slot scans touch
indices far apart, and geometric growth of one flat array would hold large
dead tails across the whole build.

## Contiguous

A single flat slice with geometric growth (rate strictly greater than 1.0,
default 1.5). This is the frozen-phase store: one bounds check and one cache
line per access, no top-level indirection.

Compact copies a Chunked store into a Contiguous one sized exactly to the
current Size, which is how the automaton freezes its node fields after
construction.

*/

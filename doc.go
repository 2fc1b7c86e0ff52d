package actrie

/*

# Low-memory Aho–Corasick matching over a double-array trie

This package finds every occurrence of any key from a prebuilt dictionary in
an input string, reporting each match's start offset, end offset (exclusive)
and an associated value. The distinguishing property is memory: each node of
the automaton occupies five int32 fields, and peak construction memory stays
roughly 20% above the steady state (the freeze step holds one chunked and one
contiguous copy of a field at a time).

It follows the forestrie primitives style:

- small, composable functions
- explicit index arithmetic over flat int32 stores
- a burden of knowledge on the caller for hot paths

## Node layout

Nodes live in a single index space (the "double-array" form of a trie): the
child of parent p for code unit u sits at index base[p] + u. Index 0 is the
root. Every node has five fields, stored in five parallel intvec vectors:

	field   | during insertion              | after Build
	--------+-------------------------------+--------------------------------
	base    | child offset base             | unchanged
	parent  | parent index (reserved: free) | unchanged
	value   | keyed value, or reserved      | unchanged
	aux1    | next-sibling offset (circular)| failure link (absolute index)
	aux2    | first-child offset            | prefix link, or reserved

Between the two phases Build repurposes aux1 a third time, as a
next-to-process pointer that emulates the BFS queue in place. The three
lives of aux1 are disjoint in time: sibling offset until a node is enqueued,
queue pointer until it is processed, failure link afterwards.

The single sentinel for "absent" in every field is reserved = math.MinInt32.
A slot i is occupied iff parent[i] != reserved; the root is the sole
exception, carrying parent[0] = 0 (itself) so it always reads as live.

## Insertion and relocation

Children of one parent share a base and form a circular singly linked list
by offset through aux1. Inserting a child whose slot is taken by another
parent's child forces a relocation: the parent with the smaller child set
moves (ties move the encroaching parent), its children are copied to a fresh
base found by linear scan, and the vacated slots are recycled through a
small miss-counted FIFO cache so the store stays dense.

Two scan cursors serve the free-slot search: single-child placements consume
cache holes near the low end, multi-child placements need wider runs and
scan from their own cursor so the dense low region does not slow them down.

## Matching

After Build the store is frozen into contiguous vectors and immutable.
Matching walks base/parent arithmetic with failure links on mismatch, and at
each position emits the deepest match first, then every shorter suffix key
via the prefix-link chain, before the next code unit is consumed. Results
are therefore ordered by end offset ascending, then by length descending.

The code unit is a rune; keys and input are folded per rune with
unicode.ToLower when the automaton is case-insensitive. Match offsets are
byte offsets into the input. When an *input* rune's lowered form has a
different encoded width than the original (a handful of code points, e.g.
U+212A KELVIN SIGN), start offsets derived from stored key lengths can skew;
case-insensitive StringSet keys with that property are rejected at Add.

## Concurrency

Construction is single-threaded; callers serialize Add and Build. After
Build the automaton is immutable and any number of matchers may run
concurrently, provided each matcher is stepped from one goroutine.

The public surface is the two façades: StringSet, where a key is its own
value, and Dictionary, where keys map to arbitrary values of one type.

*/

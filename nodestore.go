package actrie

import "github.com/forestrie/go-actrie/intvec"

// nodeStore holds the five parallel node-field vectors. All five always have
// the same size; writeAll is the only multi-field entry point and keeps them
// in lockstep.
type nodeStore struct {
	base   intvec.Vector
	parent intvec.Vector
	value  intvec.Vector
	aux1   intvec.Vector
	aux2   intvec.Vector

	frozen bool
}

func newNodeStore() *nodeStore {
	return &nodeStore{
		base:   intvec.NewChunked(reserved),
		parent: intvec.NewChunked(reserved),
		value:  intvec.NewChunked(reserved),
		aux1:   intvec.NewChunked(reserved),
		aux2:   intvec.NewChunked(reserved),
	}
}

// writeAll writes all five fields of node i. The base vector is probed first
// with SafeSet; only when that grows do the other four need the safe path,
// so the common non-growing write costs one SafeSet and four plain Sets.
func (s *nodeStore) writeAll(i, base, parent, value, aux1, aux2 int32) {
	if s.base.SafeSet(i, base) {
		s.parent.SafeSet(i, parent)
		s.value.SafeSet(i, value)
		s.aux1.SafeSet(i, aux1)
		s.aux2.SafeSet(i, aux2)
		return
	}
	s.parent.Set(i, parent)
	s.value.Set(i, value)
	s.aux1.Set(i, aux1)
	s.aux2.Set(i, aux2)
}

// size is one past the highest node index ever written.
func (s *nodeStore) size() int32 { return s.base.Size() }

// occupied reports whether slot i holds a live node. The root is live by
// convention (parent[0] = 0).
func (s *nodeStore) occupied(i int32) bool {
	return s.parent.SafeGet(i) != reserved
}

// freeze copies each field into a contiguous vector sized exactly to the
// store's final size (one past the highest index written, free slots
// included) and drops the chunked originals. Called exactly once, at
// the start of Build; the link-construction writes that follow stay within
// the frozen size, and the store is read-only once Build returns.
func (s *nodeStore) freeze() {
	s.base = s.base.(*intvec.Chunked).Compact()
	s.parent = s.parent.(*intvec.Chunked).Compact()
	s.value = s.value.(*intvec.Chunked).Compact()
	s.aux1 = s.aux1.(*intvec.Chunked).Compact()
	s.aux2 = s.aux2.(*intvec.Chunked).Compact()
	s.frozen = true
}

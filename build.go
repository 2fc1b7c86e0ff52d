package actrie

// build freezes the node store and constructs failure and prefix links. The
// automaton is immutable afterwards.
func (a *automaton) build() error {
	if a.built {
		return ErrAlreadyBuilt
	}
	a.st.freeze()
	if a.nodeCount > 1 {
		a.linkAll()
	}
	a.built = true
	return nil
}

// linkAll computes every node's failure link (aux1) and prefix link (aux2)
// in BFS order, emulating the queue in place: a node's aux1 holds the next
// node to process from the moment it is enqueued until it is processed, at
// which point it is overwritten with the final failure link. A node's aux2
// (first-child offset) stays live until the node itself is processed, which
// is exactly when its children are enqueued.
//
// BFS order guarantees that a node's parent, and every node on its failure
// chain, is processed strictly before it.
func (a *automaton) linkAll() {
	st := a.st

	// Seed the queue with the root's children. Their sibling offsets must
	// be read out before any aux1 is overwritten with a queue pointer.
	a.offsetsA = a.childOffsets(root, a.offsetsA)
	rb := st.base.Get(root)
	var head, tail int32 = reserved, reserved
	for _, o := range a.offsetsA {
		c := rb + o
		if st.base.Get(c) == reserved {
			// A leaf's base still participates in matching arithmetic;
			// zero keeps base[n]+u a real (merely childless) probe.
			st.base.Set(c, 0)
		}
		if tail == reserved {
			head = c
		} else {
			st.aux1.Set(tail, c)
		}
		tail = c
	}
	st.aux1.Set(tail, reserved)

	// The root's first-child offset has served its purpose. Nodes whose
	// failure link is the root read aux2[root] as their prefix link, so it
	// must now read as absent.
	st.aux2.Set(root, reserved)

	for n := head; n != reserved; {
		// Enqueue n's children before touching n's links; their sibling
		// offsets (aux1) and n's first-child offset (aux2) are still live.
		a.offsetsA = a.childOffsets(n, a.offsetsA)
		nb := st.base.Get(n)
		for _, o := range a.offsetsA {
			c := nb + o
			if st.base.Get(c) == reserved {
				st.base.Set(c, 0)
			}
			st.aux1.Set(tail, c)
			tail = c
			st.aux1.Set(tail, reserved)
		}

		// If n was the tail, the appends above just relinked aux1[n] to
		// its first child; the queue successor must be read after them.
		next := st.aux1.Get(n)

		f := a.failureOf(n)
		var pf int32
		if st.value.Get(f) != reserved {
			pf = f
		} else {
			// f is strictly closer to the root and already carries its
			// final prefix link.
			pf = st.aux2.Get(f)
		}

		st.aux1.Set(n, f)
		st.aux2.Set(n, pf)
		n = next
	}
}

// failureOf returns the deepest node whose path is a proper suffix of n's
// path, walking the parent's (already final) failure chain.
func (a *automaton) failureOf(n int32) int32 {
	st := a.st
	p := st.parent.Get(n)
	if p == root {
		return root
	}
	u := n - st.base.Get(p)
	g := st.aux1.Get(p)
	for {
		t := st.base.Get(g) + u
		if t >= 0 && st.parent.SafeGet(t) == g {
			return t
		}
		if g == root {
			return root
		}
		g = st.aux1.Get(g)
	}
}

package actrie

// addEntry inserts key with an int32 payload, creating nodes as needed.
// A duplicate key overwrites the earlier payload; the write is the last
// action, so a precondition failure leaves the automaton unchanged.
func (a *automaton) addEntry(key string, value int32) error {
	if key == "" {
		return ErrEmptyKey
	}
	if a.built {
		return ErrAlreadyBuilt
	}
	cur := root
	for _, r := range key {
		cur = a.descend(cur, a.normalize(r))
	}
	a.st.value.Set(cur, value)
	return nil
}

// descend moves from cur to its child for code unit u, creating the child
// (and resolving any slot collision) if it does not exist yet.
func (a *automaton) descend(cur, u int32) int32 {
	b := a.st.base.Get(cur)
	if b == reserved {
		// First child: pick a slot and derive the base from it.
		slot := a.findSingle(u)
		a.st.base.Set(cur, slot-u)
		a.addChild(slot, cur, u)
		return slot
	}
	c := b + u
	if c >= 1 {
		switch p := a.st.parent.SafeGet(c); p {
		case cur:
			return c
		case reserved:
			a.addChild(c, cur, u)
			return c
		}
	}
	// The slot is owned by another parent, or the base arithmetic fell
	// below the index space. Either way somebody has to move.
	cur = a.resolveCollision(cur, u, c)
	c = a.st.base.Get(cur) + u
	a.addChild(c, cur, u)
	return c
}

// addChild creates a node at free slot c under parent p for code unit u,
// splicing it into p's circular sibling list in O(1).
func (a *automaton) addChild(c, p, u int32) {
	a.nodeCount++
	sib := u // an only child is its own successor
	first := a.st.aux2.Get(p)
	if first == reserved {
		a.st.aux2.Set(p, u)
	} else {
		firstSlot := a.st.base.Get(p) + first
		sib = a.st.aux1.Get(firstSlot)
		a.st.aux1.Set(firstSlot, u)
	}
	a.st.writeAll(c, reserved, p, reserved, sib, reserved)
}

// childOffsets collects p's child code-unit offsets into buf (reused).
func (a *automaton) childOffsets(p int32, buf []int32) []int32 {
	buf = buf[:0]
	first := a.st.aux2.Get(p)
	if first == reserved {
		return buf
	}
	b := a.st.base.Get(p)
	off := first
	for {
		buf = append(buf, off)
		off = a.st.aux1.Get(b + off)
		if off == first {
			return buf
		}
	}
}

// resolveCollision frees the slot base[cur]+u by relocating the children of
// either cur or the slot's current owner, whichever child set is smaller
// (ties move cur, the encroaching parent). Returns cur's index, adjusted if
// cur itself was one of the relocated children.
//
// The unit u joins cur's offset list both for the size comparison and, when
// cur is the side that moves, for the free-base search, so the new base is
// guaranteed to have room for the child about to be created. It is popped
// before the copy loop; the child does not exist yet.
func (a *automaton) resolveCollision(cur, u, c int32) int32 {
	a.offsetsB = a.childOffsets(cur, a.offsetsB)
	a.offsetsB = append(a.offsetsB, u)

	moved, offsets := cur, a.offsetsB
	if c >= 1 {
		q := a.st.parent.Get(c)
		a.offsetsA = a.childOffsets(q, a.offsetsA)
		if len(a.offsetsA) < len(a.offsetsB) {
			moved, offsets = q, a.offsetsA
		}
	}

	newBase := a.findMulti(offsets)
	if moved == cur {
		a.offsetsB = a.offsetsB[:len(a.offsetsB)-1]
		offsets = a.offsetsB
	}

	oldBase := a.st.base.Get(moved)
	// If cur is a direct child of the moved parent its own slot shifts with
	// the base. Deeper descendants keep their slots.
	adjust := moved != cur && a.st.parent.Get(cur) == moved

	for _, o := range offsets {
		oldChild := oldBase + o
		newChild := newBase + o

		// Grandchildren stay in place; only their parent's index changes.
		a.offsetsC = a.childOffsets(oldChild, a.offsetsC)
		gb := a.st.base.Get(oldChild)
		for _, g := range a.offsetsC {
			a.st.parent.Set(gb+g, newChild)
		}

		a.st.writeAll(newChild,
			a.st.base.Get(oldChild),
			a.st.parent.Get(oldChild),
			a.st.value.Get(oldChild),
			a.st.aux1.Get(oldChild),
			a.st.aux2.Get(oldChild))

		a.st.parent.Set(oldChild, reserved)
		if oldChild < a.singleCursor {
			a.free.add(oldChild)
		}
	}
	a.st.base.Set(moved, newBase)

	if adjust {
		return cur + (newBase - oldBase)
	}
	return cur
}

// findSingle returns a free slot usable as the child index for code unit u.
// The cache is consulted first; otherwise the single-child cursor is raised
// to at least u-1 (keeping the derived base non-negative) and the scan
// continues forward from it.
func (a *automaton) findSingle(u int32) int32 {
	if slot := a.free.popFor(u, a.st); slot != 0 {
		return slot
	}
	if a.singleCursor < u-1 {
		a.singleCursor = u - 1
	}
	i := a.singleCursor + 1
	for a.st.occupied(i) {
		i++
	}
	a.singleCursor = i
	return i
}

// findMulti returns a base b with parent[b+o] free for every offset. The
// multi cursor never falls behind the single cursor, so these wider
// placements are not funneled into the dense low region.
func (a *automaton) findMulti(offsets []int32) int32 {
	if len(offsets) == 1 {
		return a.findSingle(offsets[0]) - offsets[0]
	}
	if a.multiCursor < a.singleCursor {
		a.multiCursor = a.singleCursor
	}
	b := a.multiCursor + 1
scan:
	for ; ; b++ {
		for _, o := range offsets {
			if a.st.occupied(b + o) {
				continue scan
			}
		}
		a.multiCursor = b
		return b
	}
}

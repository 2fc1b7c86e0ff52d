package actrie

// Dictionary is the façade mapping keys to values of an arbitrary type. The
// automaton stores a dense int32 id per key; the values and the keys'
// normalized byte lengths live in two side slices indexed by that id.
type Dictionary[V any] struct {
	a       *automaton
	values  []V
	lengths []int32
}

// Match is one occurrence of a key, carrying the value it maps to.
type Match[V any] struct {
	Start int
	End   int
	Value V
}

func NewDictionary[V any](o Options) *Dictionary[V] {
	return &Dictionary[V]{a: newAutomaton(o)}
}

// Add inserts key with value. A duplicate key re-points the automaton at a
// fresh id and leaves the earlier (value, length) pair dead; that pair is
// never read again. Use Replace to update without the leak.
func (d *Dictionary[V]) Add(key string, value V) error {
	if key == "" {
		return ErrEmptyKey
	}
	if d.a.built {
		return ErrAlreadyBuilt
	}
	id := int32(len(d.values))
	if err := d.a.addEntry(key, id); err != nil {
		return err
	}
	d.values = append(d.values, value)
	d.lengths = append(d.lengths, int32(len(d.a.foldKey(key))))
	return nil
}

// AddAll inserts every entry of m. Insertion order does not affect the
// built automaton's behavior, so map iteration order is fine.
func (d *Dictionary[V]) AddAll(m map[string]V) error {
	for k, v := range m {
		if err := d.Add(k, v); err != nil {
			return err
		}
	}
	return nil
}

// ValueOf returns the live value for key.
func (d *Dictionary[V]) ValueOf(key string) (V, bool) {
	id, ok := d.a.valueAt(key)
	if !ok {
		var zero V
		return zero, false
	}
	return d.values[id], true
}

// Replace overwrites key's value in place, reporting whether a value was
// overwritten. With insertOnFail, a missing key is inserted instead (and
// false returned). Not permitted once built, regardless of insertOnFail.
func (d *Dictionary[V]) Replace(key string, value V, insertOnFail bool) (bool, error) {
	if d.a.built {
		return false, ErrAlreadyBuilt
	}
	if key == "" {
		return false, ErrEmptyKey
	}
	if id, ok := d.a.valueAt(key); ok {
		d.values[id] = value
		return true, nil
	}
	if insertOnFail {
		return false, d.Add(key, value)
	}
	return false, nil
}

// Build freezes the dictionary. No mutation is possible afterwards.
func (d *Dictionary[V]) Build() error {
	return d.a.build()
}

// Contains reports whether key was added. Valid at any build stage.
func (d *Dictionary[V]) Contains(key string) bool {
	return d.a.contains(key)
}

// NodeCount returns the automaton's node count, root included.
func (d *Dictionary[V]) NodeCount() int {
	return int(d.a.nodeCount)
}

func (d *Dictionary[V]) IsBuilt() bool {
	return d.a.built
}

// Parse returns a lazy iterator over every occurrence of every key in
// input, ordered by end offset ascending, then by length descending. Ties
// within one (end, length) follow the prefix-link chain.
func (d *Dictionary[V]) Parse(input string) (*Matches[V], error) {
	if !d.a.built {
		return nil, ErrNotBuilt
	}
	return &Matches[V]{d: d, ms: newMatchStream(d.a, input)}, nil
}

// Matches is a pull iterator over matches. It never fails; the caller stops
// pulling to cancel.
type Matches[V any] struct {
	d  *Dictionary[V]
	ms matchStream
}

func (m *Matches[V]) Next() (Match[V], bool) {
	for {
		end, id, ok := m.ms.next()
		if !ok {
			var zero Match[V]
			return zero, false
		}
		start := end - int(m.d.lengths[id])
		if start < 0 {
			continue
		}
		if m.ms.a.words && !wordBounded(m.ms.input, start, end) {
			continue
		}
		return Match[V]{Start: start, End: end, Value: m.d.values[id]}, true
	}
}

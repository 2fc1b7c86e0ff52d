package actrie

// StringSet is the façade where a key is its own value. Keys are not
// retained: only the byte length of each (normalized) key is stored in the
// automaton, and a match's text is sliced back out of the input.
type StringSet struct {
	a *automaton
}

// StringMatch is one occurrence of a key. Value is input[Start:End), so in
// case-insensitive mode it carries the input's casing.
type StringMatch struct {
	Start int
	End   int
	Value string
}

func NewStringSet(o Options) *StringSet {
	return &StringSet{a: newAutomaton(o)}
}

// Add inserts a key. Exact duplicates are a no-op. In case-insensitive mode
// a key whose per-rune lowering changes its byte length is rejected: the
// façade derives a match's start as end minus the stored length, which such
// a key would break.
func (s *StringSet) Add(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.a.built {
		return ErrAlreadyBuilt
	}
	norm := s.a.foldKey(key)
	if len(norm) != len(key) {
		return ErrKeyFoldChangesLength
	}
	if s.a.contains(key) {
		return nil
	}
	return s.a.addEntry(key, int32(len(norm)))
}

// AddAll inserts each key in order, stopping at the first error.
func (s *StringSet) AddAll(keys ...string) error {
	for _, k := range keys {
		if err := s.Add(k); err != nil {
			return err
		}
	}
	return nil
}

// Build freezes the set. No mutation is possible afterwards.
func (s *StringSet) Build() error {
	return s.a.build()
}

// Contains reports whether key was added. Valid at any build stage.
func (s *StringSet) Contains(key string) bool {
	return s.a.contains(key)
}

// NodeCount returns the automaton's node count, root included.
func (s *StringSet) NodeCount() int {
	return int(s.a.nodeCount)
}

func (s *StringSet) IsBuilt() bool {
	return s.a.built
}

// Parse returns a lazy iterator over every occurrence of every key in
// input, ordered by end offset ascending, then by length descending.
func (s *StringSet) Parse(input string) (*StringMatches, error) {
	if !s.a.built {
		return nil, ErrNotBuilt
	}
	return &StringMatches{ms: newMatchStream(s.a, input)}, nil
}

// StringMatches is a pull iterator over matches. It never fails; the caller
// stops pulling to cancel.
type StringMatches struct {
	ms matchStream
}

func (m *StringMatches) Next() (StringMatch, bool) {
	for {
		end, length, ok := m.ms.next()
		if !ok {
			return StringMatch{}, false
		}
		start := end - int(length)
		if start < 0 {
			// Reachable only when an input rune's lowered form is wider
			// than the stored key bytes; see the package doc on width-
			// changing folds.
			continue
		}
		if m.ms.a.words && !wordBounded(m.ms.input, start, end) {
			continue
		}
		return StringMatch{Start: start, End: end, Value: m.ms.input[start:end]}, true
	}
}

package actrie

import (
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func collectValues[V any](t *testing.T, d *Dictionary[V], input string) []V {
	t.Helper()
	it, err := d.Parse(input)
	assert.NilError(t, err)
	var out []V
	for {
		m, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, m.Value)
	}
}

func TestDictionaryExpandsAbbreviations(t *testing.T) {
	d := NewDictionary[string](Options{})
	assert.NilError(t, d.Add("np", "no problem"))
	assert.NilError(t, d.Add("ty", "thank you"))
	assert.NilError(t, d.Build())

	got := collectValues(t, d, "It was np, ty though.")
	assert.DeepEqual(t, got, []string{"no problem", "thank you"})
}

func TestDictionaryValueOf(t *testing.T) {
	d := NewDictionary[int](Options{})
	assert.NilError(t, d.Add("one", 1))
	assert.NilError(t, d.Add("two", 2))

	v, ok := d.ValueOf("one")
	assert.Assert(t, ok)
	assert.Equal(t, v, 1)

	_, ok = d.ValueOf("three")
	assert.Assert(t, !ok)
	// A key prefix is not a key.
	_, ok = d.ValueOf("on")
	assert.Assert(t, cmp.Equal(ok, false))
}

func TestDictionaryDuplicateAddKeepsLatest(t *testing.T) {
	d := NewDictionary[string](Options{})
	assert.NilError(t, d.Add("k", "old"))
	assert.NilError(t, d.Add("k", "new"))

	v, ok := d.ValueOf("k")
	assert.Assert(t, ok)
	assert.Equal(t, v, "new")

	// The dead pair stays allocated by design; Add is the fast path.
	assert.Equal(t, len(d.values), 2)

	assert.NilError(t, d.Build())
	got := collectValues(t, d, "k")
	assert.DeepEqual(t, got, []string{"new"})
}

func TestDictionaryReplace(t *testing.T) {
	d := NewDictionary[string](Options{})
	assert.NilError(t, d.Add("k", "old"))

	replaced, err := d.Replace("k", "new", false)
	assert.NilError(t, err)
	assert.Assert(t, replaced)
	// In-place update: no dead pair.
	assert.Equal(t, len(d.values), 1)

	replaced, err = d.Replace("missing", "v", false)
	assert.NilError(t, err)
	assert.Assert(t, !replaced)
	_, ok := d.ValueOf("missing")
	assert.Assert(t, !ok)

	replaced, err = d.Replace("missing", "v", true)
	assert.NilError(t, err)
	assert.Assert(t, !replaced)
	v, ok := d.ValueOf("missing")
	assert.Assert(t, ok)
	assert.Equal(t, v, "v")
}

func TestDictionaryReplaceAfterBuildFails(t *testing.T) {
	d := NewDictionary[string](Options{})
	assert.NilError(t, d.Add("k", "v"))
	assert.NilError(t, d.Build())

	_, err := d.Replace("k", "w", true)
	assert.ErrorIs(t, err, ErrAlreadyBuilt)
	_, err = d.Replace("missing", "w", true)
	assert.ErrorIs(t, err, ErrAlreadyBuilt)
}

func TestDictionaryAddAll(t *testing.T) {
	d := NewDictionary[int](Options{})
	assert.NilError(t, d.AddAll(map[string]int{"a": 1, "bb": 2, "ccc": 3}))
	assert.NilError(t, d.Build())

	for k, want := range map[string]int{"a": 1, "bb": 2, "ccc": 3} {
		v, ok := d.ValueOf(k)
		assert.Assert(t, ok)
		assert.Equal(t, v, want)
	}
}

func TestDictionaryStructValues(t *testing.T) {
	type entity struct {
		Kind string
		ID   int
	}
	d := NewDictionary[entity](Options{CaseInsensitive: true})
	assert.NilError(t, d.Add("Göteborg", entity{Kind: "city", ID: 1}))
	assert.NilError(t, d.Add("Sweden", entity{Kind: "country", ID: 2}))
	assert.NilError(t, d.Build())

	got := collectValues(t, d, "göteborg is in SWEDEN")
	assert.DeepEqual(t, got, []entity{
		{Kind: "city", ID: 1},
		{Kind: "country", ID: 2},
	})
}

func TestDictionaryMatchOffsets(t *testing.T) {
	d := NewDictionary[string](Options{})
	assert.NilError(t, d.Add("np", "no problem"))
	assert.NilError(t, d.Build())

	it, err := d.Parse("np np")
	assert.NilError(t, err)

	m, ok := it.Next()
	assert.Assert(t, ok)
	assert.Equal(t, m.Start, 0)
	assert.Equal(t, m.End, 2)

	m, ok = it.Next()
	assert.Assert(t, ok)
	assert.Equal(t, m.Start, 3)
	assert.Equal(t, m.End, 5)

	_, ok = it.Next()
	assert.Assert(t, !ok)
}

func TestDictionaryWholeWords(t *testing.T) {
	d := NewDictionary[string](Options{WholeWordsOnly: true})
	assert.NilError(t, d.Add("cat", "feline"))
	assert.NilError(t, d.Build())

	got := collectValues(t, d, "cat concat cats cat")
	assert.DeepEqual(t, got, []string{"feline", "feline"})
}

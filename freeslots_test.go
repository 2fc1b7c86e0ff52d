package actrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyStore() *nodeStore {
	s := newNodeStore()
	s.writeAll(0, 1, 0, reserved, reserved, reserved)
	return s
}

func TestFreeSlotsFIFOOrder(t *testing.T) {
	st := emptyStore()
	c := newFreeSlots(8, 10)

	c.add(40)
	c.add(50)
	c.add(60)

	// All three satisfy the offset; head first.
	require.Equal(t, int32(40), c.popFor(10, st))
	require.Equal(t, int32(50), c.popFor(10, st))
	require.Equal(t, int32(60), c.popFor(10, st))
	require.Equal(t, int32(0), c.popFor(10, st))
}

func TestFreeSlotsSkipsTooSmallSlots(t *testing.T) {
	st := emptyStore()
	c := newFreeSlots(8, 10)

	c.add(5)
	c.add(90)

	// 5 cannot serve offset 80, 90 can; 5 stays cached for later.
	require.Equal(t, int32(90), c.popFor(80, st))
	require.Equal(t, int32(5), c.popFor(3, st))
}

func TestFreeSlotsMissToleranceEvicts(t *testing.T) {
	st := emptyStore()
	c := newFreeSlots(8, 3)

	c.add(5)
	for i := 0; i < 3; i++ {
		require.Equal(t, int32(0), c.popFor(100, st))
	}
	// Three misses evicted the entry; even a fitting offset finds nothing.
	require.Equal(t, int32(0), c.popFor(1, st))
}

func TestFreeSlotsDropsReoccupiedSlots(t *testing.T) {
	st := emptyStore()
	c := newFreeSlots(8, 10)

	c.add(30)
	c.add(31)
	// The store reuses slot 30 behind the cache's back.
	st.writeAll(30, reserved, 0, reserved, reserved, reserved)

	require.Equal(t, int32(31), c.popFor(1, st))
	require.Equal(t, int32(0), c.popFor(1, st))
}

func TestFreeSlotsCapacityBound(t *testing.T) {
	st := emptyStore()
	c := newFreeSlots(2, 10)

	c.add(10)
	c.add(11)
	c.add(12) // dropped, cache full

	require.Equal(t, int32(10), c.popFor(1, st))
	require.Equal(t, int32(11), c.popFor(1, st))
	require.Equal(t, int32(0), c.popFor(1, st))

	// Entries freed by pops are reusable.
	c.add(13)
	require.Equal(t, int32(13), c.popFor(1, st))
}

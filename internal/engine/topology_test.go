package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits(t *testing.T) {
	require.Len(t, units, 27)
	for u, cells := range units {
		seen := map[int]bool{}
		for _, p := range cells {
			assert.GreaterOrEqual(t, p, 0)
			assert.Less(t, p, CellCount)
			seen[p] = true
		}
		assert.Len(t, seen, 9, "unit %d has duplicate cells", u)
	}
	// Fixed ordering: rows, then columns, then boxes.
	assert.Equal(t, [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, units[0])
	assert.Equal(t, [9]int{0, 9, 18, 27, 36, 45, 54, 63, 72}, units[9])
	assert.Equal(t, [9]int{0, 1, 2, 9, 10, 11, 18, 19, 20}, units[18])
}

func TestPeers(t *testing.T) {
	for p := 0; p < CellCount; p++ {
		seen := map[int]bool{}
		for _, q := range peers[p] {
			require.NotEqual(t, p, q, "cell %d is its own peer", p)
			seen[q] = true
		}
		require.Len(t, seen, PeerCount, "cell %d", p)
	}
	// Spot-check the corner: row 0, column 0 and the top-left box.
	want := map[int]bool{}
	for i := 1; i < 9; i++ {
		want[i] = true   // rest of row 0
		want[9*i] = true // rest of column 0
	}
	for _, q := range []int{10, 11, 19, 20} {
		want[q] = true
	}
	got := map[int]bool{}
	for _, q := range peers[0] {
		got[q] = true
	}
	assert.Equal(t, want, got)
}

func TestDigitSet(t *testing.T) {
	s := SetOf(3, 7)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(1))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []uint8{3, 7}, s.Digits())

	s = s.Without(3)
	d, ok := s.Sole()
	require.True(t, ok)
	assert.Equal(t, uint8(7), d)

	assert.Equal(t, 9, AllDigits.Count())
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, AllDigits.Digits())
	_, ok = AllDigits.Sole()
	assert.False(t, ok)
}

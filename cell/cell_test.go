package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCell_SetThenGet tests that Set followed by Get returns the value set.
func TestCell_SetThenGet(t *testing.T) {
	c := New(32)
	require.Equal(t, 32, c.Get())

	c.Set(100)
	require.Equal(t, 100, c.Get())

	s := New("initial")
	s.Set("overwritten")
	require.Equal(t, "overwritten", s.Get())
}

// TestCell_ZeroValue tests that a zero Cell is usable without New.
func TestCell_ZeroValue(t *testing.T) {
	var c Cell[int]
	require.Equal(t, 0, c.Get())

	c.Set(7)
	require.Equal(t, 7, c.Get())
}

// TestCell_CopiesAreIndependent tests that a copied-out value is unaffected
// by a later overwrite of the slot.
func TestCell_CopiesAreIndependent(t *testing.T) {
	c := New(1)

	copied := c.Get()
	c.Set(2)

	require.Equal(t, 1, copied)
	require.Equal(t, 2, c.Get())
}

// TestCell_StructPayload tests overwrite and copy-out with a struct value,
// including the documented shallow-copy behavior for reference fields.
func TestCell_StructPayload(t *testing.T) {
	type payload struct {
		n  int
		bs []byte
	}

	c := New(payload{n: 1, bs: []byte{1, 2}})

	got := c.Get()
	require.Equal(t, 1, got.n)

	// Shallow copy: the slice header is copied, the backing array is shared.
	got.bs[0] = 9
	require.Equal(t, byte(9), c.Get().bs[0])

	c.Set(payload{n: 2})
	require.Equal(t, 2, c.Get().n)
	require.Nil(t, c.Get().bs)
}

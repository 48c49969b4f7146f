package refcell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBorrowState_Predicates tests the three-way classification of the
// packed encoding.
func TestBorrowState_Predicates(t *testing.T) {
	require.True(t, Unshared.IsUnshared())
	require.False(t, Unshared.IsShared())
	require.False(t, Unshared.IsExclusive())

	require.True(t, Exclusive.IsExclusive())
	require.False(t, Exclusive.IsShared())
	require.False(t, Exclusive.IsUnshared())

	require.True(t, Shared(1).IsShared())
	require.True(t, Shared(3).IsShared())
	require.False(t, Shared(1).IsUnshared())
	require.False(t, Shared(1).IsExclusive())
}

// TestBorrowState_Readers tests the reader count accessor.
func TestBorrowState_Readers(t *testing.T) {
	require.Equal(t, int64(0), Unshared.Readers())
	require.Equal(t, int64(0), Exclusive.Readers())
	require.Equal(t, int64(1), Shared(1).Readers())
	require.Equal(t, int64(4), Shared(4).Readers())
}

// TestBorrowState_SharedRequiresPositive tests the constructor's bound.
func TestBorrowState_SharedRequiresPositive(t *testing.T) {
	require.Panics(t, func() { Shared(0) })
	require.Panics(t, func() { Shared(-1) })
}

// TestBorrowState_String tests the diagnostic formatting.
func TestBorrowState_String(t *testing.T) {
	require.Equal(t, "Unshared", Unshared.String())
	require.Equal(t, "Exclusive", Exclusive.String())
	require.Equal(t, "Shared(2)", Shared(2).String())
	require.Equal(t, "Invalid(-7)", BorrowState(-7).String())
}

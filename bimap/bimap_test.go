// Package bimap_test contains unit tests for the Bimap bijection.
package bimap_test

import (
	"testing"

	"github.com/katalvlaran/digraph/bimap"
	"github.com/stretchr/testify/require"
)

// TestAddAndGet verifies that a bound pair is visible from both directions.
func TestAddAndGet(t *testing.T) {
	b := bimap.New[string, int]()

	require.NoError(t, b.Add("A", 0)) // bind A↔0
	require.NoError(t, b.Add("B", 1)) // bind B↔1

	v, err := b.Get("A") // forward lookup
	require.NoError(t, err)
	require.Equal(t, 0, v)

	k, err := b.GetInverse(1) // inverse lookup
	require.NoError(t, err)
	require.Equal(t, "B", k)

	require.Equal(t, 2, b.Len())
}

// TestAddDuplicate ensures Add rejects an already-bound key or value and
// leaves the bijection unchanged.
func TestAddDuplicate(t *testing.T) {
	b := bimap.New[string, int]()
	require.NoError(t, b.Add("A", 0))

	err := b.Add("A", 1) // key collision
	require.ErrorIs(t, err, bimap.ErrDuplicateKey)

	err = b.Add("B", 0) // value collision
	require.ErrorIs(t, err, bimap.ErrDuplicateKey)

	// The failed Add attempts must not have bound anything.
	require.Equal(t, 1, b.Len())
	require.False(t, b.Contains("B"))
	_, err = b.GetInverse(1)
	require.ErrorIs(t, err, bimap.ErrNotFound)
}

// TestGetNotFound ensures lookups against unbound entries fail with ErrNotFound.
func TestGetNotFound(t *testing.T) {
	b := bimap.New[string, int]()

	_, err := b.Get("missing")
	require.ErrorIs(t, err, bimap.ErrNotFound)

	_, err = b.GetInverse(42)
	require.ErrorIs(t, err, bimap.ErrNotFound)
}

// TestContains verifies the total membership predicates.
func TestContains(t *testing.T) {
	b := bimap.New[string, int]()
	require.NoError(t, b.Add("A", 7))

	require.True(t, b.Contains("A"))
	require.False(t, b.Contains("B"))
	require.True(t, b.ContainsValue(7))
	require.False(t, b.ContainsValue(8))
}

// TestRemove verifies that Remove returns the freed value, clears both
// directions, and allows rebinding afterwards.
func TestRemove(t *testing.T) {
	b := bimap.New[string, int]()
	require.NoError(t, b.Add("A", 3))

	v, err := b.Remove("A")
	require.NoError(t, err)
	require.Equal(t, 3, v) // freed value is reported to the caller

	require.False(t, b.Contains("A"))
	require.False(t, b.ContainsValue(3))
	require.Equal(t, 0, b.Len())

	// Both sides are free again: a fresh pairing must succeed.
	require.NoError(t, b.Add("B", 3))
	require.NoError(t, b.Add("A", 4))
}

// TestRemoveNotFound ensures removing an unbound key fails with ErrNotFound.
func TestRemoveNotFound(t *testing.T) {
	b := bimap.New[string, int]()

	_, err := b.Remove("ghost")
	require.ErrorIs(t, err, bimap.ErrNotFound)
}

// TestKeysSnapshot ensures Keys returns an independent copy of the key set.
func TestKeysSnapshot(t *testing.T) {
	b := bimap.New[string, int]()
	require.NoError(t, b.Add("A", 0))
	require.NoError(t, b.Add("B", 1))

	keys := b.Keys()
	require.ElementsMatch(t, []string{"A", "B"}, keys)

	keys[0] = "mutated" // must not reach internal state
	require.True(t, b.Contains("A"))
	require.True(t, b.Contains("B"))
	require.False(t, b.Contains("mutated"))
}

// TestClear empties both directions and permits fresh bindings.
func TestClear(t *testing.T) {
	b := bimap.New[int, int]()
	require.NoError(t, b.Add(1, 10))
	require.NoError(t, b.Add(2, 20))

	b.Clear()

	require.Equal(t, 0, b.Len())
	require.Empty(t, b.Keys())
	require.NoError(t, b.Add(1, 20)) // old pairings are fully forgotten
}

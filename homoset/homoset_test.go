package homoset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/homoset"
	"github.com/katalvlaran/latticewalk/point"
)

// pointComparer overrides cmp's equality for point.Point: its fields are
// unexported, so cmp would otherwise panic rather than compare it.
var pointComparer = cmp.Comparer(func(a, b point.Point) bool { return a.Equal(b) })

func byKey(a, b point.Point) bool { return a.Key() < b.Key() }

func TestUpperAbsorption(t *testing.T) {
	s := homoset.NewUpper()

	require.True(t, s.Add(point.Parse("1111", 4)))
	require.Equal(t, 1, s.Len())

	// Adding a more general point absorbs the specific one.
	require.True(t, s.Add(point.Parse("0100", 4)))
	require.Equal(t, 1, s.Len())
	require.Equal(t, "0100", s.Elements()[0].String())

	// Re-adding something already covered is a no-op.
	require.False(t, s.Add(point.Parse("1100", 4)))
	require.Equal(t, 1, s.Len())
}

func TestLowerAbsorption(t *testing.T) {
	s := homoset.NewLower()

	require.True(t, s.Add(point.Parse("0000", 4)))
	require.True(t, s.Add(point.Parse("1000", 4)))
	require.Equal(t, 1, s.Len()) // 0000 absorbed by being <= 1000
	require.Equal(t, "1000", s.Elements()[0].String())

	require.False(t, s.Add(point.Parse("0000", 4)))
}

func TestAntichainInvariant(t *testing.T) {
	s := homoset.NewUpper()
	s.Add(point.Parse("1000", 4))
	s.Add(point.Parse("0100", 4))
	s.Add(point.Parse("0010", 4))
	require.Equal(t, 3, s.Len())

	for i, a := range s.Elements() {
		for j, b := range s.Elements() {
			if i == j {
				continue
			}
			require.False(t, a.LE(b), "%s should not be <= %s", a, b)
		}
	}
}

func TestAntichainElementsDeepEqualUnordered(t *testing.T) {
	s := homoset.NewUpper()
	s.Add(point.Parse("1000", 4))
	s.Add(point.Parse("0100", 4))
	s.Add(point.Parse("0010", 4))

	// Elements() gives no ordering guarantee, so testify's reflect-based
	// require.Equal would be brittle here; cmp.Diff plus
	// cmpopts.SortSlices compares the antichain as a set.
	want := []point.Point{
		point.Parse("0010", 4),
		point.Parse("1000", 4),
		point.Parse("0100", 4),
	}
	if diff := cmp.Diff(want, s.Elements(), pointComparer, cmpopts.SortSlices(byKey)); diff != "" {
		t.Errorf("antichain mismatch (-want +got):\n%s", diff)
	}
}

func TestBestHier(t *testing.T) {
	u := homoset.NewUpper()
	_, ok := u.BestHier()
	require.False(t, ok)

	u.Add(point.Parse("1111", 4))
	u.Add(point.Parse("0100", 4))
	h, ok := u.BestHier()
	require.True(t, ok)
	require.Equal(t, 1, h) // min popcount

	d := homoset.NewLower()
	d.Add(point.Parse("0000", 4))
	d.Add(point.Parse("1000", 4))
	h, ok = d.BestHier()
	require.True(t, ok)
	require.Equal(t, 1, h) // max popcount
}

func TestLEGE(t *testing.T) {
	u := homoset.NewUpper()
	u.Add(point.Parse("0100", 4))

	require.True(t, u.LE(point.Parse("0100", 4)))  // p itself is in up(U)
	require.True(t, u.LE(point.Parse("1100", 4)))  // a point above it too
	require.False(t, u.LE(point.Parse("0000", 4))) // below, not in up(U)
	require.True(t, u.GE(point.Parse("0000", 4)))  // some member >= bottom
}

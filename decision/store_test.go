package decision_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/decision"
	"github.com/katalvlaran/latticewalk/internal/tuning"
	"github.com/katalvlaran/latticewalk/point"
)

func newStore() *decision.Store {
	return decision.New(tuning.Default())
}

func p4(s string) point.Point { return point.Parse(s, 4) }

func keys(pts []point.Point) []string {
	out := make([]string, len(pts))
	for i, pt := range pts {
		out[i] = pt.String()
	}
	return out
}

// Scenario 1: mark_true("1111") then mark_false("0000").
func TestScenario1(t *testing.T) {
	s := newStore()

	changed, err := s.MarkTrue(p4("1111"))
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = s.MarkFalse(p4("0000"))
	require.NoError(t, err)
	require.True(t, changed)

	require.ElementsMatch(t, []string{"1111"}, keys(s.US().Elements()))
	require.ElementsMatch(t, []string{"0000"}, keys(s.DS().Elements()))
	require.Empty(t, s.Suprema())
	require.Empty(t, s.Infima())
}

// Scenario 2: from scenario 1, mark_true("0100"). Absorbs "1111", and
// becomes an infimum (its only lower cover, "0000", is FALSE).
func TestScenario2(t *testing.T) {
	s := newStore()
	_, err := s.MarkTrue(p4("1111"))
	require.NoError(t, err)
	_, err = s.MarkFalse(p4("0000"))
	require.NoError(t, err)

	changed, err := s.MarkTrue(p4("0100"))
	require.NoError(t, err)
	require.True(t, changed)

	require.ElementsMatch(t, []string{"0100"}, keys(s.US().Elements()))
	require.ElementsMatch(t, []string{"0100"}, keys(s.Infima()))
}

// Scenario 4: mark_true("1100"), mark_false("0011"),
// mark_improbable("1001"). No contradiction; zs={"1001"}; next_u never
// returns "1001" or anything >= "1100" or <= "0011".
func TestScenario4(t *testing.T) {
	s := newStore()

	_, err := s.MarkTrue(p4("1100"))
	require.NoError(t, err)
	_, err = s.MarkFalse(p4("0011"))
	require.NoError(t, err)
	changed, err := s.MarkImprobable(p4("1001"))
	require.NoError(t, err)
	require.True(t, changed)

	require.ElementsMatch(t, []string{"1001"}, keys(s.Improbable()))

	for i := 0; i < 50; i++ {
		e := s.NextU()
		if !e.Valid() {
			break
		}
		require.NotEqual(t, "1001", e.String())
		require.False(t, e.GE(p4("1100")), "next_u must never suggest >= 1100 (already TRUE)")
		require.False(t, e.LE(p4("0011")), "next_u must never suggest <= 0011 (already FALSE)")
	}
}

// Scenario 5: mark_true("1000") then mark_false("1100") must fail, since
// "1000" <= "1100" puts "1100" in the TRUE region.
func TestScenario5Contradiction(t *testing.T) {
	s := newStore()
	_, err := s.MarkTrue(p4("1000"))
	require.NoError(t, err)

	_, err = s.MarkFalse(p4("1100"))
	require.Error(t, err)
	require.True(t, errors.Is(err, decision.ErrAlreadyDecidedOtherWay))
}

// Scenario 6: idempotence. mark_true(p) twice returns true then false;
// state after the second call equals state after the first.
func TestScenario6Idempotence(t *testing.T) {
	s := newStore()
	p := p4("1010")

	changed, err := s.MarkTrue(p)
	require.NoError(t, err)
	require.True(t, changed)

	before := keys(s.US().Elements())

	changed, err = s.MarkTrue(p)
	require.NoError(t, err)
	require.False(t, changed)

	require.ElementsMatch(t, before, keys(s.US().Elements()))
}

func TestDimensionMismatch(t *testing.T) {
	s := newStore()
	_, err := s.MarkTrue(point.Parse("1111", 4))
	require.NoError(t, err)

	_, err = s.MarkTrue(point.Parse("111", 3))
	require.Error(t, err)
	require.True(t, errors.Is(err, decision.ErrDimensionMismatch))
}

func TestMarkFalseThenTrueContradiction(t *testing.T) {
	s := newStore()
	_, err := s.MarkFalse(p4("0011"))
	require.NoError(t, err)

	_, err = s.MarkTrue(p4("1111"))
	require.Error(t, err)
	require.True(t, errors.Is(err, decision.ErrAlreadyDecidedOtherWay))
}

func TestMarkImprobableOnDecidedFails(t *testing.T) {
	s := newStore()
	_, err := s.MarkTrue(p4("1111"))
	require.NoError(t, err)

	_, err = s.MarkImprobable(p4("1111"))
	require.Error(t, err)
	require.True(t, errors.Is(err, decision.ErrAlreadyDecidedOtherWay))
}

func TestMarkImprobableIdempotent(t *testing.T) {
	s := newStore()
	changed, err := s.MarkImprobable(p4("0101"))
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = s.MarkImprobable(p4("0101"))
	require.NoError(t, err)
	require.False(t, changed)
}

// Fully labeling every point of B^4 leaves "1100" as the only infimum and
// at least one supremum, and NextU/NextD both exhaust to the null point.
func TestFullLatticeConverges(t *testing.T) {
	s := newStore()
	threshold := p4("1100")

	for i := 0; i < 16; i++ {
		pt := point.New(4, uint64(i))
		if pt.GE(threshold) {
			_, err := s.MarkTrue(pt)
			require.NoError(t, err)
		} else {
			_, err := s.MarkFalse(pt)
			require.NoError(t, err)
		}
	}

	s.CheckAll()

	require.ElementsMatch(t, []string{"1100"}, keys(s.Infima()))
	require.NotEmpty(t, s.Suprema())

	require.False(t, s.NextU().Valid())
	require.False(t, s.NextD().Valid())
}

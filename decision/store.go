// Package decision implements the tri-state lattice store: the decision
// engine that labels points of B^N as TRUE, FALSE, or IMPROBABLE, keeps
// the two closed regions and their frontiers up to date under monotone
// propagation, and suggests the next point worth probing.
//
// Every public method preserves invariants I1-I5 from spec.md section 3.
// The store is not safe for concurrent use (spec.md section 5:
// single-threaded, synchronous, no internal yield points) — callers that
// need concurrent access must serialize their own calls.
package decision

import (
	"github.com/katalvlaran/latticewalk/homoset"
	"github.com/katalvlaran/latticewalk/internal/tuning"
	"github.com/katalvlaran/latticewalk/point"
)

// Store is the tri-state decision engine over B^N. The zero value is not
// usable; construct with New.
type Store struct {
	n      uint
	nSet   bool
	tuning tuning.Config

	us *homoset.Set // TRUE region's antichain of minima
	ds *homoset.Set // FALSE region's antichain of maxima

	zs map[string]point.Point // IMPROBABLE points

	sup map[string]point.Point // suprema of the FALSE region
	inf map[string]point.Point // infima of the TRUE region

	uq priorityQueue // upward probe candidates
	dq priorityQueue // downward probe candidates

	// Frontier-walk cache, invalidated (ud=dd=0, ul=dl=nil) on every
	// mutating operation. Never maintained incrementally — see spec.md's
	// design notes on the frontier-walk cache.
	ud uint
	dd uint
	ul map[string]point.Point
	dl map[string]point.Point
}

// New constructs an empty Store. cfg tunes the mark_improbable bonus
// formulas; pass tuning.Default() for the spec's verbatim coefficients.
func New(cfg tuning.Config) *Store {
	return &Store{
		tuning: cfg,
		us:     homoset.NewUpper(),
		ds:     homoset.NewLower(),
		zs:     make(map[string]point.Point),
		sup:    make(map[string]point.Point),
		inf:    make(map[string]point.Point),
	}
}

// bindDimension fixes the store's session dimension on the first labeled
// point, and checks every subsequent point agrees with it.
func (s *Store) bindDimension(p point.Point) error {
	if !s.nSet {
		s.n = p.N()
		s.nSet = true
		return nil
	}
	if p.N() != s.n {
		return withPoint(ErrDimensionMismatch, p.String())
	}
	return nil
}

// invalidateWalk clears the cached frontier-walk state. Called by every
// mutating operation, per spec.md's design note: no incremental
// maintenance, the queues refill fast.
func (s *Store) invalidateWalk() {
	s.ud, s.dd = 0, 0
	s.ul, s.dl = nil, nil
}

// IsDecided reports whether p is in the TRUE or FALSE region.
func (s *Store) IsDecided(p point.Point) bool {
	return s.us.LE(p) || s.ds.GE(p)
}

// US returns the current TRUE region's antichain of minima.
func (s *Store) US() *homoset.Set { return s.us }

// DS returns the current FALSE region's antichain of maxima.
func (s *Store) DS() *homoset.Set { return s.ds }

// Improbable returns the current IMPROBABLE points, in unspecified order.
func (s *Store) Improbable() []point.Point { return mapValues(s.zs) }

// Suprema returns the current suprema of the FALSE region.
func (s *Store) Suprema() []point.Point { return mapValues(s.sup) }

// Infima returns the current infima of the TRUE region.
func (s *Store) Infima() []point.Point { return mapValues(s.inf) }

func mapValues(m map[string]point.Point) []point.Point {
	out := make([]point.Point, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	return out
}

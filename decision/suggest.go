package decision

import (
	"container/heap"

	"github.com/katalvlaran/latticewalk/homoset"
	"github.com/katalvlaran/latticewalk/point"
)

// NextU returns the next point to probe in the search for infima of
// TRUE, or the null point when exhausted (spec.md 4.3.3).
func (s *Store) NextU() point.Point {
	for {
		if p, ok := s.popFreshU(); ok {
			return p
		}
		if s.ud > s.n {
			return point.Point{}
		}
		s.extendURing()
	}
}

// NextD is the dual of NextU for suprema of FALSE.
func (s *Store) NextD() point.Point {
	for {
		if p, ok := s.popFreshD(); ok {
			return p
		}
		if s.dd > s.n {
			return point.Point{}
		}
		s.extendDRing()
	}
}

func (s *Store) popFreshU() (point.Point, bool) {
	for s.uq.Len() > 0 {
		e := heap.Pop(&s.uq).(qitem).p
		if s.us.LE(e) || s.ds.GE(e) || s.isImprobable(e) {
			continue
		}
		return e, true
	}
	return point.Point{}, false
}

func (s *Store) popFreshD() (point.Point, bool) {
	for s.dq.Len() > 0 {
		e := heap.Pop(&s.dq).(qitem).p
		if s.us.LE(e) || s.ds.GE(e) || s.isImprobable(e) {
			continue
		}
		return e, true
	}
	return point.Point{}, false
}

// extendURing grows the TRUE-antichain frontier ring by one lattice
// level: for every element of the current ring, every upper cover not
// dominated by some other TRUE member becomes a new ring member, and its
// lower covers are queued with bonus -(depth+1).
func (s *Store) extendURing() {
	var curr []point.Point
	if s.ud == 0 {
		curr = s.us.Elements()
	} else {
		curr = mapValues(s.ul)
	}

	next := make(map[string]point.Point)
	ringBonus := -(int64(s.ud) + 1)
	for _, e := range curr {
		for c := range e.Ups() {
			if dominatedByOther(s.us, e, c) {
				continue
			}
			next[c.Key()] = c
			for lc := range c.Downs() {
				pushU(&s.uq, lc, ringBonus)
			}
		}
	}
	s.ud++
	s.ul = next
}

// extendDRing is the dual of extendURing for the FALSE-antichain ring.
func (s *Store) extendDRing() {
	var curr []point.Point
	if s.dd == 0 {
		curr = s.ds.Elements()
	} else {
		curr = mapValues(s.dl)
	}

	next := make(map[string]point.Point)
	ringBonus := -(int64(s.dd) + 1)
	for _, e := range curr {
		for c := range e.Downs() {
			if dominatedByOtherDual(s.ds, e, c) {
				continue
			}
			next[c.Key()] = c
			for uc := range c.Ups() {
				pushD(&s.dq, s.n, uc, ringBonus)
			}
		}
	}
	s.dd++
	s.dl = next
}

// dominatedByOther reports whether some member of us other than e
// dominates c (u <= c), for the upward ring-extension check.
func dominatedByOther(us *homoset.Set, e, c point.Point) bool {
	for _, u := range us.Elements() {
		if u.Equal(e) {
			continue
		}
		if u.LE(c) {
			return true
		}
	}
	return false
}

// dominatedByOtherDual is the dual for the downward ring-extension
// check: some member of ds other than e dominates c (d >= c).
func dominatedByOtherDual(ds *homoset.Set, e, c point.Point) bool {
	for _, d := range ds.Elements() {
		if d.Equal(e) {
			continue
		}
		if d.GE(c) {
			return true
		}
	}
	return false
}

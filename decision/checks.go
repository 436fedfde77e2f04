package decision

import "github.com/katalvlaran/latticewalk/point"

// checkSup is intended for p assumed to be FALSE. It passes, and adds p
// to sup, iff every upper cover of p is TRUE or IMPROBABLE. Failure is
// silent (spec.md: "p is just not yet a supremum").
func (s *Store) checkSup(p point.Point) bool {
	for c := range p.Ups() {
		if !(s.us.LE(c) || s.isImprobable(c)) {
			return false
		}
	}
	s.sup[p.Key()] = p
	return true
}

// checkInf is the dual of checkSup, for p assumed to be TRUE.
func (s *Store) checkInf(p point.Point) bool {
	for c := range p.Downs() {
		if !(s.ds.GE(c) || s.isImprobable(c)) {
			return false
		}
	}
	s.inf[p.Key()] = p
	return true
}

func (s *Store) isImprobable(p point.Point) bool {
	_, ok := s.zs[p.Key()]
	return ok
}

// CheckAll reruns checkInf on every TRUE antichain member and checkSup on
// every FALSE antichain member. Intended as a finalization pass after the
// last label, when no further probes will be issued (spec.md 4.3.2).
func (s *Store) CheckAll() {
	for _, u := range s.us.Elements() {
		s.checkInf(u)
	}
	for _, d := range s.ds.Elements() {
		s.checkSup(d)
	}
}

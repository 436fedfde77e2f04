// Package homoset implements the homogeneous set: an antichain of
// point.Point values representing either an upward-closed set (the TRUE
// region, up(U) = {x : exists u in U, u <= x}) or a downward-closed set
// (the FALSE region, down(D) = {x : exists d in D, x <= d}).
//
// Both variants share one implementation, parameterized by a direction
// flag chosen at construction (NewUpper / NewLower) rather than
// duplicated per direction, per the antichain invariant U1: no two
// members of the set are <=-comparable.
package homoset

import "github.com/katalvlaran/latticewalk/point"

// Set is an antichain of points, interpreted as an upward- or
// downward-closed region depending on how it was constructed.
type Set struct {
	upward bool
	els    []point.Point
}

// NewUpper returns an empty upward-closed set (a TRUE region).
func NewUpper() *Set { return &Set{upward: true} }

// NewLower returns an empty downward-closed set (a FALSE region).
func NewLower() *Set { return &Set{upward: false} }

// Upward reports whether s represents an upward-closed (TRUE) region, as
// opposed to a downward-closed (FALSE) one.
func (s *Set) Upward() bool { return s.upward }

// Len returns the number of antichain members.
func (s *Set) Len() int { return len(s.els) }

// LE reports whether s <= p: some member el of s satisfies el <= p. For
// an upward-closed set this is equivalent to "p is in the closed region".
func (s *Set) LE(p point.Point) bool {
	for _, el := range s.els {
		if el.LE(p) {
			return true
		}
	}
	return false
}

// GE reports whether s >= p: some member el of s satisfies el >= p. For a
// downward-closed set this is equivalent to "p is in the closed region".
func (s *Set) GE(p point.Point) bool {
	for _, el := range s.els {
		if el.GE(p) {
			return true
		}
	}
	return false
}

// Add inserts p into the antichain with absorption:
//
//   - upward sets: if p is already covered (s <= p), no-op; otherwise
//     every member dominated by p (el >= p) is removed before p is added.
//   - downward sets: the dual, using s >= p and el <= p.
//
// Add reports whether the set actually changed.
func (s *Set) Add(p point.Point) bool {
	if s.upward {
		if s.LE(p) {
			return false
		}
		s.removeWhere(func(el point.Point) bool { return el.GE(p) })
	} else {
		if s.GE(p) {
			return false
		}
		s.removeWhere(func(el point.Point) bool { return el.LE(p) })
	}
	s.els = append(s.els, p)
	return true
}

func (s *Set) removeWhere(drop func(point.Point) bool) {
	kept := s.els[:0]
	for _, el := range s.els {
		if !drop(el) {
			kept = append(kept, el)
		}
	}
	s.els = kept
}

// Elements returns the current antichain members, in unspecified order.
// The returned slice aliases internal storage and must not be mutated or
// retained across a subsequent Add.
func (s *Set) Elements() []point.Point { return s.els }

// BestHier returns the antichain's characteristic popcount: the minimum
// over an upward-closed set, the maximum over a downward-closed one (the
// "lowest known TRUE" / "highest known FALSE"). ok is false when the set
// is empty.
func (s *Set) BestHier() (n int, ok bool) {
	if len(s.els) == 0 {
		return 0, false
	}
	best := s.els[0].Popcount()
	for _, el := range s.els[1:] {
		h := el.Popcount()
		if (s.upward && h < best) || (!s.upward && h > best) {
			best = h
		}
	}
	return best, true
}

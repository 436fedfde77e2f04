package decision

import "github.com/katalvlaran/latticewalk/point"

// MarkTrue labels p TRUE. It reports whether the operation changed the
// store's state (false if p was already TRUE), and fails with
// ErrAlreadyDecidedOtherWay if p is already FALSE.
func (s *Store) MarkTrue(p point.Point) (bool, error) {
	if err := s.bindDimension(p); err != nil {
		return false, err
	}
	if s.ds.GE(p) {
		return false, withPoint(ErrAlreadyDecidedOtherWay, p.String())
	}
	if s.us.LE(p) {
		return false, nil
	}

	s.invalidateWalk()

	oldUs := append([]point.Point(nil), s.us.Elements()...)
	s.us.Add(p)

	closed := s.checkInf(p)

	if !closed {
		s.populateUQFrom(p, oldUs)
	}

	// Supremum revalidation: a lower cover of p newly explained by p
	// being TRUE may now complete a supremum.
	for c := range p.Downs() {
		if s.ds.GE(c) {
			s.checkSup(c)
		}
	}

	return true, nil
}

// MarkFalse labels p FALSE. Symmetric dual of MarkTrue.
func (s *Store) MarkFalse(p point.Point) (bool, error) {
	if err := s.bindDimension(p); err != nil {
		return false, err
	}
	if s.us.LE(p) {
		return false, withPoint(ErrAlreadyDecidedOtherWay, p.String())
	}
	if s.ds.GE(p) {
		return false, nil
	}

	s.invalidateWalk()

	oldDs := append([]point.Point(nil), s.ds.Elements()...)
	s.ds.Add(p)

	closed := s.checkSup(p)

	if !closed {
		s.populateDQFrom(p, oldDs)
	}

	for c := range p.Ups() {
		if s.us.LE(c) {
			s.checkInf(c)
		}
	}

	return true, nil
}

// MarkImprobable labels p IMPROBABLE: a caller-issued carve-out for a
// point the oracle refuses to decide. It reports whether p was newly
// marked (false if already IMPROBABLE), and fails with
// ErrAlreadyDecidedOtherWay if p is already TRUE or FALSE.
func (s *Store) MarkImprobable(p point.Point) (bool, error) {
	if err := s.bindDimension(p); err != nil {
		return false, err
	}
	if s.us.LE(p) || s.ds.GE(p) {
		return false, withPoint(ErrAlreadyDecidedOtherWay, p.String())
	}
	if _, ok := s.zs[p.Key()]; ok {
		return false, nil
	}

	s.invalidateWalk()
	s.zs[p.Key()] = p

	upBonus := bonus(s.n, p.Popcount(), s.tuning.ImprobableUpDivisor)
	downBonus := bonus(uint(p.Popcount()), 0, s.tuning.ImprobableDownDivisor)

	for c := range p.Downs() {
		if s.skipQueued(c) {
			continue
		}
		pushU(&s.uq, c, upBonus)
	}
	for c := range p.Ups() {
		if s.skipQueued(c) {
			continue
		}
		pushD(&s.dq, s.n, c, downBonus)
	}

	for c := range p.Ups() {
		if s.us.LE(c) {
			s.checkInf(c)
		}
	}
	for c := range p.Downs() {
		if s.ds.GE(c) {
			s.checkSup(c)
		}
	}

	return true, nil
}

// bonus computes -(x)/divisor - 1, where x = n - extra (used for both
// the uq bonus, x = N - popcount(p), and the dq bonus, x = popcount(p)
// with n=popcount(p), extra=0).
func bonus(n uint, extra int, divisor int) int64 {
	x := int64(n) - int64(extra)
	return -(x / int64(divisor)) - 1
}

// skipQueued reports whether a candidate should be dropped rather than
// queued: already decided, or already IMPROBABLE.
func (s *Store) skipQueued(c point.Point) bool {
	if s.us.LE(c) || s.ds.GE(c) {
		return true
	}
	_, improbable := s.zs[c.Key()]
	return improbable
}

// populateUQFrom enqueues the upward-probe candidates spec.md 4.3.1 step
// 6 names after p is freshly marked TRUE and not yet an infimum: the meet
// of p with each previously-known TRUE point, the meet of p with all of
// them collapsed, and every lower cover of p. All carry bonus 0.
func (s *Store) populateUQFrom(p point.Point, oldUs []point.Point) {
	for _, u := range oldUs {
		s.pushIfFresh(&s.uq, point.Meet(p, u), true)
	}
	if len(oldUs) > 0 {
		acc := oldUs[0]
		for _, u := range oldUs[1:] {
			acc = point.Meet(acc, u)
		}
		s.pushIfFresh(&s.uq, point.Meet(p, acc), true)
	}
	for c := range p.Downs() {
		s.pushIfFresh(&s.uq, c, true)
	}
}

// populateDQFrom is the dual of populateUQFrom for mark_false.
func (s *Store) populateDQFrom(p point.Point, oldDs []point.Point) {
	for _, d := range oldDs {
		s.pushIfFresh(&s.dq, point.Join(p, d), false)
	}
	if len(oldDs) > 0 {
		acc := oldDs[0]
		for _, d := range oldDs[1:] {
			acc = point.Join(acc, d)
		}
		s.pushIfFresh(&s.dq, point.Join(p, acc), false)
	}
	for c := range p.Ups() {
		s.pushIfFresh(&s.dq, c, false)
	}
}

// pushIfFresh pushes c onto the upward (up=true) or downward (up=false)
// queue with bonus 0, dropping it if it's already FALSE/TRUE or
// IMPROBABLE (spec.md: "drop any candidate already in ds or zs" / the
// dual for dq).
func (s *Store) pushIfFresh(q *priorityQueue, c point.Point, up bool) {
	if up {
		if s.ds.GE(c) {
			return
		}
	} else {
		if s.us.LE(c) {
			return
		}
	}
	if _, improbable := s.zs[c.Key()]; improbable {
		return
	}
	if up {
		pushU(q, c, 0)
	} else {
		pushD(q, s.n, c, 0)
	}
}

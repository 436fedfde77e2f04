package point

import "iter"

// Ups returns the lazy, restartable sequence of upper covers of p: every
// point obtained by flipping exactly one 0-bit of p to 1, in ascending
// bit-index order. Cardinality is N - Popcount(p).
func (p Point) Ups() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := uint(0); i < p.n; i++ {
			if p.bit(i) {
				continue
			}
			c := p.clone()
			c.w[i/wordBits] |= 1 << (i % wordBits)
			if !yield(c) {
				return
			}
		}
	}
}

// Downs returns the lazy, restartable sequence of lower covers of p: every
// point obtained by flipping exactly one 1-bit of p to 0, in ascending
// bit-index order. Cardinality is Popcount(p).
func (p Point) Downs() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := uint(0); i < p.n; i++ {
			if !p.bit(i) {
				continue
			}
			c := p.clone()
			c.w[i/wordBits] &^= 1 << (i % wordBits)
			if !yield(c) {
				return
			}
		}
	}
}

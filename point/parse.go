package point

import "strings"

// Parse reads a textual bit string and returns the Point of dimension n it
// encodes. Characters are read left to right; anything other than '0'/'1'
// is ignored. The k-th '0'/'1' character maps to bit index k (bit-0-first
// textual order). Reading stops after n bits have been consumed or at
// end of input, whichever comes first — a short input simply leaves the
// remaining high bits at 0.
func Parse(s string, n uint) Point {
	p := Bottom(n)
	var i uint
	for _, r := range s {
		if i >= n {
			break
		}
		switch r {
		case '1':
			p.w[i/wordBits] |= 1 << (i % wordBits)
			i++
		case '0':
			i++
		}
	}
	return p
}

// String renders p as N characters of '0'/'1', in bit-index order (bit 0
// first), satisfying Parse(p.String(), p.N()).Equal(p).
func (p Point) String() string {
	var b strings.Builder
	b.Grow(int(p.n))
	for i := uint(0); i < p.n; i++ {
		if p.bit(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

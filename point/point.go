// Package point implements Point, a fixed-width bit vector ordered by the
// Boolean lattice B^N (x <= y iff every set bit of x is also set in y).
//
// Storage is a packed []uint64, little-endian bit order within each word.
// Any unused high bits of the final word are always kept zero (see
// Invariant). The zero Point (N == 0) is the null point, used as a
// sentinel for "no point" / "no suggestion".
package point

import (
	"fmt"
	"hash/fnv"
	"math/bits"
)

const wordBits = 64

// Point is a length-N bit vector, the fundamental lattice element of B^N.
// The zero value is the null point (N == 0): Valid reports false for it,
// Equal still compares it, and it carries no bits.
type Point struct {
	n uint
	w []uint64
}

// wordsNeeded returns the number of uint64 words required to hold n bits.
func wordsNeeded(n uint) int {
	return int((n + wordBits - 1) / wordBits)
}

// highWordMask returns the bitmask of the high word that keeps only the low n%64
// (or all 64, if n is a multiple of 64) bits set.
func highWordMask(n uint) uint64 {
	if n%wordBits == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << (n % wordBits)) - 1
}

// canon clears any bits beyond n in the final word (Invariant P1).
func (p Point) canon() Point {
	if p.n == 0 || len(p.w) == 0 {
		return p
	}
	p.w[len(p.w)-1] &= highWordMask(p.n)
	return p
}

// New builds a Point of dimension n from explicit word contents, masking
// any bits beyond n. Mostly useful for tests; production code should use
// Top, Bottom or Parse.
func New(n uint, words ...uint64) Point {
	p := Point{n: n, w: make([]uint64, wordsNeeded(n))}
	copy(p.w, words)
	return p.canon()
}

// Top returns the all-ones point of dimension n (the lattice maximum).
func Top(n uint) Point {
	p := Point{n: n, w: make([]uint64, wordsNeeded(n))}
	for i := range p.w {
		p.w[i] = ^uint64(0)
	}
	return p.canon()
}

// Bottom returns the all-zeros point of dimension n (the lattice minimum).
func Bottom(n uint) Point {
	return Point{n: n, w: make([]uint64, wordsNeeded(n))}
}

// N returns the point's dimension.
func (p Point) N() uint { return p.n }

// Valid reports whether p carries a dimension (false only for the zero
// value / null point).
func (p Point) Valid() bool { return p.n != 0 }

// bit tests bit i of p without bounds checking beyond the slice length.
func (p Point) bit(i uint) bool {
	return p.w[i/wordBits]&(1<<(i%wordBits)) != 0
}

// clone returns an independent copy of p, safe to mutate.
func (p Point) clone() Point {
	q := Point{n: p.n, w: make([]uint64, len(p.w))}
	copy(q.w, p.w)
	return q
}

// requireSameDim panics if a and b have different dimensions: a mismatch
// here is always a programming error, never a runtime condition a caller
// recovers from (decision.Store validates N before it ever calls into
// point, and returns ErrDimensionMismatch instead of letting this panic
// surface).
func requireSameDim(a, b Point) {
	if a.n != b.n {
		panic(fmt.Sprintf("point: dimension mismatch: %d vs %d", a.n, b.n))
	}
}

// Meet returns the coordinate-wise AND of a and b (the lattice infimum).
func Meet(a, b Point) Point {
	requireSameDim(a, b)
	r := Point{n: a.n, w: make([]uint64, len(a.w))}
	for i := range r.w {
		r.w[i] = a.w[i] & b.w[i]
	}
	return r.canon()
}

// Join returns the coordinate-wise OR of a and b (the lattice supremum).
func Join(a, b Point) Point {
	requireSameDim(a, b)
	r := Point{n: a.n, w: make([]uint64, len(a.w))}
	for i := range r.w {
		r.w[i] = a.w[i] | b.w[i]
	}
	return r.canon()
}

// LE reports whether a <= b, i.e. every set bit of a is set in b.
func (a Point) LE(b Point) bool {
	requireSameDim(a, b)
	for i := range a.w {
		if a.w[i]&^b.w[i] != 0 {
			return false
		}
	}
	return true
}

// GE reports whether a >= b.
func (a Point) GE(b Point) bool { return b.LE(a) }

// Equal reports whether a and b are the same point (same N, same bits).
func (a Point) Equal(b Point) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.w {
		if a.w[i] != b.w[i] {
			return false
		}
	}
	return true
}

// Popcount returns the number of set bits of p (its rank/"hier" in the
// lattice).
func (p Point) Popcount() int {
	c := 0
	for _, word := range p.w {
		c += bits.OnesCount64(word)
	}
	return c
}

// Hash returns a deterministic hash of p, a pure function of its
// canonicalized word vector (so Equal(a,b) implies Hash(a) == Hash(b)).
func Hash(p Point) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, word := range p.w {
		for i := range buf {
			buf[i] = byte(word >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Less reports whether a sorts before b under lexicographic comparison of
// the underlying word vector: compare a.w[0] and b.w[0] as uint64s, and on
// a tie move to the next word, and so on. This is the tie-break order spec
// section 4.3.3 and the original hier_cmp specify, distinct from byte
// order within a word.
func Less(a, b Point) bool {
	requireSameDim(a, b)
	for i := range a.w {
		if a.w[i] != b.w[i] {
			return a.w[i] < b.w[i]
		}
	}
	return false
}

// Key returns a canonical, comparable string encoding of p's word vector,
// suitable as a map key (Point itself holds a slice and so is not
// comparable). For points of the same dimension, Equal(a, b) iff
// a.Key() == b.Key(); the key does not encode N.
func (p Point) Key() string {
	buf := make([]byte, len(p.w)*8)
	for i, word := range p.w {
		for j := 0; j < 8; j++ {
			buf[i*8+j] = byte(word >> (8 * j))
		}
	}
	return string(buf)
}

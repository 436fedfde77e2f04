package decision

import (
	"errors"
	"fmt"
)

// ErrAlreadyDecidedOtherWay is returned when a label would contradict an
// already-decided point (spec: I1, "contradictory label").
var ErrAlreadyDecidedOtherWay = errors.New("decision: point already decided the other way")

// ErrDimensionMismatch is returned when a point's dimension disagrees
// with the store's session dimension (fixed by the first labeled point).
var ErrDimensionMismatch = errors.New("decision: dimension mismatch")

// withPoint wraps a sentinel error with the offending point's printed
// form, so errors.Is still matches while humans reading logs see the
// bit string responsible.
func withPoint(err error, s string) error {
	return fmt.Errorf("%w: %s", err, s)
}

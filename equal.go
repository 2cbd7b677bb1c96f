package dq

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Equal reports whether both parts of d and e are exactly equal.
func (d DualQuaternion) Equal(e DualQuaternion) bool {
	return d == e
}

// EqualApprox reports whether every component of d and e is equal
// within the absolute tolerance eps or the relative tolerance relEps.
func (d DualQuaternion) EqualApprox(e DualQuaternion, eps, relEps float64) bool {
	return quatEqualApprox(d.Real, e.Real, eps, relEps) &&
		quatEqualApprox(d.Dual, e.Dual, eps, relEps)
}

func quatEqualApprox(a, b quat.Number, eps, relEps float64) bool {
	return scalar.EqualWithinAbsOrRel(a.Real, b.Real, eps, relEps) &&
		scalar.EqualWithinAbsOrRel(a.Imag, b.Imag, eps, relEps) &&
		scalar.EqualWithinAbsOrRel(a.Jmag, b.Jmag, eps, relEps) &&
		scalar.EqualWithinAbsOrRel(a.Kmag, b.Kmag, eps, relEps)
}

// Compare orders d and e by Magnitude. It returns -1, 0 or +1 and
// ok=true when the values are ordered. The order is partial: ok is
// false when either magnitude is NaN, and when the magnitudes tie
// but d and e are different values.
func (d DualQuaternion) Compare(e DualQuaternion) (cmp int, ok bool) {
	md, me := d.Magnitude(), e.Magnitude()
	switch {
	case md < me:
		return -1, true
	case md > me:
		return 1, true
	case md == me && d == e:
		return 0, true
	}
	return 0, false
}

// Package dq implements dual quaternion algebra. A dual quaternion
//
//	Real + ε*Dual, with ε² = 0
//
// represents a rigid motion in 3D space when Real has unit norm and is
// orthogonal to Dual. Composition of motions is multiplication, and
// screw linear interpolation is built from the exponential and logarithm.
//
// Quaternion multiplication does not commute. Throughout this package
// derivative factors of lifted functions are multiplied on the left of
// the dual part, and operations that divide return an error wrapping
// ErrSingularDivisor instead of producing Inf or NaN.
package dq

import (
	"github.com/soypat/dq/internal/d4"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// DualQuaternion is the dual number Real + ε*Dual with quaternion
// components. The zero value is the additive identity.
type DualQuaternion struct {
	Real quat.Number
	Dual quat.Number
}

// New returns the dual quaternion re + ε*du.
func New(re, du quat.Number) DualQuaternion {
	return DualQuaternion{Real: re, Dual: du}
}

// FromScalar returns the dual quaternion with real part v and no dual part.
func FromScalar(v float64) DualQuaternion {
	return DualQuaternion{Real: d4.Lift(v)}
}

// FromQuat returns the dual quaternion with real part q and no dual part.
func FromQuat(q quat.Number) DualQuaternion {
	return DualQuaternion{Real: q}
}

// Zero returns the additive identity.
func Zero() DualQuaternion { return DualQuaternion{} }

// One returns the multiplicative identity, which is also
// the rigid motion that neither rotates nor translates.
func One() DualQuaternion { return FromScalar(1) }

// IsZero reports whether both parts of d are zero.
func (d DualQuaternion) IsZero() bool { return d == DualQuaternion{} }

// FromGonum converts a gonum dual quaternion.
func FromGonum(n dualquat.Number) DualQuaternion {
	return DualQuaternion{Real: n.Real, Dual: n.Dual}
}

// Gonum returns d as a gonum dual quaternion.
func (d DualQuaternion) Gonum() dualquat.Number {
	return dualquat.Number{Real: d.Real, Dual: d.Dual}
}

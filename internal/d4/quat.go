package d4

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quaternion routines missing from gonum's quat package.
// Division is split in two since quaternion multiplication
// does not commute: RightDiv solves x*b = a, LeftDiv solves b*x = a.

// safeMin is the "safe minimum", that is, the lowest number such that
// 1/safeMin does not overflow, or also the smallest normal number.
// For IEEE this is 2^{-1022}.
const safeMin = 0x1p-1022

// Lift returns the real quaternion x + 0i + 0j + 0k.
func Lift(x float64) quat.Number {
	return quat.Number{Real: x}
}

// FromVec returns the pure imaginary quaternion with imaginary part v.
func FromVec(v r3.Vec) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// Imag returns the imaginary part of q as a vector.
func Imag(q quat.Number) r3.Vec {
	return r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// Dot returns the four dimensional inner product of p and q.
func Dot(p, q quat.Number) float64 {
	return p.Real*q.Real + p.Imag*q.Imag + p.Jmag*q.Jmag + p.Kmag*q.Kmag
}

// Norm2 returns the squared norm of q.
func Norm2(q quat.Number) float64 { return Dot(q, q) }

// Squared returns q*q.
func Squared(q quat.Number) quat.Number { return quat.Mul(q, q) }

// Neg returns -q.
func Neg(q quat.Number) quat.Number { return quat.Scale(-1, q) }

// IsSingular reports whether q has no usable inverse. Quaternions with
// a squared norm below the smallest normal float are considered singular
// since the reciprocal of their norm overflows. NaN is not singular.
func IsSingular(q quat.Number) bool {
	return Norm2(q) < safeMin
}

// Inv returns the multiplicative inverse of q. ok is false if q is singular.
func Inv(q quat.Number) (inv quat.Number, ok bool) {
	if IsSingular(q) {
		return quat.Number{}, false
	}
	return quat.Scale(1/Norm2(q), quat.Conj(q)), true
}

// RightDiv returns x such that x*b = a. ok is false if b is singular.
func RightDiv(a, b quat.Number) (x quat.Number, ok bool) {
	binv, ok := Inv(b)
	if !ok {
		return quat.Number{}, false
	}
	return quat.Mul(a, binv), true
}

// LeftDiv returns x such that b*x = a. ok is false if b is singular.
func LeftDiv(a, b quat.Number) (x quat.Number, ok bool) {
	binv, ok := Inv(b)
	if !ok {
		return quat.Number{}, false
	}
	return quat.Mul(binv, a), true
}

// EqualWithin reports whether every component of a and b differ by at most tol.
func EqualWithin(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Real-b.Real) <= tol &&
		math.Abs(a.Imag-b.Imag) <= tol &&
		math.Abs(a.Jmag-b.Jmag) <= tol &&
		math.Abs(a.Kmag-b.Kmag) <= tol
}

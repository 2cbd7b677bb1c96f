package dq

import (
	"math"

	"github.com/soypat/dq/internal/d4"
	"gonum.org/v1/gonum/num/quat"
)

// Conjugate returns the quaternion conjugate of both parts, conj(Real) + ε*conj(Dual).
// It reverses products: Conjugate(d*e) = Conjugate(e)*Conjugate(d).
func (d DualQuaternion) Conjugate() DualQuaternion {
	return DualQuaternion{Real: quat.Conj(d.Real), Dual: quat.Conj(d.Dual)}
}

// QuatConjugate returns the quaternion-only conjugate. It is the same value
// as Conjugate and exists to name the conjugation explicitly next to DualConjugate.
func (d DualQuaternion) QuatConjugate() DualQuaternion {
	return d.Conjugate()
}

// DualConjugate returns the dual number conjugate Real - ε*Dual.
func (d DualQuaternion) DualConjugate() DualQuaternion {
	return DualQuaternion{Real: d.Real, Dual: d4.Neg(d.Dual)}
}

// Magnitude returns the squared norm of the real part, Real·Real.
func (d DualQuaternion) Magnitude() float64 {
	return d4.Norm2(d.Real)
}

// Orthogonality returns Real·Dual, half the derivative of the squared
// norm along the dual part. It is zero for rigid motions.
func (d DualQuaternion) Orthogonality() float64 {
	return d4.Dot(d.Real, d.Dual)
}

// Dot returns the inner product of the real parts of d and e.
func (d DualQuaternion) Dot(e DualQuaternion) float64 {
	return d4.Dot(d.Real, e.Real)
}

// Scale returns 1/Magnitude(), the factor that turns conj(Real) into Real⁻¹.
// It is +Inf when the real part is zero.
func (d DualQuaternion) Scale() float64 {
	return 1 / d.Magnitude()
}

// Inv returns Conjugate(d)/Magnitude(d). For rigid motions this is
// Conjugate(d) and the product d*Inv(d) is One.
func (d DualQuaternion) Inv() (DualQuaternion, error) {
	inv, err := d.Conjugate().DivScalar(d.Magnitude())
	if err != nil {
		return DualQuaternion{}, singular("Inv")
	}
	return inv, nil
}

// Normalize returns d/Magnitude(d). See Unit for the projection
// of d onto the set of rigid motions.
func (d DualQuaternion) Normalize() (DualQuaternion, error) {
	n, err := d.DivScalar(d.Magnitude())
	if err != nil {
		return DualQuaternion{}, singular("Normalize")
	}
	return n, nil
}

// Unit returns the rigid motion closest to d: the real part is scaled
// to unit norm and the component of the dual part parallel to it is removed.
func (d DualQuaternion) Unit() (DualQuaternion, error) {
	if d4.IsSingular(d.Real) {
		return DualQuaternion{}, singular("Unit")
	}
	inv := 1 / math.Sqrt(d.Magnitude())
	r := quat.Scale(inv, d.Real)
	du := quat.Scale(inv, d.Dual)
	du = quat.Sub(du, quat.Scale(d4.Dot(r, du), r))
	return DualQuaternion{Real: r, Dual: du}, nil
}

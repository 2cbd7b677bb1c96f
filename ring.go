package dq

import (
	"github.com/soypat/dq/internal/d4"
	"gonum.org/v1/gonum/num/quat"
)

// Add returns d + e.
func (d DualQuaternion) Add(e DualQuaternion) DualQuaternion {
	return DualQuaternion{
		Real: quat.Add(d.Real, e.Real),
		Dual: quat.Add(d.Dual, e.Dual),
	}
}

// Sub returns d - e.
func (d DualQuaternion) Sub(e DualQuaternion) DualQuaternion {
	return DualQuaternion{
		Real: quat.Sub(d.Real, e.Real),
		Dual: quat.Sub(d.Dual, e.Dual),
	}
}

// Mul returns the product d*e. When d and e are rigid motions
// the product is the motion e followed by d.
func (d DualQuaternion) Mul(e DualQuaternion) DualQuaternion {
	return DualQuaternion{
		Real: quat.Mul(d.Real, e.Real),
		Dual: quat.Add(quat.Mul(d.Real, e.Dual), quat.Mul(d.Dual, e.Real)),
	}
}

// Div returns x such that x*e = d:
//
//	x.Real = d.Real * e.Real⁻¹
//	x.Dual = (d.Dual - x.Real*e.Dual) * e.Real⁻¹
//
// When e.Real and e.Dual commute, as for scalar divisors, the dual part
// reduces to (d.Dual*e.Real - d.Real*e.Dual) * (e.Real*e.Real)⁻¹.
// An error wrapping ErrSingularDivisor is returned if e.Real has zero norm.
func (d DualQuaternion) Div(e DualQuaternion) (DualQuaternion, error) {
	re, ok := d4.RightDiv(d.Real, e.Real)
	if !ok {
		return DualQuaternion{}, singular("Div")
	}
	du, _ := d4.RightDiv(quat.Sub(d.Dual, quat.Mul(re, e.Dual)), e.Real)
	return DualQuaternion{Real: re, Dual: du}, nil
}

// Neg returns -d.
func (d DualQuaternion) Neg() DualQuaternion {
	return DualQuaternion{Real: d4.Neg(d.Real), Dual: d4.Neg(d.Dual)}
}

// AddScalar returns d + v.
func (d DualQuaternion) AddScalar(v float64) DualQuaternion {
	return d.Add(FromScalar(v))
}

// SubScalar returns d - v.
func (d DualQuaternion) SubScalar(v float64) DualQuaternion {
	return d.Sub(FromScalar(v))
}

// MulScalar returns d*v.
func (d DualQuaternion) MulScalar(v float64) DualQuaternion {
	return d.Mul(FromScalar(v))
}

// DivScalar returns d/v. An error wrapping ErrSingularDivisor is returned if v is zero.
func (d DualQuaternion) DivScalar(v float64) (DualQuaternion, error) {
	return d.Div(FromScalar(v))
}

// Squared returns d*d.
func (d DualQuaternion) Squared() DualQuaternion {
	return d.Mul(d)
}

// Powi returns d raised to the integer power n by repeated squaring.
// Negative powers raise Inv(d), which is the true inverse only for
// rigid motions, and fail with ErrSingularDivisor when d.Real is zero.
func (d DualQuaternion) Powi(n int) (DualQuaternion, error) {
	u := uint(n)
	if n < 0 {
		inv, err := d.Inv()
		if err != nil {
			return DualQuaternion{}, err
		}
		// -(n+1) cannot overflow, even for the smallest int.
		d, u = inv, uint(-(n+1))+1
	}
	result := One()
	for ; u > 0; u >>= 1 {
		if u&1 == 1 {
			result = result.Mul(d)
		}
		d = d.Squared()
	}
	return result, nil
}

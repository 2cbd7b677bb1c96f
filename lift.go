package dq

import (
	"github.com/soypat/dq/internal/d4"
	"gonum.org/v1/gonum/num/quat"
)

// Analytic functions are extended to dual quaternions with the
// dual number rule
//
//	f(re + ε*du) = f(re) + ε*f'(re)*du
//
// The derivative factor always multiplies du from the left. Mixing
// sides between a function and its inverse breaks round trips such as
// Sin(Asin(d)) == d, so every function goes through lift or liftDiv.

// lift returns f(re) + ε*df*du where f and df are f(re) and f'(re).
func (d DualQuaternion) lift(f, df quat.Number) DualQuaternion {
	return DualQuaternion{Real: f, Dual: quat.Mul(df, d.Dual)}
}

// liftDiv is lift for functions whose derivative is 1/g(re). The dual
// part is the x that solves g*x = du.
func (d DualQuaternion) liftDiv(op string, f, g quat.Number) (DualQuaternion, error) {
	du, ok := d4.LeftDiv(d.Dual, g)
	if !ok {
		return DualQuaternion{}, singular(op)
	}
	return DualQuaternion{Real: f, Dual: du}, nil
}

var one = d4.Lift(1)

// Exp returns e**d.
func (d DualQuaternion) Exp() DualQuaternion {
	e := quat.Exp(d.Real)
	return d.lift(e, e)
}

// Ln returns the natural logarithm of d. The dual part is
// conj(re)*du scaled by 1/|re|², that is re⁻¹*du.
func (d DualQuaternion) Ln() (DualQuaternion, error) {
	return d.liftDiv("Ln", quat.Log(d.Real), d.Real)
}

// Log returns the logarithm of d in the given base, Ln(d)/Ln(base).
func (d DualQuaternion) Log(base DualQuaternion) (DualQuaternion, error) {
	num, err := d.Ln()
	if err != nil {
		return DualQuaternion{}, err
	}
	den, err := base.Ln()
	if err != nil {
		return DualQuaternion{}, err
	}
	return num.Div(den)
}

// Pow returns d**t computed as Exp(t*Ln(d)).
func (d DualQuaternion) Pow(t float64) (DualQuaternion, error) {
	l, err := d.Ln()
	if err != nil {
		return DualQuaternion{}, err
	}
	return l.MulScalar(t).Exp(), nil
}

// Sqrt returns the principal square root of d.
func (d DualQuaternion) Sqrt() (DualQuaternion, error) {
	return d.Pow(0.5)
}

// Sin returns the sine of d.
func (d DualQuaternion) Sin() DualQuaternion {
	return d.lift(quat.Sin(d.Real), quat.Cos(d.Real))
}

// Cos returns the cosine of d.
func (d DualQuaternion) Cos() DualQuaternion {
	return d.lift(quat.Cos(d.Real), d4.Neg(quat.Sin(d.Real)))
}

// SinCos returns Sin(d) and Cos(d).
func (d DualQuaternion) SinCos() (sin, cos DualQuaternion) {
	s, c := quat.Sin(d.Real), quat.Cos(d.Real)
	return d.lift(s, c), d.lift(c, d4.Neg(s))
}

// Tan returns the tangent of d.
func (d DualQuaternion) Tan() DualQuaternion {
	t := quat.Tan(d.Real)
	return d.lift(t, quat.Add(d4.Squared(t), one))
}

// Asin returns the inverse sine of d.
func (d DualQuaternion) Asin() (DualQuaternion, error) {
	g := quat.Sqrt(quat.Sub(one, d4.Squared(d.Real)))
	return d.liftDiv("Asin", quat.Asin(d.Real), g)
}

// Acos returns the inverse cosine of d.
func (d DualQuaternion) Acos() (DualQuaternion, error) {
	g := quat.Sqrt(quat.Sub(one, d4.Squared(d.Real)))
	return d.liftDiv("Acos", quat.Acos(d.Real), d4.Neg(g))
}

// Atan returns the inverse tangent of d.
func (d DualQuaternion) Atan() (DualQuaternion, error) {
	g := quat.Add(d4.Squared(d.Real), one)
	return d.liftDiv("Atan", quat.Atan(d.Real), g)
}

// Atan2 returns Atan(d/e).
func (d DualQuaternion) Atan2(e DualQuaternion) (DualQuaternion, error) {
	q, err := d.Div(e)
	if err != nil {
		return DualQuaternion{}, err
	}
	return q.Atan()
}

// Sinh returns the hyperbolic sine of d.
func (d DualQuaternion) Sinh() DualQuaternion {
	return d.lift(quat.Sinh(d.Real), quat.Cosh(d.Real))
}

// Cosh returns the hyperbolic cosine of d.
func (d DualQuaternion) Cosh() DualQuaternion {
	return d.lift(quat.Cosh(d.Real), quat.Sinh(d.Real))
}

// Tanh returns the hyperbolic tangent of d.
func (d DualQuaternion) Tanh() DualQuaternion {
	t := quat.Tanh(d.Real)
	return d.lift(t, quat.Sub(one, d4.Squared(t)))
}

// Asinh returns the inverse hyperbolic sine of d.
func (d DualQuaternion) Asinh() (DualQuaternion, error) {
	g := quat.Sqrt(quat.Add(d4.Squared(d.Real), one))
	return d.liftDiv("Asinh", quat.Asinh(d.Real), g)
}

// Acosh returns the inverse hyperbolic cosine of d.
// The derivative uses sqrt(re-1)*sqrt(re+1) in place of sqrt(re²-1)
// so that it matches Sinh(Acosh(re)) on the principal branch.
func (d DualQuaternion) Acosh() (DualQuaternion, error) {
	g := quat.Mul(quat.Sqrt(quat.Sub(d.Real, one)), quat.Sqrt(quat.Add(d.Real, one)))
	return d.liftDiv("Acosh", quat.Acosh(d.Real), g)
}

// Atanh returns the inverse hyperbolic tangent of d.
func (d DualQuaternion) Atanh() (DualQuaternion, error) {
	g := quat.Sub(one, d4.Squared(d.Real))
	return d.liftDiv("Atanh", quat.Atanh(d.Real), g)
}

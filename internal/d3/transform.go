package d3

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a 3D homogeneous transformation.
// The zero value of Transform is the identity transform.
type Transform struct {
	// in order to make the zero value of Transform represent the identity
	// transform we store it with the identity matrix subtracted.
	// These diagonal elements are subtracted such that
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1, d33 = x33-1
	// where x00, x11, x22, x33 are the matrix diagonal elements.
	// We can then check for identity in if blocks like so:
	//  if T == (Transform{})
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
	x30, x31, x32, d33 float64
}

// NewTransform returns a new Transform type and populates its elements
// with values passed in row-major form. It panics if a does not hold 16 values.
func NewTransform(a []float64) Transform {
	if len(a) != 16 {
		panic("Transform is initialized with 16 values")
	}
	return Transform{
		d00: a[0] - 1, x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], d11: a[5] - 1, x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], d22: a[10] - 1, x23: a[11],
		x30: a[12], x31: a[13], x32: a[14], d33: a[15] - 1,
	}
}

// NewRigid creates the transform that rotates by the unit quaternion q
// and then translates to position. The identity Transform is
//  NewRigid(quat.Number{Real: 1}, r3.Vec{})
func NewRigid(q quat.Number, position r3.Vec) Transform {
	x2 := q.Imag + q.Imag
	y2 := q.Jmag + q.Jmag
	z2 := q.Kmag + q.Kmag
	xx := q.Imag * x2
	yy := q.Jmag * y2
	zz := q.Kmag * z2
	xy := q.Imag * y2
	xz := q.Imag * z2
	yz := q.Jmag * z2
	wx := q.Real * x2
	wy := q.Real * y2
	wz := q.Real * z2

	var t Transform
	t.d00 = -(yy + zz)
	t.x10 = xy + wz
	t.x20 = xz - wy

	t.x01 = xy - wz
	t.d11 = -(xx + zz)
	t.x21 = yz + wx

	t.x02 = xz + wy
	t.x12 = yz - wx
	t.d22 = -(xx + yy)

	t.x03 = position.X
	t.x13 = position.Y
	t.x23 = position.Z
	return t
}

// Rigid decomposes t into a unit quaternion rotation q and a translation.
// ok is false if the rotation block of t is not orthonormal with
// positive determinant or the bottom row is not (0,0,0,1), within tol.
// Transforms with NaN or infinite elements are never rigid.
func (t Transform) Rigid(tol float64) (q quat.Number, position r3.Vec, ok bool) {
	for _, v := range t.SliceCopy() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return q, position, false
		}
	}
	if math.Abs(t.x30) > tol || math.Abs(t.x31) > tol || math.Abs(t.x32) > tol || math.Abs(t.d33) > tol {
		return q, position, false
	}
	c0 := r3.Vec{X: t.d00 + 1, Y: t.x10, Z: t.x20}
	c1 := r3.Vec{X: t.x01, Y: t.d11 + 1, Z: t.x21}
	c2 := r3.Vec{X: t.x02, Y: t.x12, Z: t.d22 + 1}
	if math.Abs(r3.Norm2(c0)-1) > tol || math.Abs(r3.Norm2(c1)-1) > tol || math.Abs(r3.Norm2(c2)-1) > tol ||
		math.Abs(r3.Dot(c0, c1)) > tol || math.Abs(r3.Dot(c0, c2)) > tol || math.Abs(r3.Dot(c1, c2)) > tol ||
		math.Abs(t.Det()-1) > tol {
		return q, position, false
	}
	return t.rotation(), r3.Vec{X: t.x03, Y: t.x13, Z: t.x23}, true
}

// rotation returns the unit quaternion of the rotation block using
// the branch with the largest divisor for numerical stability.
// http://www.euclideanspace.com/maths/geometry/rotations/conversions/matrixToQuaternion/index.htm
func (t Transform) rotation() quat.Number {
	m00, m11, m22 := t.d00+1, t.d11+1, t.d22+1
	var q quat.Number
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1)
		q = quat.Number{Real: 0.25 / s, Imag: (t.x21 - t.x12) * s, Jmag: (t.x02 - t.x20) * s, Kmag: (t.x10 - t.x01) * s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{Real: (t.x21 - t.x12) / s, Imag: 0.25 * s, Jmag: (t.x01 + t.x10) / s, Kmag: (t.x02 + t.x20) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{Real: (t.x02 - t.x20) / s, Imag: (t.x01 + t.x10) / s, Jmag: 0.25 * s, Kmag: (t.x12 + t.x21) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{Real: (t.x10 - t.x01) / s, Imag: (t.x02 + t.x20) / s, Jmag: (t.x12 + t.x21) / s, Kmag: 0.25 * s}
	}
	// normalize in order to guarantee unit quaternion
	return quat.Scale(1/quat.Abs(q), q)
}

// Det returns the determinant of the rotation block of an affine Transform.
// The bottom row is assumed to be (0,0,0,1).
func (t Transform) Det() float64 {
	x00 := t.d00 + 1
	x11 := t.d11 + 1
	x22 := t.d22 + 1
	return x00*(x11*x22-t.x12*t.x21) -
		t.x01*(t.x10*x22-t.x12*t.x20) +
		t.x02*(t.x10*t.x21-x11*t.x20)
}

// SliceCopy returns a copy of the Transform's data
// in row major storage format. It returns 16 elements.
func (t Transform) SliceCopy() []float64 {
	return []float64{
		t.d00 + 1, t.x01, t.x02, t.x03,
		t.x10, t.d11 + 1, t.x12, t.x13,
		t.x20, t.x21, t.d22 + 1, t.x23,
		t.x30, t.x31, t.x32, t.d33 + 1,
	}
}

package dq

import (
	"github.com/soypat/dq/internal/d3"
	"github.com/soypat/dq/internal/d4"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// rigidTol is the tolerance used by FromMatrix to accept a matrix as rigid.
const rigidTol = 1e-6

// FromRotation returns the rigid motion that applies the unit quaternion
// rotation and then translates by translation:
//
//	Real = rotation
//	Dual = ½ * translation * rotation
func FromRotation(rotation quat.Number, translation r3.Vec) DualQuaternion {
	return DualQuaternion{
		Real: rotation,
		Dual: quat.Scale(0.5, quat.Mul(d4.FromVec(translation), rotation)),
	}
}

// FromTranslation returns the pure translation by t.
func FromTranslation(t r3.Vec) DualQuaternion {
	return FromRotation(one, t)
}

// FromAxisAngle returns the pure rotation by angle radians
// counter-clockwise around axis. axis need not be normalized.
func FromAxisAngle(axis r3.Vec, angle float64) DualQuaternion {
	return FromQuat(quat.Number(r3.NewRotation(angle, axis)))
}

// Rotation returns the rotation part of a rigid motion, the real part of d.
func (d DualQuaternion) Rotation() quat.Number {
	return d.Real
}

// Translation returns the translation of the rigid motion d,
// 2*Imag(Dual*conj(Real)). Real is assumed to have unit norm.
func (d DualQuaternion) Translation() r3.Vec {
	return r3.Scale(2, d4.Imag(quat.Mul(d.Dual, quat.Conj(d.Real))))
}

// TransformPoint applies the rigid motion d to p. It rotates and then translates.
func (d DualQuaternion) TransformPoint(p r3.Vec) r3.Vec {
	return r3.Add(r3.Rotation(d.Real).Rotate(p), d.Translation())
}

// Matrix returns the 4x4 homogeneous matrix of the rigid motion d
// acting on column vectors.
func (d DualQuaternion) Matrix() *mat.Dense {
	t := d3.NewRigid(d.Real, d.Translation())
	return mat.NewDense(4, 4, t.SliceCopy())
}

// FromMatrix returns the rigid motion of a 4x4 homogeneous matrix.
// An error wrapping ErrNotRigid is returned if m is not 4x4, its upper
// left 3x3 block is not a proper rotation or its last row is not (0,0,0,1).
// The returned rotation has a non-negative real part.
func FromMatrix(m mat.Matrix) (DualQuaternion, error) {
	r, c := m.Dims()
	if r != 4 || c != 4 {
		return DualQuaternion{}, opErr("FromMatrix", ErrNotRigid)
	}
	a := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a = append(a, m.At(i, j))
		}
	}
	q, pos, ok := d3.NewTransform(a).Rigid(rigidTol)
	if !ok {
		return DualQuaternion{}, opErr("FromMatrix", ErrNotRigid)
	}
	if q.Real < 0 {
		q = d4.Neg(q)
	}
	return FromRotation(q, pos), nil
}
